package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/hawala_settlement/internal/core/ports/services"
	"github.com/SscSPs/hawala_settlement/internal/dto"
	"github.com/gin-gonic/gin"
)

type trackingHandler struct {
	trackingService portssvc.TrackingSvc
}

func registerTrackingRoutes(rg *gin.RouterGroup, trackingService portssvc.TrackingSvc, guards ...gin.HandlerFunc) {
	h := &trackingHandler{trackingService: trackingService}
	rg.GET("/track/:code", append(guards, h.track)...)
}

// track godoc
// @Summary Track a transfer
// @Description Public, rate limited status lookup by reference code. Names are masked and contact details omitted.
// @Tags public
// @Produce json
// @Param code path string true "Reference code"
// @Success 200 {object} dto.TrackingResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /public/track/{code} [get]
func (h *trackingHandler) track(c *gin.Context) {
	view, err := h.trackingService.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err, "Failed to look up transaction")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.ToTrackingResponse(view))
}
