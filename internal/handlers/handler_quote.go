package handlers

import (
	"net/http"

	"github.com/SscSPs/hawala_settlement/internal/core/domain"
	portssvc "github.com/SscSPs/hawala_settlement/internal/core/ports/services"
	"github.com/SscSPs/hawala_settlement/internal/dto"
	"github.com/gin-gonic/gin"
)

type quoteHandler struct {
	quoteService portssvc.QuoteSvc
	defaultFee   domain.FeePolicy
}

func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvc, defaultFee domain.FeePolicy) {
	h := &quoteHandler{quoteService: quoteService, defaultFee: defaultFee}
	rg.POST("/quotes", h.quote)
}

// quote godoc
// @Summary Price a conversion
// @Description Computes the converted amount, fee and net amount against the agent's current rate. Nothing is stored.
// @Tags public
// @Accept json
// @Produce json
// @Param quote body dto.QuoteRequest true "Conversion to price"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No active rate for this pair"
// @Failure 500 {object} ErrorResponse
// @Router /public/quotes [post]
func (h *quoteHandler) quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	q, err := h.quoteService.Quote(c.Request.Context(), req.ToDomain(h.defaultFee))
	if err != nil {
		respondError(c, err, "Failed to compute quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(q))
}
