package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/hawala_settlement/internal/core/ports/services"
	"github.com/SscSPs/hawala_settlement/internal/dto"
	"github.com/SscSPs/hawala_settlement/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to the rate catalog.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers the authenticated rate management routes.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	agentRates := rg.Group("/agents/:agentID/rates")
	{
		agentRates.POST("", h.upsertRate)
		agentRates.GET("/:from/:to", h.findRate)
		agentRates.PUT("/:from/:to/active", h.setRateActive)
	}

	rates := rg.Group("/rates")
	{
		rates.GET("/:rateID", h.getRate)
		rates.PATCH("/:rateID", h.updateRate)
	}
}

// registerPublicRateRoutes exposes an agent's usable rates without authentication.
func registerPublicRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)
	rg.GET("/agents/:agentID/rates", h.listAgentRates)
}

// upsertRate godoc
// @Summary Create or replace a rate
// @Description Publishes the agent's buy and sell rate for a currency pair, replacing any existing rate for that pair.
// @Tags rates
// @Accept json
// @Produce json
// @Param agentID path string true "Agent ID"
// @Param rate body dto.UpsertRateRequest true "Rate details"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Agent not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/agents/{agentID}/rates [post]
func (h *rateHandler) upsertRate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpsertRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	agentID := c.Param("agentID")
	rate, err := h.rateService.UpsertRate(c.Request.Context(), actor, req.ToDomain(agentID))
	if err != nil {
		respondError(c, err, "Failed to save rate")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Rate saved", slog.String("rate_id", rate.RateID), slog.String("pair", rate.Pair().String()))
	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// updateRate godoc
// @Summary Update a rate
// @Description Applies a partial update to a rate by ID.
// @Tags rates
// @Accept json
// @Produce json
// @Param rateID path string true "Rate ID"
// @Param patch body dto.UpdateRateRequest true "Fields to change"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/rates/{rateID} [patch]
func (h *rateHandler) updateRate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rate, err := h.rateService.UpdateRate(c.Request.Context(), actor, c.Param("rateID"), req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to update rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// setRateActive godoc
// @Summary Activate or deactivate a rate
// @Tags rates
// @Accept json
// @Produce json
// @Param agentID path string true "Agent ID"
// @Param from path string true "Source currency" MinLength(3) MaxLength(3)
// @Param to path string true "Target currency" MinLength(3) MaxLength(3)
// @Param body body dto.SetRateActiveRequest true "Desired state"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No rate for this pair"
// @Security BearerAuth
// @Router /api/v1/agents/{agentID}/rates/{from}/{to}/active [put]
func (h *rateHandler) setRateActive(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.SetRateActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rate, err := h.rateService.SetRateActive(c.Request.Context(), actor,
		c.Param("agentID"), strings.ToUpper(c.Param("from")), strings.ToUpper(c.Param("to")), *req.Active)
	if err != nil {
		respondError(c, err, "Failed to change rate state")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// findRate godoc
// @Summary Get the rate for a pair
// @Description Returns the stored rate for the pair, including inactive or expired ones.
// @Tags rates
// @Produce json
// @Param agentID path string true "Agent ID"
// @Param from path string true "Source currency" MinLength(3) MaxLength(3)
// @Param to path string true "Target currency" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.RateResponse
// @Failure 422 {object} ErrorResponse "No rate for this pair"
// @Security BearerAuth
// @Router /api/v1/agents/{agentID}/rates/{from}/{to} [get]
func (h *rateHandler) findRate(c *gin.Context) {
	rate, err := h.rateService.FindRate(c.Request.Context(),
		c.Param("agentID"), strings.ToUpper(c.Param("from")), strings.ToUpper(c.Param("to")))
	if err != nil {
		respondError(c, err, "Failed to retrieve rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// getRate godoc
// @Summary Get a rate by ID
// @Tags rates
// @Produce json
// @Param rateID path string true "Rate ID"
// @Success 200 {object} dto.RateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/rates/{rateID} [get]
func (h *rateHandler) getRate(c *gin.Context) {
	rate, err := h.rateService.GetRateByID(c.Request.Context(), c.Param("rateID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// listAgentRates godoc
// @Summary Public rate board
// @Description Lists the agent's active, unexpired rates.
// @Tags public
// @Produce json
// @Param agentID path string true "Agent ID"
// @Success 200 {array} dto.PublicRateResponse
// @Failure 500 {object} ErrorResponse
// @Router /public/agents/{agentID}/rates [get]
func (h *rateHandler) listAgentRates(c *gin.Context) {
	rates, err := h.rateService.ListAgentRates(c.Request.Context(), c.Param("agentID"))
	if err != nil {
		respondError(c, err, "Failed to list rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPublicRateResponse(rates))
}
