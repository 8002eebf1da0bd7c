package handler

import (
	"net/http"

	"github.com/arotiapp/aroti-backend/internal/usecase/insight"
	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	insightUseCase *insight.InsightUseCase
}

func NewInsightHandler(insightUseCase *insight.InsightUseCase) *InsightHandler {
	return &InsightHandler{
		insightUseCase: insightUseCase,
	}
}

// GetDaily handles GET /daily-insight
// @Summary Daily insight
// @Description Today's horoscope, tarot card, numerology and ritual
// @Tags insight
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.DailyInsight
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /daily-insight [get]
func (h *InsightHandler) GetDaily(c *gin.Context) {
	result, err := h.insightUseCase.GetDaily(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get daily insight"})
		return
	}

	c.JSON(http.StatusOK, result)
}
