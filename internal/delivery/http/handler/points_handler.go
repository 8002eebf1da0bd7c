package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/usecase/points"
	"github.com/gin-gonic/gin"
)

type PointsHandler struct {
	pointsUseCase *points.PointsUseCase
}

func NewPointsHandler(pointsUseCase *points.PointsUseCase) *PointsHandler {
	return &PointsHandler{
		pointsUseCase: pointsUseCase,
	}
}

// Balance handles GET /points/balance
// @Summary Points balance
// @Description Spendable and lifetime points
// @Tags points
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.PointsBalance
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /points/balance [get]
func (h *PointsHandler) Balance(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	balance, err := h.pointsUseCase.Balance(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get balance"})
		return
	}

	c.JSON(http.StatusOK, balance)
}

// Earn handles POST /points/earn
// @Summary Earn points
// @Description Credit points for an activity event
// @Tags points
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body points.EarnRequest true "Earn event"
// @Success 200 {object} domain.EarnResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /points/earn [post]
func (h *PointsHandler) Earn(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req points.EarnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.pointsUseCase.Earn(c.Request.Context(), userID.(string), &req)
	if err != nil {
		if errors.Is(err, domain.ErrNonPositiveAmount) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to earn points"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Spend handles POST /points/spend
// @Summary Spend points
// @Description Debit points; insufficient balance is reported in the result
// @Tags points
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body points.SpendRequest true "Spend event"
// @Success 200 {object} domain.SpendResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /points/spend [post]
func (h *PointsHandler) Spend(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req points.SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.pointsUseCase.Spend(c.Request.Context(), userID.(string), &req)
	if err != nil {
		if errors.Is(err, domain.ErrNonPositiveAmount) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cost must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to spend points"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Level handles GET /points/level
// @Summary Level info
// @Description Level computed from lifetime points
// @Tags points
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.LevelInfo
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /points/level [get]
func (h *PointsHandler) Level(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	info, err := h.pointsUseCase.LevelInfo(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get level info"})
		return
	}

	c.JSON(http.StatusOK, info)
}

// Transactions handles GET /points/transactions
// @Summary Points history
// @Description Earn/spend history, newest first
// @Tags points
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.PointsTransaction
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /points/transactions [get]
func (h *PointsHandler) Transactions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	transactions, err := h.pointsUseCase.Transactions(c.Request.Context(), userID.(string), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}
