package handler

import (
	"errors"
	"net/http"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/usecase/access"
	"github.com/gin-gonic/gin"
)

type AccessHandler struct {
	accessUseCase *access.AccessUseCase
}

func NewAccessHandler(accessUseCase *access.AccessUseCase) *AccessHandler {
	return &AccessHandler{
		accessUseCase: accessUseCase,
	}
}

// Resolve handles GET /access/:content_type/:content_id
// @Summary Resolve access
// @Description Compute the access status for one content item
// @Tags access
// @Security BearerAuth
// @Produce json
// @Param content_type path string true "Content type"
// @Param content_id path string true "Content ID"
// @Param permanent query bool false "Price the permanent unlock"
// @Success 200 {object} access.ContentAccess
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /access/{content_type}/{content_id} [get]
func (h *AccessHandler) Resolve(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	contentType := c.Param("content_type")
	contentID := c.Param("content_id")
	wantPermanent := c.Query("permanent") == "true"

	result, err := h.accessUseCase.ResolveByName(c.Request.Context(), userID.(string), contentType, contentID, wantPermanent)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownContentType) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown content type"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to resolve access"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Unlock handles POST /access/unlock
// @Summary Unlock content with points
// @Description Spend points and record the unlock
// @Tags access
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body access.UnlockRequest true "Content to unlock"
// @Success 200 {object} access.UnlockResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /access/unlock [post]
func (h *AccessHandler) Unlock(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req access.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.accessUseCase.Unlock(c.Request.Context(), userID.(string), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownContentType):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown content type"})
		case errors.Is(err, access.ErrPremiumOnlyContent):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "content requires a premium subscription"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to unlock content"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// RecordUsage handles POST /access/usage
// @Summary Record daily usage
// @Description Consume one free daily use of a content type
// @Tags access
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body access.UsageRequest true "Usage event"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /access/usage [post]
func (h *AccessHandler) RecordUsage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req access.UsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.accessUseCase.RecordUsage(c.Request.Context(), userID.(string), &req); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownContentType), errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "content type has no daily window"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to record usage"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Unlocks handles GET /access/unlocks
// @Summary List unlocks
// @Description The user's unlock records, newest first
// @Tags access
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.UnlockRecord
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /access/unlocks [get]
func (h *AccessHandler) Unlocks(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	records, err := h.accessUseCase.Unlocks(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get unlocks"})
		return
	}

	c.JSON(http.StatusOK, records)
}
