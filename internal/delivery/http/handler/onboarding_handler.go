package handler

import (
	"errors"
	"net/http"

	"github.com/arotiapp/aroti-backend/internal/domain"
	"github.com/arotiapp/aroti-backend/internal/usecase/onboarding"
	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	onboardingUseCase *onboarding.OnboardingUseCase
}

func NewOnboardingHandler(onboardingUseCase *onboarding.OnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUseCase: onboardingUseCase,
	}
}

// GetState handles GET /onboarding/state
// @Summary Onboarding state
// @Description Current screen, progress and collected answers
// @Tags onboarding
// @Security BearerAuth
// @Produce json
// @Success 200 {object} onboarding.StateResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /onboarding/state [get]
func (h *OnboardingHandler) GetState(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	state, err := h.onboardingUseCase.GetState(c.Request.Context(), userID.(string))
	if err != nil {
		h.writeError(c, err, "failed to get onboarding state")
		return
	}

	c.JSON(http.StatusOK, state)
}

// Answer handles POST /onboarding/answer
// @Summary Answer a screen
// @Description Write the current screen's answer fields
// @Tags onboarding
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body onboarding.AnswerRequest true "Screen answers"
// @Success 200 {object} onboarding.StateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /onboarding/answer [post]
func (h *OnboardingHandler) Answer(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req onboarding.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	state, err := h.onboardingUseCase.Answer(c.Request.Context(), userID.(string), &req)
	if err != nil {
		h.writeError(c, err, "failed to save answer")
		return
	}

	c.JSON(http.StatusOK, state)
}

// Advance handles POST /onboarding/advance
// @Summary Advance the flow
// @Description Apply the forward transition and return the new screen
// @Tags onboarding
// @Security BearerAuth
// @Produce json
// @Success 200 {object} onboarding.StateResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /onboarding/advance [post]
func (h *OnboardingHandler) Advance(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	state, err := h.onboardingUseCase.Advance(c.Request.Context(), userID.(string))
	if err != nil {
		h.writeError(c, err, "failed to advance onboarding")
		return
	}

	c.JSON(http.StatusOK, state)
}

// Back handles POST /onboarding/back
// @Summary Go back one screen
// @Description Apply the backward transition; a no-op on the first screen
// @Tags onboarding
// @Security BearerAuth
// @Produce json
// @Success 200 {object} onboarding.StateResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /onboarding/back [post]
func (h *OnboardingHandler) Back(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	state, err := h.onboardingUseCase.Back(c.Request.Context(), userID.(string))
	if err != nil {
		h.writeError(c, err, "failed to go back")
		return
	}

	c.JSON(http.StatusOK, state)
}

// Complete handles POST /onboarding/complete
// @Summary Complete onboarding
// @Description Terminal transition from the ready screen; creates the profile
// @Tags onboarding
// @Security BearerAuth
// @Produce json
// @Success 201 {object} onboarding.CompleteResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /onboarding/complete [post]
func (h *OnboardingHandler) Complete(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	result, err := h.onboardingUseCase.Complete(c.Request.Context(), userID.(string))
	if err != nil {
		h.writeError(c, err, "failed to complete onboarding")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *OnboardingHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrOnboardingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "onboarding state not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "answer does not match the current screen"})
	case errors.Is(err, domain.ErrFlowAlreadyComplete):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "onboarding already completed"})
	case errors.Is(err, domain.ErrFlowNotComplete):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "onboarding is not on the final screen"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
