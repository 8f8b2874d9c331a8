package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/application/usecase/settings"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles budget settings endpoints.
type SettingsController struct {
	getUseCase          *settings.GetSettingsUseCase
	updateUseCase       *settings.UpdateSettingsUseCase
	subscriptionUseCase *settings.UpdateSubscriptionUseCase
	resetUseCase        *settings.ResetDataUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
	subscriptionUseCase *settings.UpdateSubscriptionUseCase,
	resetUseCase *settings.ResetDataUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:          getUseCase,
		updateUseCase:       updateUseCase,
		subscriptionUseCase: subscriptionUseCase,
		resetUseCase:        resetUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), settings.GetSettingsInput{UserID: userID})
	if err != nil {
		handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsOutputResponse(output))
}

// Update handles PUT /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), settings.UpdateSettingsInput{
		UserID:                 userID,
		BudgetPeriod:           req.BudgetPeriod,
		BudgetAmount:           req.BudgetAmount,
		DailyBudgetAmount:      req.DailyBudgetAmount,
		Currency:               req.Currency,
		HasCompletedOnboarding: req.HasCompletedOnboarding,
	})
	if err != nil {
		handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsOutputResponse(output))
}

// UpdateSubscription handles PUT /settings/subscription requests.
func (c *SettingsController) UpdateSubscription(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.subscriptionUseCase.Execute(ctx.Request.Context(), settings.UpdateSubscriptionInput{
		UserID:            userID,
		IsSubscribed:      req.IsSubscribed,
		HasLifetimeAccess: req.HasLifetimeAccess,
	})
	if err != nil {
		handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsOutputResponse(output))
}

// Reset handles POST /settings/reset requests.
func (c *SettingsController) Reset(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.resetUseCase.Execute(ctx.Request.Context(), settings.ResetDataInput{UserID: userID})
	if err != nil {
		handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResetDataResponse(output))
}

// handleSettingsError maps settings errors to HTTP responses.
func handleSettingsError(ctx *gin.Context, err error) {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		ctx.JSON(getStatusCodeForSettingsError(settingsErr.Code), dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeSettingsInternalError),
	})
}

// getStatusCodeForSettingsError maps settings error codes to HTTP status codes.
func getStatusCodeForSettingsError(code domainerror.SettingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidCurrency:
		return http.StatusBadRequest
	case domainerror.ErrCodePremiumRequired:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
