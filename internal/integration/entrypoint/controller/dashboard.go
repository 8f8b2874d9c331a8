// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/application/usecase/dashboard"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the overview and analysis endpoints.
type DashboardController struct {
	getOverviewUseCase *dashboard.GetOverviewUseCase
	getAnalysisUseCase *dashboard.GetAnalysisUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getOverviewUseCase *dashboard.GetOverviewUseCase,
	getAnalysisUseCase *dashboard.GetAnalysisUseCase,
) *DashboardController {
	return &DashboardController{
		getOverviewUseCase: getOverviewUseCase,
		getAnalysisUseCase: getAnalysisUseCase,
	}
}

// GetOverview handles GET /dashboard requests.
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{UserID: userID})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// GetAnalysis handles GET /analysis requests.
func (c *DashboardController) GetAnalysis(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := dashboard.GetAnalysisInput{
		UserID:    userID,
		Type:      ctx.Query("type"),
		TimeFrame: ctx.Query("timeFrame"),
		Category:  ctx.Query("category"),
	}

	if topNStr := ctx.Query("topN"); topNStr != "" {
		topN, err := strconv.Atoi(topNStr)
		if err != nil || topN <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "topN must be a positive integer",
				Code:  string(domainerror.ErrCodeInvalidTopN),
			})
			return
		}
		input.TopN = topN
	}

	output, err := c.getAnalysisUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalysisResponse(output))
}

// handleDashboardError maps analysis and settings errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var analysisErr *domainerror.AnalysisError
	if errors.As(err, &analysisErr) {
		status := http.StatusBadRequest
		if analysisErr.Code == domainerror.ErrCodeAnalysisInternalError {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: analysisErr.Message,
			Code:  string(analysisErr.Code),
		})
		return
	}

	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Failed to build the dashboard",
		Code:  string(domainerror.ErrCodeAnalysisInternalError),
	})
}
