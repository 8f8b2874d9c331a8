// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-planner/backend/internal/application/usecase/transaction"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
	"github.com/budget-planner/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase    *transaction.ListTransactionsUseCase
	createUseCase  *transaction.CreateTransactionUseCase
	updateUseCase  *transaction.UpdateTransactionUseCase
	deleteUseCase  *transaction.DeleteTransactionUseCase
	exportUseCases map[string]*transaction.ExportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
// exportUseCases are keyed by format; "csv" is the default.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	exportUseCases map[string]*transaction.ExportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		exportUseCases: exportUseCases,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := transaction.ListTransactionsInput{
		UserID:   userID,
		Category: ctx.Query("category"),
		Type:     ctx.Query("type"),
	}

	for param, target := range map[string]**time.Time{"startDate": &input.StartDate, "endDate": &input.EndDate} {
		raw := ctx.Query(param)
		if raw == "" {
			continue
		}
		date, err := dto.ParseDate(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid " + param + ". Use YYYY-MM-DD or RFC 3339",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		*target = &date
	}
	// A date-only end bound covers the whole day.
	if raw := ctx.Query("endDate"); input.EndDate != nil && len(raw) == len(dto.DateLayout) {
		end := input.EndDate.Add(24*time.Hour - time.Nanosecond)
		input.EndDate = &end
	}

	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}
	if offsetStr := ctx.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			input.Offset = offset
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := dto.ParseDate(req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD or RFC 3339",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		date = parsed
	}

	isExpense := true
	if req.IsExpense != nil {
		isExpense = *req.IsExpense
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:    userID,
		Amount:    req.Amount,
		Title:     req.Title,
		Category:  req.Category,
		Date:      date,
		IsExpense: isExpense,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	transactionID, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Amount:        req.Amount,
		Title:         req.Title,
		Category:      req.Category,
		IsExpense:     req.IsExpense,
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD or RFC 3339",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	transactionID, ok := c.parseTransactionID(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Export handles GET /transactions/export requests.
func (c *TransactionController) Export(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	format := ctx.DefaultQuery("format", "csv")
	exportUseCase, ok := c.exportUseCases[format]
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unsupported export format: " + format,
		})
		return
	}

	output, err := exportUseCase.Execute(ctx.Request.Context(), transaction.ExportTransactionsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, output.ContentType, output.Data)
}

func (c *TransactionController) parseTransactionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := c.getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeTransactionInternalError),
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeTitleRequired,
		domainerror.ErrCodeTitleTooLong,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
