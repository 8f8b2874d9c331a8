// Package transaction contains transaction-related use cases.
package transaction

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/budget-planner/backend/internal/domain/entity"
	domainerror "github.com/budget-planner/backend/internal/domain/error"
)

// TransactionOutput represents a single transaction with its resolved category.
type TransactionOutput struct {
	Transaction *entity.Transaction
	Category    entity.CategoryInfo
}

func newTransactionOutput(tax *entity.Taxonomy, t *entity.Transaction) *TransactionOutput {
	info, _ := tax.Info(tax.Resolve(t.Category))
	return &TransactionOutput{
		Transaction: t,
		Category:    info,
	}
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeTitleRequired,
			"title is required",
			domainerror.ErrTitleRequired,
		)
	}
	if utf8.RuneCountInString(title) > domainerror.MaxTitleLength {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeTitleTooLong,
			fmt.Sprintf("title must not exceed %d characters", domainerror.MaxTitleLength),
			domainerror.ErrTitleTooLong,
		)
	}
	return title, nil
}

func validateAmount(amount float64) error {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a finite number greater than or equal to zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}

// normalizeCategory maps blank and unknown keys to the taxonomy fallback so that
// list filters on the stored key match what the engine reports.
func normalizeCategory(tax *entity.Taxonomy, key string) string {
	return string(tax.Resolve(strings.TrimSpace(key)))
}

func notFoundError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}

func isNotFound(err error) bool {
	return errors.Is(err, domainerror.ErrTransactionNotFound)
}
