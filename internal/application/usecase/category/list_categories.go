// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/budget-planner/backend/internal/domain/entity"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []entity.CategoryInfo
	Fallback   entity.Category
}

// ListCategoriesUseCase returns the spending taxonomy in declaration order.
type ListCategoriesUseCase struct {
	taxonomy *entity.Taxonomy
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(taxonomy *entity.Taxonomy) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		taxonomy: taxonomy,
	}
}

// Execute lists the categories.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	return &ListCategoriesOutput{
		Categories: uc.taxonomy.Members(),
		Fallback:   uc.taxonomy.Fallback(),
	}, nil
}
