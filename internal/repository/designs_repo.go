package repository

import (
	"context"

	"dreamhouse/internal/domain"
)

// DesignsRepository 设计存储接口
// Saved designs are append-only: there is no update or delete.
type DesignsRepository interface {
	// Save appends a design and returns its store-assigned id.
	// created_at is stamped by the store at save time.
	Save(ctx context.Context, name, prompt, data string) (int64, error)

	// List returns every design, newest (highest id) first. Data stays as stored text.
	List(ctx context.Context) ([]domain.SavedDesign, error)

	// Get returns one design, or domain.ErrNotFound.
	Get(ctx context.Context, id int64) (*domain.SavedDesign, error)
}
