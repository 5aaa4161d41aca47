package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dreamhouse/internal/domain"
)

// MemoryDesignsRepo keeps designs in process memory when DB is disabled.
// NOTE: contents are lost on restart.
type MemoryDesignsRepo struct {
	mu      sync.RWMutex
	designs []domain.SavedDesign // ascending id
	nextID  int64
	now     func() time.Time
}

func NewMemoryDesignsRepo() *MemoryDesignsRepo {
	return &MemoryDesignsRepo{nextID: 1, now: time.Now}
}

var _ DesignsRepository = (*MemoryDesignsRepo)(nil)

func (r *MemoryDesignsRepo) Save(_ context.Context, name, prompt, data string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.designs = append(r.designs, domain.SavedDesign{
		ID:        id,
		Name:      name,
		Prompt:    prompt,
		Data:      data,
		CreatedAt: domain.FormatCreatedAt(r.now()),
	})
	return id, nil
}

func (r *MemoryDesignsRepo) List(_ context.Context) ([]domain.SavedDesign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SavedDesign, 0, len(r.designs))
	for i := len(r.designs) - 1; i >= 0; i-- {
		out = append(out, r.designs[i])
	}
	return out, nil
}

func (r *MemoryDesignsRepo) Get(_ context.Context, id int64) (*domain.SavedDesign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.designs {
		if d.ID == id {
			d := d
			return &d, nil
		}
	}
	return nil, fmt.Errorf("design %d: %w", id, domain.ErrNotFound)
}
