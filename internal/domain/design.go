package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultDesignName is used when a request omits the project name.
const DefaultDesignName = "My Dream House"

// CreatedAtLayout formats created_at as UTC ISO-8601 with microseconds and no offset.
const CreatedAtLayout = "2006-01-02T15:04:05.000000"

// FormatCreatedAt renders t in UTC using CreatedAtLayout.
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}

// SavedDesign 已保存的设计（对应 designs 表）
// Data holds the serialized layout exactly as it was saved.
type SavedDesign struct {
	ID        int64  `json:"id" yaml:"id" db:"id"`
	Name      string `json:"name" yaml:"name" db:"name"`
	Prompt    string `json:"prompt" yaml:"prompt" db:"prompt"`
	Data      string `json:"data" yaml:"data" db:"data"`
	CreatedAt string `json:"created_at" yaml:"created_at" db:"created_at"`
}

// DesignDetail is a SavedDesign with Data expanded into a JSON document.
type DesignDetail struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Prompt    string          `json:"prompt"`
	Data      json.RawMessage `json:"data"`
	CreatedAt string          `json:"created_at"`
}

// Expand turns the stored text into a DesignDetail. Empty data expands to {}.
// Text that is not valid JSON means the row is corrupt.
func (d SavedDesign) Expand() (*DesignDetail, error) {
	data := json.RawMessage("{}")
	if d.Data != "" {
		if !json.Valid([]byte(d.Data)) {
			return nil, fmt.Errorf("design %d has malformed data: %w", d.ID, ErrStorage)
		}
		data = json.RawMessage(d.Data)
	}
	return &DesignDetail{
		ID:        d.ID,
		Name:      d.Name,
		Prompt:    d.Prompt,
		Data:      data,
		CreatedAt: d.CreatedAt,
	}, nil
}

// Layout decodes the expanded data as a Layout.
// Saved layouts are not validated on the way in, so missing fields stay zero.
func (d DesignDetail) Layout() (Layout, error) {
	var l Layout
	if err := json.Unmarshal(d.Data, &l); err != nil {
		return Layout{}, fmt.Errorf("decode layout of design %d: %w", d.ID, err)
	}
	return l, nil
}
