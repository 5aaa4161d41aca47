package httpapi

import "dreamhouse/internal/domain"

// 所有 JSON 响应都带 ok 字段
const (
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
	msgInternal         = "Internal server error"
	msgTooManyRequests  = "Too many requests"
	msgInvalidLayout    = "Design layout cannot be exported"
	msgStoreUnavailable = "Store unavailable"
)

type OKResult struct {
	OK bool `json:"ok"`
}

type ErrorResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type GenerateResult struct {
	OK     bool              `json:"ok"`
	Layout domain.Layout     `json:"layout"`
	Parsed domain.Attributes `json:"parsed"`
}

// ListResult keeps data as the stored text.
type ListResult struct {
	OK      bool                 `json:"ok"`
	Designs []domain.SavedDesign `json:"designs"`
}

type GetResult struct {
	OK     bool                 `json:"ok"`
	Design *domain.DesignDetail `json:"design"`
}

type HealthResult struct {
	OK    bool   `json:"ok"`
	Store string `json:"store"`
	Error string `json:"error,omitempty"`
}

func Ok() OKResult {
	return OKResult{OK: true}
}

func Fail(message string) ErrorResult {
	return ErrorResult{OK: false, Error: message}
}
