package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"dreamhouse/internal/components"
	"dreamhouse/internal/domain"
	"dreamhouse/internal/service"

	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DesignHandler 设计相关接口
type DesignHandler struct {
	svc    service.DesignService
	ping   func(ctx context.Context) error
	logger *zap.Logger
}

// NewDesignHandler creates the handler. ping reports store health; nil means always up.
func NewDesignHandler(svc service.DesignService, ping func(ctx context.Context) error, logger *zap.Logger) *DesignHandler {
	return &DesignHandler{svc: svc, ping: ping, logger: logger}
}

// Index 首页（templ 渲染）
func (h *DesignHandler) Index(w http.ResponseWriter, r *http.Request) {
	designs, err := h.svc.List(r.Context())
	if err != nil {
		// still render the form
		h.logger.Error("list designs for index failed", zap.String("request_id", RequestIDFrom(r.Context())), zap.Error(err))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := components.IndexPage{Title: "Dream House", Designs: designs}
	if err := components.Index(page).Render(r.Context(), w); err != nil {
		h.logger.Error("render index failed", zap.Error(err))
	}
}

func (h *DesignHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			h.logger.Warn("store ping failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, HealthResult{OK: false, Store: "down", Error: msgStoreUnavailable})
			return
		}
	}
	writeJSON(w, http.StatusOK, HealthResult{OK: true, Store: "up"})
}

// Generate POST /api/generate {prompt?, name?}
func (h *DesignHandler) Generate(w http.ResponseWriter, r *http.Request) {
	fields := readBodyFields(r)
	text := stringField(fields, "prompt", "")
	name := stringField(fields, "name", domain.DefaultDesignName)

	res := h.svc.Generate(text, name)
	writeJSON(w, http.StatusOK, GenerateResult{OK: true, Layout: res.Layout, Parsed: res.Parsed})
}

// Save POST /api/save {name?, prompt?, layout?}
func (h *DesignHandler) Save(w http.ResponseWriter, r *http.Request) {
	fields := readBodyFields(r)
	req := service.SaveRequest{
		Name:   stringField(fields, "name", domain.DefaultDesignName),
		Prompt: stringField(fields, "prompt", ""),
		Layout: rawField(fields, "layout"),
	}

	if _, err := h.svc.Save(r.Context(), req); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok())
}

// List GET /api/list
func (h *DesignHandler) List(w http.ResponseWriter, r *http.Request) {
	designs, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResult{OK: true, Designs: designs})
}

// Get GET /api/get/{id}
func (h *DesignHandler) Get(w http.ResponseWriter, r *http.Request, id int64) {
	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, GetResult{OK: true, Design: d})
}

// Export GET /api/export/{id}
func (h *DesignHandler) Export(w http.ResponseWriter, r *http.Request, id int64) {
	b, err := h.svc.ExportXLSX(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="design-%d.xlsx"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// fail maps service errors to status codes.
func (h *DesignHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, Fail(msgNotFound))
	case errors.Is(err, domain.ErrInvalidLayout):
		writeJSON(w, http.StatusUnprocessableEntity, Fail(msgInvalidLayout))
	default:
		h.logger.Error("request failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, Fail(msgInternal))
	}
}
