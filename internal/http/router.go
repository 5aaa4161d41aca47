package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// With wraps the router in middleware; the first one listed runs first.
func (r *Router) With(mw ...Middleware) http.Handler {
	var h http.Handler = r
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

func method(m string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != m {
			w.Header().Set("Allow", m)
			writeJSON(w, http.StatusMethodNotAllowed, Fail(msgMethodNotAllowed))
			return
		}
		h(w, req)
	}
}

// withID parses the trailing path segment after prefix as a design id.
func withID(prefix string, h func(http.ResponseWriter, *http.Request, int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id, ok := parseDesignID(strings.TrimPrefix(req.URL.Path, prefix))
		if !ok {
			writeJSON(w, http.StatusNotFound, Fail(msgNotFound))
			return
		}
		h(w, req, id)
	}
}

// RegisterDesignRoutes 注册页面与 /api 路由
func (r *Router) RegisterDesignRoutes(h *DesignHandler) {
	r.Handle("/", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			writeJSON(w, http.StatusNotFound, Fail(msgNotFound))
			return
		}
		method(http.MethodGet, h.Index)(w, req)
	})
	r.Handle("/healthz", method(http.MethodGet, h.Health))

	r.Handle("/api/generate", method(http.MethodPost, h.Generate))
	r.Handle("/api/save", method(http.MethodPost, h.Save))
	r.Handle("/api/list", method(http.MethodGet, h.List))
	r.Handle("/api/get/", method(http.MethodGet, withID("/api/get/", h.Get)))
	r.Handle("/api/export/", method(http.MethodGet, withID("/api/export/", h.Export)))
}
