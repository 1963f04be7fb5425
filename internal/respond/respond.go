// Package respond renders router-level error responses (404, 405, panics)
// as RFC 9457 problem+json, matching the error format Huma produces for
// registered operations.
package respond

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appmiddleware "github.com/mkarvo/hello-service/internal/middleware"
)

const (
	msgNotFound          = "resource not found"
	msgInternalServerErr = "internal server error"
)

// NotFoundHandler emits a problem+json 404 response for unmatched paths.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r.Context(), http.StatusNotFound, msgNotFound, nil)
	}
}

// MethodNotAllowedHandler emits a problem+json 405 response with an Allow
// header listing the methods the matched route supports.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		detail := fmt.Sprintf("method %s not allowed", r.Method)
		writeProblem(w, r.Context(), http.StatusMethodNotAllowed, detail, nil)
	}
}

// Recoverer converts handler panics into problem+json 500 responses so a
// single bad request never takes the process down.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					err = fmt.Errorf("%w\n%s", err, debug.Stack())
					writeProblem(w, r.Context(), http.StatusInternalServerError, msgInternalServerErr, err)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// writeProblem serializes a huma.ErrorModel and logs by status class.
func writeProblem(w http.ResponseWriter, ctx context.Context, status int, detail string, err error) {
	model := &huma.ErrorModel{
		Status: status,
		Title:  http.StatusText(status),
		Detail: detail,
	}

	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("detail", detail),
	}
	switch {
	case status >= 500:
		appmiddleware.LogError(ctx, "request failed", err, fields...)
	default:
		appmiddleware.LogWarn(ctx, "request rejected", fields...)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(model); encErr != nil {
		appmiddleware.LogError(ctx, "failed to render problem response", encErr)
	}
}

// allowedMethods inspects chi's routing context to discover allowed methods.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		if r.URL.RawPath != "" {
			routePath = r.URL.RawPath
		} else {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(methods))
	for _, method := range methods {
		tctx := chi.NewRouteContext()
		if rctx.Routes.Match(tctx, method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
