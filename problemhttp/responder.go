package problemhttp

import (
	"log/slog"
	"net/http"

	"github.com/jmgilman/go/problem"
)

// Option configures a Responder.
type Option func(*Responder)

// WithLogger sets the logger used for server errors. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRenderer replaces the DefaultRenderer.
func WithRenderer(renderer Renderer) Option {
	return func(r *Responder) {
		if renderer != nil {
			r.renderer = renderer
		}
	}
}

// Responder writes errors as problem responses and logs server errors.
type Responder struct {
	logger   *slog.Logger
	renderer Renderer
}

var defaultResponder = NewResponder()

// NewResponder creates a Responder.
func NewResponder(opts ...Option) *Responder {
	r := &Responder{renderer: DefaultRenderer}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WriteError converts err with problem.FromError and writes the resulting
// problem. Errors with a 5xx status are logged together with their cause.
// Writing does not change err.
func (rs *Responder) WriteError(w http.ResponseWriter, req *http.Request, err error) error {
	herr := rs.prepare(req, err)
	extensionHeaders(w.Header(), herr)
	return write(w, rs.renderer, herr.ToProblem())
}

// prepare converts err and logs it when it is a server error. A nil err is
// answered with a bare 500.
func (rs *Responder) prepare(req *http.Request, err error) *problem.HandlerError {
	herr := problem.FromError(err)
	if herr == nil {
		herr = problem.NewError(problem.StatusInternalServerError)
	}
	if herr.Status().IsServerError() {
		rs.log().ErrorContext(req.Context(), "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", herr),
		)
	}
	return herr
}

func (rs *Responder) log() *slog.Logger {
	if rs.logger == nil {
		return slog.Default()
	}
	return rs.logger
}
