// Package problemhttp writes problems as HTTP responses.
//
// It is the boundary between handlers and the wire: errors are turned into
// problem.HandlerError values with problem.FromError, converted to a
// problem.Problem and written with the application/problem+json media type.
// Adapters for net/http and gin are provided.
package problemhttp

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/jmgilman/go/problem"
)

// Renderer turns a problem into the status code, headers and body of a
// response.
type Renderer interface {
	RenderProblem(p *problem.Problem) (int, http.Header, []byte)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(p *problem.Problem) (int, http.Header, []byte)

// RenderProblem calls f(p).
func (f RendererFunc) RenderProblem(p *problem.Problem) (int, http.Header, []byte) {
	return f(p)
}

// DefaultRenderer is the Renderer backed by Render.
var DefaultRenderer Renderer = RendererFunc(Render)

// Render is the default rendering: the problem status (500 when absent), a
// Content-Type of problem.MediaType and the JSON document as body.
func Render(p *problem.Problem) (int, http.Header, []byte) {
	header := http.Header{}
	header.Set("Content-Type", problem.MediaType)
	return p.ResponseStatus().Int(), header, p.JSONBytes()
}

// RetryAfter is a typed extension telling clients when to retry. When a
// HandlerError carries one, the response gets a Retry-After header in whole
// seconds. It never appears in the body.
//
// Example:
//
//	err := problem.NewBuilder(problem.StatusServiceUnavailable).
//	    Extension(problemhttp.RetryAfter(30 * time.Second)).
//	    Finish()
type RetryAfter time.Duration

// extensionHeaders sets the headers derived from the typed extensions of e.
func extensionHeaders(header http.Header, e *problem.HandlerError) {
	if d, ok := problem.GetExtension[RetryAfter](e.Extensions()); ok && d > 0 {
		secs := math.Ceil(time.Duration(d).Seconds())
		header.Set("Retry-After", strconv.Itoa(int(secs)))
	}
}

// Write writes p to w using the DefaultRenderer.
func Write(w http.ResponseWriter, p *problem.Problem) error {
	return write(w, DefaultRenderer, p)
}

// WriteError converts err and writes it to w with the default Responder.
func WriteError(w http.ResponseWriter, r *http.Request, err error) error {
	return defaultResponder.WriteError(w, r, err)
}

func write(w http.ResponseWriter, renderer Renderer, p *problem.Problem) error {
	status, header, body := renderer.RenderProblem(p)
	for k, vs := range header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(status)
	_, err := w.Write(body)
	return err
}
