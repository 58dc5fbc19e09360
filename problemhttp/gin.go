package problemhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmgilman/go/problem"
)

// JSON renders a problem through gin.
type JSON struct {
	Problem *problem.Problem
}

// WriteContentType sets the problem media type unless a Content-Type is
// already present.
func (r JSON) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{problem.MediaType}
	}
}

// Render writes the problem document.
func (r JSON) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	_, err := w.Write(r.Problem.JSONBytes())
	return err
}

// AbortWithProblem renders p with its own status and aborts the handler chain.
func AbortWithProblem(c *gin.Context, p *problem.Problem) {
	c.Render(p.ResponseStatus().Int(), JSON{Problem: p})
	c.Abort()
}

// Abort writes err as a problem response and aborts the handler chain.
//
// Example:
//
//	router.GET("/orders/:id", func(c *gin.Context) {
//	    order, err := svc.Get(c, c.Param("id"))
//	    if err != nil {
//	        problemhttp.Abort(c, err)
//	        return
//	    }
//	    c.JSON(http.StatusOK, order)
//	})
func Abort(c *gin.Context, err error) {
	defaultResponder.Abort(c, err)
}

// Abort writes err as a problem response and aborts the handler chain.
func (rs *Responder) Abort(c *gin.Context, err error) {
	herr := rs.prepare(c.Request, err)
	extensionHeaders(c.Writer.Header(), herr)

	status, header, body := rs.renderer.RenderProblem(herr.ToProblem())
	for k, vs := range header {
		if k == "Content-Type" {
			continue
		}
		for _, v := range vs {
			c.Writer.Header().Add(k, v)
		}
	}
	c.Data(status, header.Get("Content-Type"), body)
	c.Abort()
}

// Middleware returns a gin middleware that writes the last error recorded
// with c.Error as a problem response, provided the handler wrote nothing.
//
// Example:
//
//	router := gin.New()
//	router.Use(problemhttp.Middleware(problemhttp.WithLogger(logger)))
func Middleware(opts ...Option) gin.HandlerFunc {
	rs := NewResponder(opts...)
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		rs.Abort(c, c.Errors.Last().Err)
	}
}
