// Package problem implements RFC 7807 problem details for HTTP APIs.
//
// It provides two error representations. Problem is the wire-safe document:
// a flat JSON object with the core members type, status, title, detail and
// instance plus arbitrary extension fields. HandlerError is the in-process
// error returned by handlers: it carries the same information together with
// an optional cause and typed extensions, and converts to a Problem at the API
// boundary.
//
// # Quick Start
//
// Creating problems:
//
//	p := problem.FromStatus(problem.StatusNotFound).
//	    WithDetail("order 42 does not exist").
//	    WithInstance("/orders/42")
//
//	if err := p.SetField("order_id", 42); err != nil {
//	    // reserved name or value not encodable
//	}
//
// Returning errors from handlers:
//
//	order, err := repo.Get(ctx, id)
//	if err != nil {
//	    return problem.NewBuilder(problem.StatusNotFound).
//	        Title("Unknown order").
//	        Field("order_id", id).
//	        Cause(err).
//	        Finish()
//	}
//
// Converting at the boundary:
//
//	p := problem.FromError(err).IntoProblem()
//	w.Header().Set("Content-Type", problem.MediaType)
//	w.WriteHeader(p.ResponseStatus().Int())
//	w.Write(p.JSONBytes())
//
// The problemhttp package does the last step for net/http and gin.
//
// # Conversion Rules
//
// HandlerError.ToProblem and HandlerError.IntoProblem build the problem from
// the status: the title defaults to the reason phrase, and the type stays
// absent unless the error sets one. The detail is the message, or the text of
// the cause when there is no message. Fields are copied except for status 401,
// where they are dropped so that authentication failures never leak
// diagnostic data. The cause and the typed extensions are never part of a
// problem.
//
// # Fields
//
// Extension field names must not collide with the core members; see
// IsReservedFieldName. Every setter exists in a fallible form that returns the
// error (Problem.SetField, HandlerError.TryAddField) and in a best-effort form
// that skips the field (Problem.WithField, HandlerError.AddField,
// Builder.Field).
//
// Errors returned by this package are platform errors from
// github.com/jmgilman/go/errors wrapping one of the sentinels
// ErrReservedFieldName, ErrFieldEncoding, ErrInvalidStatusCode and
// ErrMissingTitle.
package problem
