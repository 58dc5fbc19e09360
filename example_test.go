package problem_test

import (
	"errors"
	"fmt"

	"github.com/jmgilman/go/problem"
)

func ExampleFromStatus() {
	p := problem.FromStatus(problem.StatusNotFound).WithDetail("order 42 does not exist")
	fmt.Println(p.JSONString())
	// Output: {"type":"https://httpstatuses.com/404","status":404,"title":"Not Found","detail":"order 42 does not exist"}
}

func ExampleProblem_SetField() {
	p := problem.New("You do not have enough credit.")
	if err := p.SetField("balance", 30); err != nil {
		fmt.Println(err)
	}

	err := p.SetField("status", 402)
	fmt.Println(errors.Is(err, problem.ErrReservedFieldName))
	fmt.Println(p.JSONString())
	// Output:
	// true
	// {"title":"You do not have enough credit.","balance":30}
}

func ExampleGetField() {
	p := problem.New("Out of stock").WithField("available", 3)

	n, ok := problem.GetField[int](p, "available")
	fmt.Println(n, ok)
	// Output: 3 true
}

func ExampleWrapError() {
	cause := errors.New("connection refused")
	err := problem.WrapError(cause, problem.StatusServiceUnavailable)

	fmt.Println(err)
	fmt.Println(errors.Is(err, cause))
	fmt.Println(err.ToProblem().JSONString())
	// Output:
	// 503 Service Unavailable - connection refused
	// true
	// {"status":503,"title":"Service Unavailable","detail":"connection refused"}
}

func ExampleNewBuilder() {
	err := problem.NewBuilder(problem.StatusBadRequest).
		Title("Invalid order").
		Messagef("quantity must be positive, got %d", -1).
		Field("field", "quantity").
		Finish()

	fmt.Println(err)
	fmt.Println(err.ToProblem().JSONString())
	// Output:
	// 400 Bad Request - Invalid order - quantity must be positive, got -1
	// {"status":400,"title":"Invalid order","detail":"quantity must be positive, got -1","field":"quantity"}
}

func ExampleHandlerError_ToProblem_unauthorized() {
	err := problem.NewBuilder(problem.StatusUnauthorized).
		Message("token expired").
		Field("user", "alice").
		Finish()

	fmt.Println(err.ToProblem().JSONString())
	// Output: {"status":401,"title":"Unauthorized","detail":"token expired"}
}

func ExampleGetExtension() {
	type requestID string

	err := problem.NewBuilder(problem.StatusBadRequest).
		Extension(requestID("req-42")).
		Finish()

	id, ok := problem.GetExtension[requestID](err.Extensions())
	fmt.Println(id, ok)
	// Output: req-42 true
}
