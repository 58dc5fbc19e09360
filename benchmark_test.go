package problem_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/jmgilman/go/problem"
)

func BenchmarkFromStatus(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = problem.FromStatus(problem.StatusNotFound)
	}
}

func BenchmarkBuilder(b *testing.B) {
	cause := stderrors.New("base error")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = problem.NewBuilder(problem.StatusConflict).
			Title("Duplicate order").
			Field("order_id", 42).
			Cause(cause).
			Finish()
	}
}

func BenchmarkToProblem(b *testing.B) {
	err := problem.NewBuilder(problem.StatusConflict).
		Message("duplicate").
		Field("order_id", 42).
		Field("tags", []string{"a", "b"}).
		Finish()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = err.ToProblem()
	}
}

func BenchmarkMarshal(b *testing.B) {
	p := problem.FromStatus(problem.StatusNotFound).
		WithDetail("order 42 does not exist").
		WithField("order_id", 42)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.JSONBytes()
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	data := []byte(`{"type":"https://httpstatuses.com/404","status":404,"title":"Not Found","order_id":42}`)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var p problem.Problem
		_ = json.Unmarshal(data, &p)
	}
}
