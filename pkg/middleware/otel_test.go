package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func TestOpenTelemetry_WrapsHandler(t *testing.T) {
	var sawSpan bool
	var extracted bool
	mw := OpenTelemetry(
		WithTracerName("test"),
		WithSpanName("tagz.test"),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			extracted = true
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)

	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawSpan = trace.SpanFromContext(r.Context()) != nil
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if !sawSpan {
		t.Fatal("expected a span on the request context")
	}
	if !extracted {
		t.Fatal("expected attribute extractor to run")
	}
}

func TestOpenTelemetry_FilterSkips(t *testing.T) {
	var extracted bool
	mw := OpenTelemetry(
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			extracted = true
			return nil
		}),
	)

	called := false
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if !called {
		t.Fatal("filtered request should still reach the handler")
	}
	if extracted {
		t.Fatal("filtered request should not be traced")
	}
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "tagz.parse", attribute.Int("size", 3))
	if span == nil {
		t.Fatal("expected span")
	}
	if ctx == nil || trace.SpanFromContext(ctx) == nil {
		t.Fatal("expected span to be stored on returned context")
	}
	EndSpan(span, errors.New("boom")) // Should not panic
}
