// Package middleware provides the instrumentation used by the tagz render
// service and publisher.
//
// # Prometheus Metrics
//
// Metrics registers the render collectors and wraps handlers:
//
//	m := middleware.NewMetrics()
//	r.With(m.Handler(middleware.Mode(middleware.ModeLines))).Post("/lines", h)
//	r.Handle("/metrics", promhttp.Handler())
//
// Metrics collected:
//   - tagz_renders_total{mode,status}
//   - tagz_render_duration_seconds{mode}
//   - tagz_rendered_bytes_total
//
// # OpenTelemetry
//
// OpenTelemetry wraps a handler in a server span, and StartSpan opens child
// spans such as tagz.parse from the request context:
//
//	r.Use(middleware.OpenTelemetry(middleware.WithSpanName("tagz.render")))
//
//	ctx, span := middleware.StartSpan(r.Context(), "tagz.parse")
//	res, err := parse.Reader(body)
//	middleware.EndSpan(span, err)
//
// Spans go to the global tracer provider, a no-op until one is installed
// with otel.SetTracerProvider.
package middleware
