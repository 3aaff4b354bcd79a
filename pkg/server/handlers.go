package server

import (
	"context"
	"io"
	"iter"
	"net/http"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/tagz/internal/errors"
	"github.com/vango-dev/tagz/pkg/middleware"
	"github.com/vango-dev/tagz/pkg/parse"
	"github.com/vango-dev/tagz/pkg/render"
)

// renderOptions are the per-request serializer settings.
type renderOptions struct {
	config    render.RendererConfig
	chunkSize int
}

// renderOptions reads pretty, indent and chunk from the query string,
// falling back to the configured defaults.
func (s *Server) renderOptions(r *http.Request) (renderOptions, error) {
	q := r.URL.Query()
	opts := renderOptions{
		config: render.RendererConfig{
			Pretty: s.config.Render.Pretty,
			Indent: s.config.Render.Indent,
		},
		chunkSize: s.config.Render.ChunkSize,
	}

	if v := q.Get("pretty"); v != "" {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return opts, pkgerrors.Wrapf(err, "invalid pretty value %q", v)
		}
		opts.config.Pretty = pretty
	}
	if q.Has("indent") {
		opts.config.Indent = q.Get("indent")
	}
	if v := q.Get("chunk"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return opts, pkgerrors.Wrapf(err, "invalid chunk size %q", v)
		}
		opts.chunkSize = size
	}
	return opts, nil
}

// renderMode labels /render requests for metrics.
func (s *Server) renderMode(r *http.Request) string {
	opts, err := s.renderOptions(r)
	if err == nil && opts.config.Pretty {
		return middleware.ModePretty
	}
	return middleware.ModeCompact
}

// handleRender parses the request body and streams it back as HTML.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.renderOptions(r)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	res, err := s.parse(r.Context(), http.MaxBytesReader(w, r.Body, s.config.Server.MaxBodyBytes))
	if err != nil {
		s.fail(w, r, parseStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	sr := render.NewStreamingRenderer(w, opts.config, opts.chunkSize)
	if res.IsPage() {
		_, err = sr.RenderPage(res.Page)
	} else {
		_, err = sr.Render(res.Element)
	}
	if err != nil {
		s.logger.WithError(pkgerrors.Wrap(err, "write render response")).Warn("render aborted")
	}
}

// handleLines parses the request body and writes its pretty lines as plain
// text.
func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	indent := s.config.Render.Indent
	if r.URL.Query().Has("indent") {
		indent = r.URL.Query().Get("indent")
	}

	res, err := s.parse(r.Context(), http.MaxBytesReader(w, r.Body, s.config.Server.MaxBodyBytes))
	if err != nil {
		s.fail(w, r, parseStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	renderer := render.NewRenderer(render.RendererConfig{Pretty: true, Indent: indent})
	for line := range documentLines(renderer, res) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			s.logger.WithError(pkgerrors.Wrap(err, "write lines response")).Warn("lines aborted")
			return
		}
	}
}

// parse reads and parses a document inside a tagz.parse span.
func (s *Server) parse(ctx context.Context, body io.Reader) (parse.Result, error) {
	_, span := middleware.StartSpan(ctx, "tagz.parse")
	res, err := parse.Reader(body)
	if err == nil {
		span.SetAttributes(attribute.Bool("tagz.page", res.IsPage()))
	}
	middleware.EndSpan(span, err)
	return res, err
}

// documentLines streams a parse result, preamble included for pages.
func documentLines(r *render.Renderer, res parse.Result) iter.Seq[string] {
	if res.IsPage() {
		return r.PageLines(res.Page)
	}
	return r.Lines(res.Element)
}

// parseStatus maps a parse failure to an HTTP status.
func parseStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.WithFields(logrus.Fields{
		"path":   r.URL.Path,
		"status": status,
	}).WithError(err).Warn("request failed")

	var coded *errors.Error
	if !errors.As(err, &coded) {
		http.Error(w, err.Error(), status)
		return
	}
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(status)
		io.WriteString(w, coded.FormatJSON())
		return
	}
	http.Error(w, coded.FormatCompact(), status)
}

// observe records a render that did not go through the metrics middleware.
func (s *Server) observe(mode string, start time.Time, bytes int, err error) {
	status := middleware.StatusOK
	if err != nil {
		status = middleware.StatusError
	}
	s.metrics.Observe(mode, status, time.Since(start), bytes)
}
