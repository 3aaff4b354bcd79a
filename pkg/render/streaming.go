package render

import (
	"bytes"
	"iter"
	"net/http"
	"unicode/utf8"

	"github.com/vango-dev/tagz/pkg/vdom"
)

// DefaultChunkSize is used when a chunk size below 1 is requested.
const DefaultChunkSize = 4096

// Lines streams the pretty rendering of node one line at a time, without
// trailing newlines. Joining the lines with "\n" and appending a final "\n"
// reproduces the pretty string, except for empty output, which yields no
// lines at all. The tree is visited lazily: when the consumer stops early,
// the rest of the tree is never evaluated.
func (r *Renderer) Lines(node *vdom.Element) iter.Seq[string] {
	return lines(r.config.Indent, nodeSource(node))
}

// PageLines is Lines for a full document, preamble included.
func (r *Renderer) PageLines(page *vdom.Page) iter.Seq[string] {
	return lines(r.config.Indent, pageSource(page))
}

// Chunks streams the rendering of node (compact or pretty, as configured)
// in chunks of size bytes. A chunk is extended to the next rune boundary
// when size would split a UTF-8 sequence, and the last chunk may be short.
// Concatenating all chunks reproduces RenderToString.
func (r *Renderer) Chunks(node *vdom.Element, size int) iter.Seq[string] {
	return chunks(r.indent(), nodeSource(node), size)
}

// PageChunks is Chunks for a full document, preamble included.
func (r *Renderer) PageChunks(page *vdom.Page, size int) iter.Seq[string] {
	return chunks(r.indent(), pageSource(page), size)
}

func lines(indent string, src source) iter.Seq[string] {
	return func(yield func(string) bool) {
		var buf bytes.Buffer
		w := &walker{indent: indent, emit: func(s string) bool {
			buf.WriteString(s)
			for {
				i := bytes.IndexByte(buf.Bytes(), '\n')
				if i < 0 {
					return true
				}
				line := string(buf.Next(i + 1)[:i])
				if !yield(line) {
					return false
				}
			}
		}}
		if !src(w) {
			return
		}
		if buf.Len() > 0 {
			yield(buf.String())
		}
	}
}

func chunks(indent string, src source, size int) iter.Seq[string] {
	if size < 1 {
		size = DefaultChunkSize
	}
	return func(yield func(string) bool) {
		var buf bytes.Buffer
		w := &walker{indent: indent, emit: func(s string) bool {
			buf.WriteString(s)
			for buf.Len() >= size {
				chunk := string(buf.Next(runeCut(buf.Bytes(), size)))
				if !yield(chunk) {
					return false
				}
			}
			return true
		}}
		if !src(w) {
			return
		}
		if buf.Len() > 0 {
			yield(buf.String())
		}
	}
}

// runeCut returns the smallest cut point >= n that does not split a rune.
func runeCut(b []byte, n int) int {
	for n < len(b) && !utf8.RuneStart(b[n]) {
		n++
	}
	return n
}

// StreamingRenderer writes chunked output to an HTTP response, flushing
// after every chunk for faster time-to-first-byte.
type StreamingRenderer struct {
	*Renderer
	flusher   http.Flusher
	w         http.ResponseWriter
	chunkSize int
}

// NewStreamingRenderer creates a streaming renderer for w. If the writer
// implements http.Flusher, each chunk is flushed as soon as it is written.
func NewStreamingRenderer(w http.ResponseWriter, config RendererConfig, chunkSize int) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer:  NewRenderer(config),
		flusher:   flusher,
		w:         w,
		chunkSize: chunkSize,
	}
}

// Render streams an element tree and returns the number of bytes written.
func (s *StreamingRenderer) Render(node *vdom.Element) (int64, error) {
	return s.stream(s.Chunks(node, s.chunkSize))
}

// RenderPage streams a full document and returns the number of bytes written.
func (s *StreamingRenderer) RenderPage(page *vdom.Page) (int64, error) {
	return s.stream(s.PageChunks(page, s.chunkSize))
}

func (s *StreamingRenderer) stream(seq iter.Seq[string]) (int64, error) {
	var written int64
	for chunk := range seq {
		n, err := s.w.Write([]byte(chunk))
		written += int64(n)
		if err != nil {
			return written, err
		}
		s.flush()
	}
	return written, nil
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps a ResponseWriter and counts flushes.
// This is useful for testing streaming behavior.
type FlushableWriter struct {
	http.ResponseWriter
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
