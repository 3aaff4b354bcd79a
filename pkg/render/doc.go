// Package render serializes vdom element trees and pages to HTML.
//
// Four output forms are produced by one traversal and always agree:
//
//   - compact: no whitespace is added between nodes
//   - pretty: one tag or text line per output line, indented per depth
//   - lines: the pretty form as a lazy sequence of lines
//   - chunks: either form as a lazy sequence of fixed-size pieces
//
// # Basic Usage
//
//	html := render.String(node)
//	pretty := render.Pretty(node)
//
// With explicit configuration:
//
//	r := render.NewRenderer(render.RendererConfig{Pretty: true, Indent: "  "})
//	err := r.RenderToWriter(w, node)
//
// # Full Pages
//
//	page := vdom.MustPage(body, []*vdom.Element{title}, vdom.Lang("en"))
//	html := render.HTML5(page, false)
//
// The page preamble ("<!doctype html>\n" unless replaced) is emitted before
// the root element.
//
// # Streaming
//
// Lines and Chunks return iter.Seq values. Stopping the range loop early
// stops the traversal, so deferred producers later in the tree never run.
// StreamingRenderer writes chunks to an http.ResponseWriter and flushes
// after each one.
//
// # Deferred Values
//
// Deferred children and attribute values are evaluated exactly once per
// traversal. Produced text is escaped unless the parent element is
// raw-text; a produced element is rendered in place.
package render
