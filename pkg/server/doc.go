// Package server is the tagz HTTP render service.
//
// It parses posted HTML with pkg/parse and writes it back through
// pkg/render:
//
//	POST /render?pretty=1&indent=%20%20&chunk=1024   chunked, flushed HTML
//	POST /lines?indent=...                           pretty lines as text/plain
//	GET  /ws                                         WebSocket line streaming
//	GET  /healthz                                    liveness
//	GET  /metrics                                    Prometheus exposition
//
// Over the WebSocket each text message is one document. The reply is one
// text message per pretty-printed line, then an empty message marking the
// end of the document.
//
// # Example Usage
//
//	cfg, _ := config.LoadOrDefault(".")
//	srv := server.New(cfg, server.WithLogger(logrus.StandardLogger()))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Request bodies and WebSocket messages are capped at the configured
// server.maxBodyBytes.
package server
