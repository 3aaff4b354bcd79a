package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	pkgerrors "github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/tagz/pkg/middleware"
	"github.com/vango-dev/tagz/pkg/render"
)

// handleWebSocket streams pretty lines for each document received. Every
// reply ends with an empty message. Blank lines inside a document are not
// sent, so an empty message always marks the end.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	conn.SetReadLimit(s.config.Server.MaxBodyBytes)
	renderer := render.NewRenderer(render.RendererConfig{Pretty: true, Indent: s.config.Render.Indent})
	logger := s.logger.WithField("remote", r.RemoteAddr)
	logger.Debug("websocket connected")

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Warn("websocket read failed")
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := s.streamDocument(r.Context(), conn, renderer, string(data)); err != nil {
			logger.WithError(err).Warn("websocket write failed")
			return
		}
	}
}

// streamDocument sends the lines of one document followed by the
// end-of-document message. The render is recorded before the end marker
// goes out.
func (s *Server) streamDocument(ctx context.Context, conn *websocket.Conn, renderer *render.Renderer, src string) error {
	start := time.Now()
	ctx, span := middleware.StartSpan(ctx, "tagz.render", attribute.String("tagz.mode", middleware.ModeWebSocket))

	written, err := s.writeLines(ctx, conn, renderer, src)
	s.observe(middleware.ModeWebSocket, start, written, err)
	middleware.EndSpan(span, err)
	if err != nil {
		return err
	}
	return pkgerrors.Wrap(conn.WriteMessage(websocket.TextMessage, nil), "write end of document")
}

func (s *Server) writeLines(ctx context.Context, conn *websocket.Conn, renderer *render.Renderer, src string) (int, error) {
	res, err := s.parse(ctx, strings.NewReader(src))
	if err != nil {
		return 0, err
	}
	written := 0
	for line := range documentLines(renderer, res) {
		if line == "" {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
			return written, pkgerrors.Wrap(err, "write line")
		}
		written += len(line)
	}
	return written, nil
}
