package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/tagz/internal/config"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) (*Server, *logtest.Hook) {
	t.Helper()
	cfg := config.New()
	if mutate != nil {
		mutate(cfg)
	}
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return New(cfg, WithLogger(logger), WithRegistry(prometheus.NewRegistry())), hook
}

func post(t *testing.T, s *Server, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)))
	return rec
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRenderCompact(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := post(t, s, "/render", `<DIV class="b a"><p>hi &amp; bye</p><br></DIV>`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `<div class="a b"><p>hi &amp; bye</p><br/></div>`, rec.Body.String())
	assert.True(t, rec.Flushed)
}

func TestRenderPrettyWithIndent(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := post(t, s, "/render?pretty=true&indent=%20%20&chunk=3", `<ul><li>a</li></ul>`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<ul>\n  <li>\n    a\n  </li>\n</ul>\n", rec.Body.String())
}

func TestRenderUsesConfigDefaults(t *testing.T) {
	s, _ := newTestServer(t, func(c *config.Config) {
		c.Render.Pretty = true
		c.Render.Indent = "-"
	})
	rec := post(t, s, "/render", `<p>x</p>`)
	assert.Equal(t, "<p>\n-x\n</p>\n", rec.Body.String())

	rec = post(t, s, "/render?pretty=0", `<p>x</p>`)
	assert.Equal(t, "<p>x</p>", rec.Body.String())
}

func TestRenderDocumentKeepsDoctype(t *testing.T) {
	s, _ := newTestServer(t, nil)
	src := `<!DOCTYPE html><html lang="en"><head><title>T</title></head><body><p>Hi</p></body></html>`
	rec := post(t, s, "/render", src)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<!DOCTYPE html>\n"+src[len("<!DOCTYPE html>"):], rec.Body.String())
}

func TestRenderBadQuery(t *testing.T) {
	s, hook := newTestServer(t, nil)

	rec := post(t, s, "/render?chunk=big", `<p>x</p>`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid chunk size")

	rec = post(t, s, "/render?pretty=maybe", `<p>x</p>`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Message == "request failed" && e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	assert.True(t, warned, "expected a request failed warning")
}

func TestRenderBodyTooLarge(t *testing.T) {
	s, _ := newTestServer(t, func(c *config.Config) {
		c.Server.MaxBodyBytes = 16
	})
	rec := post(t, s, "/render", `<p>`+strings.Repeat("x", 64)+`</p>`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "E120")
}

func TestRenderErrorJSON(t *testing.T) {
	s, _ := newTestServer(t, func(c *config.Config) {
		c.Server.MaxBodyBytes = 16
	})
	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(strings.Repeat("x", 64)))
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "E120", payload["code"])
	assert.Contains(t, payload["cause"], "request body too large")
}

func TestLines(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := post(t, s, "/lines", `<div><b>x</b></div>`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<div>\n\t<b>\n\t\tx\n\t</b>\n</div>\n", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, nil)
	post(t, s, "/render?pretty=1", `<p>x</p>`)
	post(t, s, "/lines", `<p>x</p>`)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `tagz_renders_total{mode="pretty",status="ok"} 1`)
	assert.Contains(t, body, `tagz_renders_total{mode="lines",status="ok"} 1`)
	assert.Contains(t, body, "tagz_render_duration_seconds_bucket")
	assert.Contains(t, body, "tagz_rendered_bytes_total")
}

func TestRequestLogging(t *testing.T) {
	s, hook := newTestServer(t, nil)
	post(t, s, "/render", `<p>x</p>`)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "request", entry.Message)
	assert.Equal(t, "/render", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Equal(t, "server", entry.Data["component"])
}

func readDocument(t *testing.T, conn *websocket.Conn) []string {
	t.Helper()
	var lines []string
	for {
		mt, data, err := conn.ReadMessage()
		require.NoError(t, err)
		require.Equal(t, websocket.TextMessage, mt)
		if len(data) == 0 {
			return lines
		}
		lines = append(lines, string(data))
	}
}

func TestWebSocketLines(t *testing.T) {
	s, _ := newTestServer(t, nil)
	ts := httptest.NewServer(s)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	defer resp.Body.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`<ul><li>a</li></ul>`)))
	assert.Equal(t, []string{"<ul>", "\t<li>", "\t\ta", "\t</li>", "</ul>"}, readDocument(t, conn))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`<style>a {}

b {}</style>`)))
	assert.Equal(t, []string{"<style>", "\ta {}", "\tb {}", "</style>"}, readDocument(t, conn))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`<!DOCTYPE html><html><body></body></html>`)))
	assert.Equal(t, []string{"<!DOCTYPE html>", "<html>", "\t<head>", "\t</head>", "\t<body>", "\t</body>", "</html>"}, readDocument(t, conn))

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
}

func TestWebSocketMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	logger, _ := logtest.NewNullLogger()
	s := New(config.New(), WithLogger(logger), WithRegistry(reg))
	ts := httptest.NewServer(s)
	defer ts.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`<p>x</p>`)))
	readDocument(t, conn)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `tagz_renders_total{mode="ws",status="ok"} 1`)
}
