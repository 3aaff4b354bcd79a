package publish

import (
	"bytes"
	"context"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/tagz/internal/config"
	"github.com/vango-dev/tagz/internal/errors"
	"github.com/vango-dev/tagz/pkg/middleware"
	"github.com/vango-dev/tagz/pkg/render"
	"github.com/vango-dev/tagz/pkg/vdom"
)

// ContentType is set on every published object.
const ContentType = "text/html; charset=utf-8"

// Result describes a published object.
type Result struct {
	// Key is the full object key, prefix included.
	Key string

	// Bytes is the size of the rendered document.
	Bytes int
}

// Publisher renders documents and puts them into a Store.
type Publisher struct {
	store    Store
	prefix   string
	renderer *render.Renderer
	logger   logrus.FieldLogger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = prefix
	}
}

// WithRendererConfig sets the serializer configuration. The default is
// compact output.
func WithRendererConfig(cfg render.RendererConfig) Option {
	return func(p *Publisher) {
		p.renderer = render.NewRenderer(cfg)
	}
}

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New creates a Publisher for store.
func New(store Store, opts ...Option) *Publisher {
	p := &Publisher{
		store:    store,
		renderer: render.NewRenderer(render.RendererConfig{}),
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FromConfig creates an S3 publisher from tagz.json settings. It fails with
// E131 when no bucket is configured.
func FromConfig(cfg *config.Config, opts ...Option) (*Publisher, error) {
	if !cfg.PublishEnabled() {
		return nil, errors.New("E131")
	}
	store := NewS3Store(NewS3Client(cfg.Publish), cfg.Publish.Bucket)
	base := []Option{
		WithPrefix(cfg.Publish.Prefix),
		WithRendererConfig(render.RendererConfig{
			Pretty: cfg.Render.Pretty,
			Indent: cfg.Render.Indent,
		}),
	}
	return New(store, append(base, opts...)...), nil
}

// PublishPage renders a full document and stores it under key.
func (p *Publisher) PublishPage(ctx context.Context, key string, page *vdom.Page) (Result, error) {
	return p.publish(ctx, key, func(w io.Writer) error {
		return p.renderer.RenderPage(w, page)
	})
}

// PublishElement renders an element tree and stores it under key.
func (p *Publisher) PublishElement(ctx context.Context, key string, el *vdom.Element) (Result, error) {
	return p.publish(ctx, key, func(w io.Writer) error {
		return p.renderer.RenderToWriter(w, el)
	})
}

func (p *Publisher) publish(ctx context.Context, key string, write func(io.Writer) error) (res Result, err error) {
	res.Key = p.prefix + strings.TrimPrefix(key, "/")

	ctx, span := middleware.StartSpan(ctx, "tagz.publish", attribute.String("tagz.key", res.Key))
	defer func() { middleware.EndSpan(span, err) }()

	if key == "" {
		return res, errors.New("E130").WithDetail("empty object key")
	}

	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return res, errors.New("E130").Wrap(pkgerrors.Wrap(err, "render"))
	}
	res.Bytes = buf.Len()
	span.SetAttributes(attribute.Int("tagz.bytes", res.Bytes))

	if err := p.store.Put(ctx, res.Key, ContentType, bytes.NewReader(buf.Bytes())); err != nil {
		return res, errors.New("E130").WithDetailf("storing %s", res.Key).Wrap(err)
	}

	p.logger.WithFields(logrus.Fields{
		"key":   res.Key,
		"bytes": res.Bytes,
	}).Info("published")
	return res, nil
}
