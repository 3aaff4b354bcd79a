package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vango-dev/tagz/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tagz.json"

	// DefaultPort is the default render service port.
	DefaultPort = 8080

	// DefaultHost is the default render service host.
	DefaultHost = "localhost"

	// DefaultIndent is the default pretty-print indentation unit.
	DefaultIndent = "\t"

	// DefaultChunkSize is the default streaming chunk size in bytes.
	DefaultChunkSize = 4096

	// DefaultMaxBodyBytes caps request bodies accepted by the service.
	DefaultMaxBodyBytes = 1 << 20

	// DefaultRegion is used for S3 when neither the file nor AWS_REGION
	// names one.
	DefaultRegion = "us-east-1"
)

// Environment variables that override file values.
const (
	EnvPort   = "TAGZ_PORT"
	EnvRegion = "AWS_REGION"
)

// Config represents the complete tagz.json configuration.
type Config struct {
	// Render contains serializer defaults.
	Render RenderConfig `json:"render"`

	// Server contains render service settings.
	Server ServerConfig `json:"server"`

	// Publish contains S3 publishing settings.
	Publish PublishConfig `json:"publish"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains serializer settings.
type RenderConfig struct {
	// Pretty enables indented output by default.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indentation unit for pretty output.
	Indent string `json:"indent,omitempty"`

	// ChunkSize is the chunk size used when streaming.
	ChunkSize int `json:"chunkSize,omitempty"`
}

// ServerConfig contains render service settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// MaxBodyBytes is the largest accepted request body.
	MaxBodyBytes int64 `json:"maxBodyBytes,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	// Bucket is the destination bucket. Publishing is disabled when empty.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint (for S3-compatible stores).
	Endpoint string `json:"endpoint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Render: RenderConfig{
			Indent:    DefaultIndent,
			ChunkSize: DefaultChunkSize,
		},
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
		Publish: PublishConfig{
			Region: DefaultRegion,
		},
	}
}

// Load reads tagz.json from the specified directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path, then applies
// defaults and environment overrides.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E110").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E111").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads tagz.json from dir when it exists and falls back to
// defaults (with environment overrides) otherwise.
func LoadOrDefault(dir string) (*Config, error) {
	if Exists(dir) {
		return Load(dir)
	}
	cfg := New()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}
	if c.Render.ChunkSize == 0 {
		c.Render.ChunkSize = DefaultChunkSize
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Publish.Region == "" {
		c.Publish.Region = DefaultRegion
	}
}

// applyEnv applies environment overrides.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("E112").
				WithDetailf("%s=%q is not a port number", EnvPort, v).
				Wrap(err)
		}
		c.Server.Port = port
	}
	if v, ok := os.LookupEnv(EnvRegion); ok && v != "" {
		c.Publish.Region = v
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E112").
			WithDetail("server.port must be between 0 and 65535")
	}
	if c.Server.MaxBodyBytes < 0 {
		return errors.New("E112").
			WithDetail("server.maxBodyBytes must not be negative")
	}
	if c.Render.ChunkSize < 0 {
		return errors.New("E112").
			WithDetail("render.chunkSize must not be negative")
	}
	return nil
}

// Address returns the listen address for the render service.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// PublishEnabled reports whether a destination bucket is configured.
func (c *Config) PublishEnabled() bool {
	return c.Publish.Bucket != ""
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
