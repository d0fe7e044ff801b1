package config

import (
	"fmt"
	"os"
	"time"

	"github.com/indigo-web/minihttp/internal/logging"
	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"
)

// Blob store backends.
const (
	StoreFS     = "fs"
	StoreMemory = "memory"
)

type (
	NET struct {
		// Addr is the TCP address the server listens at.
		Addr string `yaml:"addr"`
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int `yaml:"readBufferSize"`
		// ReadTimeout limits how long a single read from the client may block. A silent
		// peer is disconnected after this period. Zero disables the deadline.
		ReadTimeout time.Duration `yaml:"readTimeout"`
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration `yaml:"acceptLoopInterruptPeriod"`
	}

	HTTP struct {
		// MaxHeaderSize limits the headers section, request line included.
		MaxHeaderSize int `yaml:"maxHeaderSize"`
		// StrictFraming makes a stream that ends before the headers section terminator or
		// before the whole body is received an error, instead of decoding whatever arrived.
		StrictFraming bool `yaml:"strictFraming" test:"nullable"`
		// LegacyHeaderScan stops scanning headers at the first unrecognized one, instead
		// of skipping it and looking at the rest.
		LegacyHeaderScan bool `yaml:"legacyHeaderScan" test:"nullable"`
	}

	Files struct {
		// Directory is prepended to the path remainder after /files/ to form a key. It is
		// concatenated as is, so it usually must end with a slash.
		Directory string `yaml:"directory" test:"nullable"`
		// Store is either StoreFS or StoreMemory.
		Store string `yaml:"store"`
	}

	Log struct {
		// Level is one of debug, info, warn or error.
		Level string `yaml:"level"`
	}

	Metrics struct {
		// Addr is where the prometheus metrics are exposed. Empty disables the exposition.
		Addr string `yaml:"addr" test:"nullable"`
	}
)

// Config holds settings used across various parts of the server.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET     NET     `yaml:"net"`
	HTTP    HTTP    `yaml:"http"`
	Files   Files   `yaml:"files"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			Addr:                      "127.0.0.1:4221",
			ReadBufferSize:            4 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
		HTTP: HTTP{
			MaxHeaderSize: 16 * 1024,
		},
		Files: Files{
			Store: StoreFS,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path on top of the defaults. Keys missing in the file
// keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err = yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	switch {
	case c.NET.ReadBufferSize <= 0:
		return fmt.Errorf("config: net.readBufferSize must be positive, got %d", c.NET.ReadBufferSize)
	case c.NET.AcceptLoopInterruptPeriod <= 0:
		return fmt.Errorf("config: net.acceptLoopInterruptPeriod must be positive")
	case c.NET.ReadTimeout < 0:
		return fmt.Errorf("config: net.readTimeout must not be negative")
	case c.HTTP.MaxHeaderSize <= 0:
		return fmt.Errorf("config: http.maxHeaderSize must be positive, got %d", c.HTTP.MaxHeaderSize)
	case c.Files.Store != StoreFS && c.Files.Store != StoreMemory:
		return fmt.Errorf("config: unknown files.store %q", c.Files.Store)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	return nil
}

// String returns the config as a single-line JSON, suitable for logging.
func (c *Config) String() string {
	str, err := json.ConfigCompatibleWithStandardLibrary.MarshalToString(c)
	if err != nil {
		return fmt.Sprintf("<unprintable config: %s>", err)
	}

	return str
}
