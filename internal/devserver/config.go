// Package devserver implements the local development server behind
// `cmd/demoserver`: it compiles the WASM demo program, serves it together
// with the `wasm_exec.js` bootstrap and the media files, and live-reloads
// connected browsers whenever the sources change.
package devserver

import (
	"context"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-envconfig"
)

// Config holds the server configuration, read from AUDIOTAG_* environment
// variables. Command line flags in cmd/demoserver override a few of them.
type Config struct {
	// Host and Port form the listen address.
	Host string `env:"AUDIOTAG_HOST, default=localhost" validate:"required"`
	Port int    `env:"AUDIOTAG_PORT, default=8080" validate:"gte=1,lte=65535"`

	// ModuleDir is the root of the Go module holding the demo program; the
	// compiler runs from there.
	ModuleDir string `env:"AUDIOTAG_MODULE_DIR, default=." validate:"required,dir"`

	// DemoPkg is the package pattern compiled to WASM, relative to ModuleDir.
	DemoPkg string `env:"AUDIOTAG_DEMO_PKG, default=./cmd/demo" validate:"required"`

	// MediaDir is served under the /media/ URL path; put the audio files
	// (.mp3, .ogg, .wav) the demo should play in there.
	MediaDir string `env:"AUDIOTAG_MEDIA_DIR, default=./media"`

	// BuildDir receives the compiled WASM binary and wasm_exec.js. When
	// empty, a temporary directory is created at start and removed at exit.
	BuildDir string `env:"AUDIOTAG_BUILD_DIR"`
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads the configuration from the environment. Callers are expected to
// apply their own overrides (command line flags) and then Validate.
func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to read configuration from environment")
	}
	return cfg, nil
}

// Validate checks the field constraints declared in the Config struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrapf(err, "invalid configuration")
	}
	return nil
}
