// Package config loads the example server's settings from the environment.
// The library itself takes no environment input; only cmd/example uses this.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings for the example callback server.
type Config struct {
	// AppName is displayed in the startup banner.
	AppName string `env:"APP_NAME" envDefault:"Discord OAuth Example"`

	// Port is the local port the callback server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// ClientID is the Discord application's client ID.
	ClientID uint64 `env:"DISCORD_CLIENT_ID,required"`

	// ClientSecret is the Discord application's client secret.
	ClientSecret string `env:"DISCORD_CLIENT_SECRET,required"`

	// RedirectURI must match a redirect URI registered with the
	// application and point back at this server's /callback route.
	RedirectURI string `env:"DISCORD_REDIRECT_URI" envDefault:"http://localhost:8080/callback"`

	// Scopes are requested at the consent screen.
	Scopes []string `env:"DISCORD_SCOPES" envSeparator:"," envDefault:"identify,email"`
}

// New reads the configuration from the environment.
func New() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config.New: %w", err)
	}
	return c, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
