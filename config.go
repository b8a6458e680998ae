package passport

import (
	"github.com/caarlos0/env/v11"
	"github.com/goliatone/go-errors"
)

// EnvConfig implements Config from process environment variables.
type EnvConfig struct {
	UsernameField      string `env:"AUTH_USERNAME_FIELD" envDefault:"email"`
	GoogleClientID     string `env:"CLIENT_ID"`
	GoogleClientSecret string `env:"CLIENT_SECRET"`
	GoogleCallbackURL  string `env:"CALLBACK_URL" envDefault:"/auth/google/cb"`
	SessionCookieName  string `env:"SESSION_COOKIE_NAME" envDefault:"passport_session"`
	SessionDuration    int    `env:"SESSION_DURATION_HOURS" envDefault:"24"`
}

var _ Config = (*EnvConfig)(nil)

// LoadConfig reads configuration from the environment.
func LoadConfig() (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to parse passport environment config")
	}
	return cfg, nil
}

func (c *EnvConfig) GetUsernameField() string {
	if c.UsernameField == "" {
		return DefaultUsernameField
	}
	return c.UsernameField
}

func (c *EnvConfig) GetGoogleClientID() string {
	return c.GoogleClientID
}

func (c *EnvConfig) GetGoogleClientSecret() string {
	return c.GoogleClientSecret
}

func (c *EnvConfig) GetGoogleCallbackURL() string {
	return c.GoogleCallbackURL
}

func (c *EnvConfig) GetSessionCookieName() string {
	return c.SessionCookieName
}

func (c *EnvConfig) GetSessionDuration() int {
	return c.SessionDuration
}
