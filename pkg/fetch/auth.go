package fetch

import (
	"net/http"

	"github.com/glorpus-work/gleaner/pkg/dataset"
	"github.com/glorpus-work/gleaner/pkg/errors"
)

// Authenticator applies authentication to outgoing archive requests.
type Authenticator interface {
	Apply(req *http.Request) error
}

// BasicAuth represents HTTP Basic Authentication credentials.
type BasicAuth struct {
	Username string
	Password string
}

// Apply adds Basic Authentication headers to the HTTP request.
func (b BasicAuth) Apply(req *http.Request) error {
	req.SetBasicAuth(b.Username, b.Password)
	return nil
}

// BearerAuth represents Bearer token authentication.
type BearerAuth struct {
	Token string
}

// Apply adds a Bearer token to the Authorization header.
func (b BearerAuth) Apply(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+b.Token)
	return nil
}

// HeaderAuth represents authentication via custom HTTP headers.
type HeaderAuth struct {
	Headers map[string]string
}

// Apply adds the custom headers to the HTTP request.
func (h HeaderAuth) Apply(req *http.Request) error {
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	return nil
}

// AuthFromConfig builds an Authenticator from a dataset auth section. An
// empty type yields nil (no authentication).
func AuthFromConfig(cfg dataset.AuthConfig) (Authenticator, error) {
	switch cfg.Type {
	case "":
		return nil, nil
	case "basic":
		return BasicAuth{Username: cfg.Username, Password: cfg.Password}, nil
	case "bearer":
		return BearerAuth{Token: cfg.Token}, nil
	case "header":
		return HeaderAuth{Headers: cfg.Headers}, nil
	default:
		return nil, errors.Wrapf(errors.ErrConfigValidation, "unknown auth type %q", cfg.Type)
	}
}
