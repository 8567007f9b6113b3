package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
)

// Credentials holds the raw service account key so one loaded key can be
// materialized into separately scoped HTTP clients per service.
type Credentials struct {
	keyJSON []byte
}

// LoadCredentials reads the service account key file. A missing or
// unreadable key is fatal for every command; nothing can proceed without it.
func LoadCredentials(path string) (*Credentials, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account key %q: %w", path, err)
	}
	return &Credentials{keyJSON: b}, nil
}

// HTTPClient returns an HTTP client that authenticates as the service
// account, restricted to the given scopes.
func (c *Credentials) HTTPClient(ctx context.Context, scopes ...string) (*http.Client, error) {
	conf, err := google.JWTConfigFromJSON(c.keyJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	return conf.Client(ctx), nil
}

// Email returns the client_email of the key, for diagnostics output.
// It returns an empty string if the key does not carry one.
func (c *Credentials) Email() string {
	var key struct {
		ClientEmail string `json:"client_email"`
	}
	if err := json.Unmarshal(c.keyJSON, &key); err != nil {
		return ""
	}
	return key.ClientEmail
}
