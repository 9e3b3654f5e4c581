package auth

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyHeader is the request header checked before the apikey query parameter
const APIKeyHeader = "X-API-Key"

type Authenticator interface {
	Authenticate(r *http.Request) bool
}

// NoAuth is an authenticator that allows all requests
type NoAuth struct{}

func (n *NoAuth) Authenticate(r *http.Request) bool {
	return true
}

// APIKeyAuth authenticates requests using a config-specified API key, sent
// either in the X-API-Key header or the apikey query parameter
type APIKeyAuth struct {
	APIKey string
}

func (a *APIKeyAuth) Authenticate(r *http.Request) bool {
	if a.APIKey == "" {
		return false
	}
	providedKey := r.Header.Get(APIKeyHeader)
	if providedKey == "" {
		providedKey = r.URL.Query().Get("apikey")
	}
	return subtle.ConstantTimeCompare([]byte(providedKey), []byte(a.APIKey)) == 1
}

// NewAuthenticator creates an authenticator based on method and config
func NewAuthenticator(method, apiKey string) Authenticator {
	switch method {
	case "apikey":
		return &APIKeyAuth{APIKey: apiKey}
	default:
		return &NoAuth{}
	}
}
