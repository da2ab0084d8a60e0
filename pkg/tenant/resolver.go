package tenant

import (
	"net/http"
	"regexp"

	"github.com/campuskit/campuskit/pkg/session"
)

const (
	// MaxIdentifierLength keeps tenant IDs DNS-compatible and bounds abuse
	// via very long header values.
	MaxIdentifierLength = 63

	// DefaultHeader is the canonical tenant header name. Lookup through
	// http.Header is case-insensitive, so any casing on the wire matches.
	DefaultHeader = "X-Tenant-ID"

	// DefaultClaimKey is the session-token claim carrying the tenant ID.
	DefaultClaimKey = "tid"
)

// identifierPattern allows alphanumeric identifiers with inner hyphens.
var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*$`)

// Resolver extracts a tenant identifier from an HTTP request.
// Returns empty string if this source has no tenant, error if extraction failed.
type Resolver func(r *http.Request) (string, error)

// Config holds the resolver settings supplied at process start.
type Config struct {
	Header   string `env:"TENANT_HEADER" envDefault:"X-Tenant-ID"` // Header is the inbound tenant header name.
	ClaimKey string `env:"TENANT_CLAIM" envDefault:"tid"`          // ClaimKey is the session claim carrying the tenant ID.
	Default  string `env:"TENANT_DEFAULT" envDefault:"default"`    // Default is the fallback tenant when no source matches.
}

func isValidIdentifier(id string) bool {
	return id != "" && len(id) <= MaxIdentifierLength && identifierPattern.MatchString(id)
}

// NewClaimResolver extracts the tenant from an authenticated session token.
// Requests without a session pass through with an empty result.
func NewClaimResolver(claimKey string) Resolver {
	if claimKey == "" {
		claimKey = DefaultClaimKey
	}
	return func(r *http.Request) (string, error) {
		id := session.StringClaim(r.Context(), claimKey)
		if id == "" {
			return "", nil
		}
		if !isValidIdentifier(id) {
			return "", ErrInvalidIdentifier
		}
		return id, nil
	}
}

// NewHeaderResolver extracts the tenant from the given request header.
func NewHeaderResolver(header string) Resolver {
	if header == "" {
		header = DefaultHeader
	}
	return func(r *http.Request) (string, error) {
		id := r.Header.Get(header)
		if id == "" {
			return "", nil
		}
		if !isValidIdentifier(id) {
			return "", ErrInvalidIdentifier
		}
		return id, nil
	}
}

// NewChainResolver tries each resolver in order and returns the first
// non-empty identifier, falling back to fallback when every source is silent.
// With no fallback configured it fails with ErrNoTenant.
func NewChainResolver(fallback string, resolvers ...Resolver) Resolver {
	return func(r *http.Request) (string, error) {
		for _, resolve := range resolvers {
			id, err := resolve(r)
			if err != nil {
				return "", err
			}
			if id != "" {
				return id, nil
			}
		}
		if fallback != "" {
			return fallback, nil
		}
		return "", ErrNoTenant
	}
}

// NewResolver builds the standard precedence from config:
// session claim, then tenant header, then the configured default.
// Tenant identity is never inferred from the request body.
func NewResolver(cfg Config) Resolver {
	return NewChainResolver(cfg.Default,
		NewClaimResolver(cfg.ClaimKey),
		NewHeaderResolver(cfg.Header),
	)
}
