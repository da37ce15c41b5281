package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Provider looks up attributes of the acting user.
type Provider interface {
	Lookup(ctx context.Context) (Attributes, error)
}

// Config contains configuration for the identity attribute client.
type Config struct {
	EndpointURL string
}

// HTTPProvider fetches identity attributes from an HTTP endpoint. The HTTP
// client is expected to authenticate the request.
type HTTPProvider struct {
	httpClient *http.Client
	cfg        Config
}

var _ Provider = (*HTTPProvider)(nil)

// NewHTTPProvider creates a new HTTPProvider with the provided HTTP client and configuration.
func NewHTTPProvider(httpClient *http.Client, cfg Config) *HTTPProvider {
	return &HTTPProvider{httpClient, cfg}
}

// Lookup returns the attributes of the authenticated user.
func (p *HTTPProvider) Lookup(ctx context.Context) (Attributes, error) {
	if p.cfg.EndpointURL == "" {
		return Attributes{}, ErrEmptyEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.EndpointURL, http.NoBody)
	if err != nil {
		return Attributes{}, fmt.Errorf("failed to create identity request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := p.httpClient.Do(req)
	if err != nil {
		return Attributes{}, fmt.Errorf("error making identity request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		bts, readErr := io.ReadAll(res.Body)
		if readErr != nil {
			return Attributes{}, fmt.Errorf("failed to read response body: %w", readErr)
		}
		return Attributes{}, NewHTTPError(res.StatusCode, res.Status, "identity attributes", bts)
	}

	var respBody ResponseBody
	if err := json.NewDecoder(res.Body).Decode(&respBody); err != nil {
		return Attributes{}, fmt.Errorf("failed to decode identity response body: %w", err)
	}

	name := strings.TrimSpace(respBody.Name)
	if name == "" {
		name = strings.TrimSpace(respBody.PreferredUsername)
	}
	if name == "" {
		return Attributes{}, ErrNoDisplayName
	}

	return Attributes{DisplayName: name, PhoneNumber: respBody.PhoneNumber}, nil
}

// Resolve looks up the identity attributes without ever failing. A nil
// provider or any lookup error yields UnknownDisplayName; the second return
// value reports whether the lookup succeeded.
func Resolve(ctx context.Context, provider Provider, logger *zerolog.Logger) (Attributes, bool) {
	if provider == nil {
		logger.Debug().Msg("No identity provider configured, using default display name")
		return Attributes{DisplayName: UnknownDisplayName}, false
	}

	attrs, err := provider.Lookup(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to look up identity attributes")
		return Attributes{DisplayName: UnknownDisplayName}, false
	}

	logger.Debug().Str("display_name", attrs.DisplayName).Msg("Resolved identity attributes")
	return attrs, true
}
