package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snyk/cli-extension-file-flows/internal/identity"
)

func TestHTTPProvider_Lookup(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected identity.Attributes
	}{
		{
			name:     "name and phone",
			body:     `{"name":"Jane Doe","preferred_username":"jdoe","phone_number":"+441234"}`,
			expected: identity.Attributes{DisplayName: "Jane Doe", PhoneNumber: "+441234"},
		},
		{
			name:     "falls back to preferred username",
			body:     `{"preferred_username":"jdoe"}`,
			expected: identity.Attributes{DisplayName: "jdoe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(http.StatusOK)
				//nolint:errcheck // Not needed in test.
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := identity.NewHTTPProvider(srv.Client(), identity.Config{EndpointURL: srv.URL})

			attrs, err := p.Lookup(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.expected, attrs)
		})
	}
}

func TestHTTPProvider_Lookup_Errors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		p := identity.NewHTTPProvider(srv.Client(), identity.Config{EndpointURL: srv.URL})

		_, err := p.Lookup(context.Background())

		var httpErr *identity.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	})

	t.Run("no display name", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			//nolint:errcheck // Not needed in test.
			w.Write([]byte(`{"phone_number":"+441234"}`))
		}))
		defer srv.Close()

		p := identity.NewHTTPProvider(srv.Client(), identity.Config{EndpointURL: srv.URL})

		_, err := p.Lookup(context.Background())

		assert.ErrorIs(t, err, identity.ErrNoDisplayName)
	})

	t.Run("no endpoint", func(t *testing.T) {
		p := identity.NewHTTPProvider(http.DefaultClient, identity.Config{})

		_, err := p.Lookup(context.Background())

		assert.ErrorIs(t, err, identity.ErrEmptyEndpoint)
	})
}

func TestResolve(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		attrs, ok := identity.Resolve(ctx, identity.NewFakeProvider(identity.Attributes{DisplayName: "Jane Doe"}), &logger)

		assert.True(t, ok)
		assert.Equal(t, "Jane Doe", attrs.DisplayName)
	})

	t.Run("lookup failure degrades to unknown", func(t *testing.T) {
		attrs, ok := identity.Resolve(ctx, identity.NewFakeProvider(identity.Attributes{}).WithError(assert.AnError), &logger)

		assert.False(t, ok)
		assert.Equal(t, identity.UnknownDisplayName, attrs.DisplayName)
		assert.Empty(t, attrs.PhoneNumber)
	})

	t.Run("absent provider", func(t *testing.T) {
		attrs, ok := identity.Resolve(ctx, nil, &logger)

		assert.False(t, ok)
		assert.Equal(t, "Unknown", attrs.DisplayName)
	})
}
