package util

import (
	"github.com/snyk/go-application-framework/pkg/configuration"
)

// StringWithEnv returns the configured value of key, falling back to the
// environment variable envVar as resolved by the configuration.
func StringWithEnv(cfg configuration.Configuration, key, envVar string) string {
	if v := cfg.GetString(key); v != "" {
		return v
	}
	return cfg.GetString(envVar)
}
