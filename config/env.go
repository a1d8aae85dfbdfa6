package config

import "os"

// GetEnv returns the value of the environment variable, or "" when unset.
// Callers that need a default handle the empty string themselves.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault returns the environment variable or the given fallback.
func GetEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
