package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"path": "soundem.db",
		},
		"auth": map[string]any{
			"tokenTTL":         "72h",
			"pbkdf2Iterations": 29000,
		},
		"env": map[string]any{
			"serviceName": "soundem",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_PATH", want: "database.path"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "AUTH_PBKDF2ITERATIONS", want: "auth.pbkdf2Iterations"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Database.Path != defaultDatabasePath {
		t.Fatalf("Database.Path = %q, want %q", cfg.Database.Path, defaultDatabasePath)
	}
	if cfg.Auth == nil {
		t.Fatal("Auth should be populated with defaults")
	}
	if cfg.Auth.TokenTTL != defaultTokenTTL {
		t.Fatalf("Auth.TokenTTL = %v, want %v", cfg.Auth.TokenTTL, defaultTokenTTL)
	}
	if cfg.Auth.PBKDF2Iterations != defaultPBKDF2Iterations {
		t.Fatalf("Auth.PBKDF2Iterations = %d, want %d", cfg.Auth.PBKDF2Iterations, defaultPBKDF2Iterations)
	}
}
