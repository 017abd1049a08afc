package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId":       "",
			"rabbitmqQueue": "",
		},
		"auth": map[string]any{
			"tokenTTL":       "",
			"privateKeyPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_RABBITMQQUEUE", want: "pubsub.rabbitmqQueue"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "AUTH_PRIVATEKEYPATH", want: "auth.privateKeyPath"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Auth == nil || cfg.Auth.TokenTTL != defaultTokenTTL {
		t.Fatalf("token ttl = %v, want %v", cfg.Auth, defaultTokenTTL)
	}
	if cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("bcrypt cost = %d, want %d", cfg.Auth.BcryptCost, defaultBcryptCost)
	}
	if cfg.Customer.PassportExpiryHorizon != defaultPassportExpiryHorizon {
		t.Fatalf("passport horizon = %v, want %v", cfg.Customer.PassportExpiryHorizon, defaultPassportExpiryHorizon)
	}
	if cfg.Reservation == nil || cfg.Reservation.PreventOverlap {
		t.Fatalf("reservation config should default to overlap checks disabled")
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("max body size = %q", cfg.HTTP.MaxRequestBodySize)
	}
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Env = "Production"
	if !cfg.IsProduction() {
		t.Fatal("expected production env to be detected case-insensitively")
	}

	cfg.Env.Env = "development"
	if cfg.IsProduction() {
		t.Fatal("development must not be treated as production")
	}
}
