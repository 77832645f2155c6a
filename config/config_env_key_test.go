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
		"push": map[string]any{
			"vapidPublicKey": "",
		},
		"dispatch": map[string]any{
			"sendTimeout": "10s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUSH_VAPIDPUBLICKEY", want: "push.vapidPublicKey"},
		{envKey: "DISPATCH_SENDTIMEOUT", want: "dispatch.sendTimeout"},
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

func TestApplyDispatchDefaults(t *testing.T) {
	var cfg DispatchConfig
	applyDispatchDefaults(&cfg)

	if cfg.Concurrency != defaultDispatchConcurrency {
		t.Fatalf("Concurrency = %d, want %d", cfg.Concurrency, defaultDispatchConcurrency)
	}
	if cfg.SendTimeout != defaultSendTimeout {
		t.Fatalf("SendTimeout = %s, want %s", cfg.SendTimeout, defaultSendTimeout)
	}
	if cfg.QuietStartHour != defaultQuietStartHour || cfg.QuietEndHour != defaultQuietEndHour {
		t.Fatalf("quiet window = %d-%d, want %d-%d",
			cfg.QuietStartHour, cfg.QuietEndHour, defaultQuietStartHour, defaultQuietEndHour)
	}

	// An explicitly configured window is left alone.
	cfg = DispatchConfig{QuietStartHour: 23, QuietEndHour: 6}
	applyDispatchDefaults(&cfg)
	if cfg.QuietStartHour != 23 || cfg.QuietEndHour != 6 {
		t.Fatalf("configured quiet window overridden: %d-%d", cfg.QuietStartHour, cfg.QuietEndHour)
	}
}
