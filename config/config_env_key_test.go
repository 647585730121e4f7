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
		"admin": map[string]any{
			"tokenSecret": "",
		},
		"geocoding": map[string]any{
			"geoapifyKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ADMIN_TOKENSECRET", want: "admin.tokenSecret"},
		{envKey: "GEOCODING_GEOAPIFYKEY", want: "geocoding.geoapifyKey"},
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
	cfg := &Config{
		Geocoding: &GeocodingConfig{GeoapifyKey: "key"},
		Tiles:     &TilesConfig{StadiaKey: "key"},
	}

	cfg.applyDefaults()

	if cfg.Admin.TokenTTL != defaultAdminTokenTTL {
		t.Fatalf("Admin.TokenTTL = %v, want %v", cfg.Admin.TokenTTL, defaultAdminTokenTTL)
	}
	if cfg.Geocoding.CacheSize != defaultGeocodingCacheLen {
		t.Fatalf("Geocoding.CacheSize = %d, want %d", cfg.Geocoding.CacheSize, defaultGeocodingCacheLen)
	}
	if cfg.Geocoding.CacheTTL != defaultGeocodingCacheTTL {
		t.Fatalf("Geocoding.CacheTTL = %v, want %v", cfg.Geocoding.CacheTTL, defaultGeocodingCacheTTL)
	}
	if cfg.Tiles.Style != defaultTileStyle {
		t.Fatalf("Tiles.Style = %q, want %q", cfg.Tiles.Style, defaultTileStyle)
	}
}
