package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"connectTimeout": "10s",
		},
		"jwt": map[string]any{
			"secretKey":         "",
			"expirationMinutes": 60,
		},
		"auth": map[string]any{
			"bcryptCost": 12,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "JWT_SECRETKEY", want: "jwt.secretKey"},
		{envKey: "JWT_EXPIRATIONMINUTES", want: "jwt.expirationMinutes"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
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
