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
		"dispatch": map[string]any{
			"triggerToken":        "",
			"defaultRadiusMeters": 5000,
		},
		"push": map[string]any{
			"webPush": map[string]any{
				"vapidPrivateKey": "",
			},
		},
		"subscriptions": map[string]any{
			"unsubscribeDisablesProximity": true,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DISPATCH_TRIGGERTOKEN", want: "dispatch.triggerToken"},
		{envKey: "DISPATCH_DEFAULTRADIUSMETERS", want: "dispatch.defaultRadiusMeters"},
		{envKey: "PUSH_WEBPUSH_VAPIDPRIVATEKEY", want: "push.webPush.vapidPrivateKey"},
		{envKey: "SUBSCRIPTIONS_UNSUBSCRIBEDISABLESPROXIMITY", want: "subscriptions.unsubscribeDisablesProximity"},
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
