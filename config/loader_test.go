package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"lifecycle": "",
		},
		"maintenance": map[string]any{
			"pendingRetention": "720h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_LIFECYCLE", want: "secretKey.lifecycle"},
		{envKey: "MAINTENANCE_PENDINGRETENTION", want: "maintenance.pendingRetention"},
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

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth.SessionTTL != time.Hour {
		t.Fatalf("SessionTTL = %s, want 1h", cfg.Auth.SessionTTL)
	}
	if cfg.Maintenance.PendingRetention != 30*24*time.Hour {
		t.Fatalf("PendingRetention = %s, want 720h", cfg.Maintenance.PendingRetention)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:        &AuthConfig{SessionTTL: 2 * time.Hour},
		Maintenance: &MaintenanceConfig{PendingRetention: time.Hour, PurgeInterval: time.Minute},
	}
	cfg.applyDefaults()

	if cfg.Auth.SessionTTL != 2*time.Hour {
		t.Fatalf("SessionTTL = %s, want 2h", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.LifecycleTokenTTL != time.Hour {
		t.Fatalf("LifecycleTokenTTL = %s, want 1h", cfg.Auth.LifecycleTokenTTL)
	}
	if cfg.Maintenance.PurgeInterval != time.Minute {
		t.Fatalf("PurgeInterval = %s, want 1m", cfg.Maintenance.PurgeInterval)
	}
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		"POSTGRES_REPLICAS_3_HOST":     "unreachable",
		"POSTGRES_REPLICAS_3_PORT":     "5434",
	}

	replicas := replicasFromEnv(func(key string) string { return vars[key] })

	if len(replicas) != 2 {
		t.Fatalf("len(replicas) = %d, want 2", len(replicas))
	}
	if replicas[0].Host != "replica-a" || replicas[0].UserName != "reader" {
		t.Fatalf("replicas[0] = %+v", replicas[0])
	}
	if replicas[1].Port != "5433" {
		t.Fatalf("replicas[1].Port = %q, want 5433", replicas[1].Port)
	}
}

func TestFindConfigFile_PrefersConfigDirEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "examhub.yaml"), []byte("env: {}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(configDirEnv, dir)

	path, err := findConfigFile("examhub.yaml", nil)
	if err != nil {
		t.Fatalf("findConfigFile: %v", err)
	}
	if path != filepath.Join(dir, "examhub.yaml") {
		t.Fatalf("path = %q", path)
	}

	if _, err := findConfigFile("missing.yaml", nil); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
