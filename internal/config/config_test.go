package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		def       string
		shouldSet bool
		expected  string
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			def:       "default",
			shouldSet: true,
			expected:  "test_value",
		},
		{
			name:     "variable not set",
			key:      "TEST_VAR_MISSING",
			def:      "default",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}
			if got := getenv(tt.key, tt.def); got != tt.expected {
				t.Errorf("getenv() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{name: "valid duration", value: "30s", def: time.Minute, expected: 30 * time.Second},
		{name: "invalid duration", value: "not_a_duration", def: time.Minute, expected: time.Minute},
		{name: "empty", value: "", def: time.Minute, expected: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_DURATION", tt.value)
			}
			if got := mustDuration("TEST_DURATION", tt.def); got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single", input: "a.example.com", expected: []string{"a.example.com"}},
		{name: "spaces and quotes", input: ` "a.example.com" , 'b.example.com' `, expected: []string{"a.example.com", "b.example.com"}},
		{name: "trailing comma", input: "a,", expected: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAndTrim(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("splitAndTrim() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "markd.yaml")
	content := []byte("listen_port: \":9090\"\njwt_secret: file-secret\ndb_path: /tmp/test.db\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	fc := loadFile(path)
	if fc.ListenPort != ":9090" || fc.JWTSecret != "file-secret" || fc.DBPath != "/tmp/test.db" {
		t.Fatalf("unexpected file config: %+v", fc)
	}

	// Missing path is env-only configuration, not an error.
	empty := loadFile("")
	if empty.ListenPort != "" {
		t.Fatalf("empty path should yield zero config, got %+v", empty)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "markd.yaml")
	content := []byte("listen_port: \":9090\"\njwt_secret: file-secret\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("MARKD_CONFIG_FILE", path)
	t.Setenv("MARKD_LISTEN_PORT", ":7070")

	cfg := Load()
	if cfg.ListenPort != ":7070" {
		t.Errorf("env should override file: ListenPort = %v", cfg.ListenPort)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Errorf("file value should fill unset env: JWTSecret = %v", cfg.JWTSecret)
	}
}

func TestLoad_MissingSecretPanics(t *testing.T) {
	t.Setenv("MARKD_CONFIG_FILE", "")
	t.Setenv("MARKD_JWT_SECRET", "")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Load() should have panicked without a JWT secret")
		}
	}()
	Load()
}
