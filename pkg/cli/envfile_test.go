package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvironmentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funexpr.yaml")
	content := `
variables:
  greeting: hello
  retries: 3
functions: [split, len]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	envFile, err := loadEnvironmentFile(path)
	if err != nil {
		t.Fatal(err)
	}

	env := envFile.buildEnvironment()
	if got := env.StaticVariables()["greeting"]; got != "hello" {
		t.Errorf("greeting: got %v, want hello", got)
	}
	if got := env.StaticVariables()["retries"]; got != int64(3) {
		t.Errorf("retries: got %v (%T), want int64 3", got, got)
	}

	registry := envFile.buildRegistry()
	if registry.Lookup("split") == nil {
		t.Error("whitelisted split missing")
	}
	if registry.Lookup("uuid") != nil {
		t.Error("uuid not whitelisted but present")
	}
}

func TestLoadEnvironmentFileDefaultsToEmpty(t *testing.T) {
	envFile, err := loadEnvironmentFile("")
	if err != nil {
		t.Fatal(err)
	}

	if len(envFile.Variables) != 0 {
		t.Errorf("got %d variables, want 0", len(envFile.Variables))
	}

	// No whitelist means the full standard registry
	if envFile.buildRegistry().Lookup("uuid") == nil {
		t.Error("full registry missing uuid")
	}
}

func TestLoadEnvironmentFileMissing(t *testing.T) {
	if _, err := loadEnvironmentFile("/does/not/exist.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
