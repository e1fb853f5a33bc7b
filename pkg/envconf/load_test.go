package envconf

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

type nestedConf struct {
	Name string `env:"TEST_NESTED_NAME"`
}

type testConf struct {
	Port     uint16        `env:"TEST_PORT"`
	Debug    bool          `env:"TEST_DEBUG"`
	Level    slog.Level    `env:"TEST_LEVEL"`
	Timeout  time.Duration `env:"TEST_TIMEOUT"`
	Retries  int           `env:"TEST_RETRIES"`
	Nested   nestedConf
	internal string //nolint:unused // unexported fields must be skipped
}

//nolint:paralleltest // t.Setenv forbids parallel tests
func TestLoad(t *testing.T) {
	t.Setenv("TEST_PORT", "8080")
	t.Setenv("TEST_DEBUG", "true")
	t.Setenv("TEST_LEVEL", "warn")
	t.Setenv("TEST_TIMEOUT", "15s")
	t.Setenv("TEST_RETRIES", "3")
	t.Setenv("TEST_NESTED_NAME", "payments")

	cfg := new(testConf)

	err := Load(cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 8080 {
		t.Fatalf("Port: want 8080, got %d", cfg.Port)
	}
	if !cfg.Debug {
		t.Fatalf("Debug: want true")
	}
	if cfg.Level != slog.LevelWarn {
		t.Fatalf("Level: want warn, got %v", cfg.Level)
	}
	if cfg.Timeout != 15*time.Second {
		t.Fatalf("Timeout: want 15s, got %v", cfg.Timeout)
	}
	if cfg.Retries != 3 {
		t.Fatalf("Retries: want 3, got %d", cfg.Retries)
	}
	if cfg.Nested.Name != "payments" {
		t.Fatalf("Nested.Name: want payments, got %q", cfg.Nested.Name)
	}
}

//nolint:paralleltest
func TestLoadMissingRequired(t *testing.T) {
	type conf struct {
		Missing string `env:"TEST_DEFINITELY_NOT_SET"`
	}

	err := Load(new(conf))
	if !errors.Is(err, ErrMissingRequired) {
		t.Fatalf("want ErrMissingRequired, got %v", err)
	}
}

//nolint:paralleltest
func TestLoadBadValue(t *testing.T) {
	type conf struct {
		Port uint16 `env:"TEST_BAD_PORT"`
	}

	t.Setenv("TEST_BAD_PORT", "not-a-number")

	err := Load(new(conf))
	if err == nil {
		t.Fatalf("want parse error, got nil")
	}
}

func TestLoadRejectsNonPointer(t *testing.T) {
	t.Parallel()

	err := Load(testConf{})
	if err == nil {
		t.Fatalf("want error for non-pointer destination")
	}

	err = Load(nil)
	if err == nil {
		t.Fatalf("want error for nil destination")
	}
}
