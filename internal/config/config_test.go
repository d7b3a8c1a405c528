package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/tipsplit/internal/form"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"TIPSPLIT_MIN_SPLIT", "TIPSPLIT_MAX_SPLIT", "TIPSPLIT_SLIDER_STEPS", "TIPSPLIT_CURRENCY", "TIPSPLIT_METRICS_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Split != form.DefaultRange {
		t.Errorf("Split = %+v, want %+v", cfg.Split, form.DefaultRange)
	}
	if cfg.SliderSteps != 5 {
		t.Errorf("SliderSteps = %d, want 5", cfg.SliderSteps)
	}
	if cfg.Currency != "$" {
		t.Errorf("Currency = %q, want $", cfg.Currency)
	}
	if cfg.MetricsFile != "" {
		t.Errorf("MetricsFile = %q, want empty", cfg.MetricsFile)
	}
}

func TestLoad_EnvAndFlags(t *testing.T) {
	t.Setenv("TIPSPLIT_MIN_SPLIT", "2")
	t.Setenv("TIPSPLIT_MAX_SPLIT", "8")
	t.Setenv("TIPSPLIT_CURRENCY", "€")

	cfg, err := Load([]string{"-max-split", "12", "-verbose"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := form.Range{Min: 2, Max: 12}
	if cfg.Split != want {
		t.Errorf("Split = %+v, want %+v", cfg.Split, want)
	}
	if cfg.Currency != "€" {
		t.Errorf("Currency = %q, want €", cfg.Currency)
	}
	if !cfg.Verbose {
		t.Error("expected Verbose to be set by flag")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "non-integer env", env: map[string]string{"TIPSPLIT_MAX_SPLIT": "ten"}},
		{name: "zero minimum", args: []string{"-min-split", "0"}},
		{name: "reversed range", args: []string{"-min-split", "5", "-max-split", "3"}},
		{name: "negative steps", args: []string{"-slider-steps", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"TIPSPLIT_MIN_SPLIT", "TIPSPLIT_MAX_SPLIT", "TIPSPLIT_SLIDER_STEPS"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.args)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad_RangeErrorWrapsFormError(t *testing.T) {
	_, err := Load([]string{"-min-split", "0"})
	if !errors.Is(err, form.ErrInvalidRange) {
		t.Errorf("Load error = %v, want form.ErrInvalidRange in chain", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TIPSPLIT_TEST_DOTENV=loaded\n"), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Setenv("TIPSPLIT_TEST_DOTENV", "")
	os.Unsetenv("TIPSPLIT_TEST_DOTENV")

	LoadDotEnv(path)

	if got := os.Getenv("TIPSPLIT_TEST_DOTENV"); got != "loaded" {
		t.Errorf("TIPSPLIT_TEST_DOTENV = %q, want loaded", got)
	}
}
