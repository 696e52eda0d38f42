package configloader

import (
	"slices"
	"testing"

	"github.com/yaklabco/semlint/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SEMLINT_FLAVOR", "gfm")
	t.Setenv("SEMLINT_PACK", "strict")
	t.Setenv("SEMLINT_JOBS", "4")
	t.Setenv("SEMLINT_IGNORE", " vendor/** , ,dist/**")
	t.Setenv("SEMLINT_DISABLE", "SEM007,tableless-design")
	t.Setenv("SEMLINT_SERVER_MAX_BODY_BYTES", "1024")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Flavor != config.FlavorGFM {
		t.Errorf("expected flavor gfm, got %q", cfg.Flavor)
	}
	if cfg.Pack != "strict" {
		t.Errorf("expected pack strict, got %q", cfg.Pack)
	}
	if cfg.Jobs != 4 {
		t.Errorf("expected jobs 4, got %d", cfg.Jobs)
	}
	if !slices.Equal(cfg.Ignore, []string{"vendor/**", "dist/**"}) {
		t.Errorf("unexpected ignore patterns %v", cfg.Ignore)
	}
	if !slices.Equal(cfg.DisableRules, []string{"SEM007", "tableless-design"}) {
		t.Errorf("unexpected disable list %v", cfg.DisableRules)
	}
	if cfg.Server.MaxBodyBytes != 1024 {
		t.Errorf("expected max body 1024, got %d", cfg.Server.MaxBodyBytes)
	}
}

func TestLoadFromEnv_InvalidInteger(t *testing.T) {
	t.Setenv("SEMLINT_JOBS", "many")

	if err := LoadFromEnv(config.NewConfig()); err == nil {
		t.Fatal("expected error for non-integer SEMLINT_JOBS")
	}
}

func TestLoadFromEnv_NilConfig(t *testing.T) {
	t.Parallel()

	if err := LoadFromEnv(nil); err != nil {
		t.Fatalf("LoadFromEnv(nil) error = %v", err)
	}
}

func TestEnvVarNames(t *testing.T) {
	t.Parallel()

	names := EnvVarNames()
	if !slices.IsSorted(names) {
		t.Errorf("expected sorted names, got %v", names)
	}
	if !slices.Contains(names, "SEMLINT_PACK") {
		t.Errorf("expected SEMLINT_PACK in %v", names)
	}
	if len(ListEnvVars()) != len(names) {
		t.Errorf("ListEnvVars and EnvVarNames disagree")
	}
}
