package main

import (
	"bytes"
	"strings"
	"testing"

	"specfit/internal/evaluate"
)

func TestCatalogCommandListsAllFamilies(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"catalog"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{"norm", "genextreme", "wrapcauchy", "84 families"} {
		if !strings.Contains(got, want) {
			t.Errorf("catalog output missing %q", want)
		}
	}
}

func TestSelectFamilies(t *testing.T) {
	all, err := selectFamilies(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 84 {
		t.Errorf("default selection has %d families", len(all))
	}

	some, err := selectFamilies([]string{"norm", "gamma"})
	if err != nil {
		t.Fatal(err)
	}
	if len(some) != 2 || some[0].Name() != "norm" || some[1].Name() != "gamma" {
		t.Errorf("selection = %v", some)
	}

	if _, err := selectFamilies([]string{"bogus"}); err == nil {
		t.Error("unknown family accepted")
	}
}

func TestApplyRunFlagsOverridesConfig(t *testing.T) {
	cfg := evaluate.DefaultConfig()
	cfg.Reps = 500

	cmd := runCmd
	if err := cmd.Flags().Set("reps", "50"); err != nil {
		t.Fatal(err)
	}
	defer cmd.Flags().Set("reps", "0")
	runFlags.reps = 50

	applyRunFlags(cmd, &cfg)
	if cfg.Reps != 50 {
		t.Errorf("reps = %d, want flag override 50", cfg.Reps)
	}
	if cfg.InputDir != "data" {
		t.Errorf("untouched field changed: %q", cfg.InputDir)
	}
}
