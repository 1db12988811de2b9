package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Window != 30 || cfg.KernelWidth != 40 || cfg.MinDuration != 5 || cfg.ThresholdConstant != 3 {
		t.Errorf("trend defaults = %d, %d, %d, %v", cfg.Window, cfg.KernelWidth, cfg.MinDuration, cfg.ThresholdConstant)
	}

	if want := []string{"low", "medium", "high", "very high"}; !reflect.DeepEqual(cfg.IntensityLevels, want) {
		t.Errorf("IntensityLevels = %v, want %v", cfg.IntensityLevels, want)
	}

	if want := []float64{0, 0.7, 1.2, 2.0}; !reflect.DeepEqual(cfg.IntensityConstants, want) {
		t.Errorf("IntensityConstants = %v, want %v", cfg.IntensityConstants, want)
	}

	if want := []int{100, 40, 10}; !reflect.DeepEqual(cfg.Stoppers, want) {
		t.Errorf("Stoppers = %v, want %v", cfg.Stoppers, want)
	}

	if cfg.MaxKeyphrases != 5 || cfg.MinKeyphrases != 2 || cfg.MaxNgramSize != 7 || cfg.MinNgramSize != 1 {
		t.Errorf("keyphrase defaults = %d, %d, %d, %d", cfg.MaxKeyphrases, cfg.MinKeyphrases, cfg.MaxNgramSize, cfg.MinNgramSize)
	}

	if cfg.ReplaceByWeightScore || cfg.ContextAutofix {
		t.Errorf("boolean flags should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WINDOW", "5")
	t.Setenv("THRESHOLD_CONSTANT", "2.5")
	t.Setenv("STOP_PHRASES", "spoiler,raid")
	t.Setenv("CONTEXT_AUTOFIX", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Window != 5 {
		t.Errorf("Window = %d, want 5", cfg.Window)
	}

	if cfg.ThresholdConstant != 2.5 {
		t.Errorf("ThresholdConstant = %v, want 2.5", cfg.ThresholdConstant)
	}

	if want := []string{"spoiler", "raid"}; !reflect.DeepEqual(cfg.StopPhrases, want) {
		t.Errorf("StopPhrases = %v, want %v", cfg.StopPhrases, want)
	}

	if !cfg.ContextAutofix {
		t.Error("ContextAutofix = false, want true")
	}
}
