package main

import "testing"

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WORDS_COMMON", "250")
	t.Setenv("HARD_MODE", "true")
	t.Setenv("RANK_WORKERS", "3")
	t.Setenv("SAMPLE_SIZE", "nope")
	t.Setenv("RANKING_CACHE", "./data/rankings.db")

	cfg := loadConfig()
	if cfg.LogLevel != "debug" || cfg.Common != 250 || !cfg.Hard || cfg.Workers != 3 {
		t.Errorf("loadConfig = %+v", cfg)
	}
	if cfg.SampleSize != 10 {
		t.Errorf("SampleSize = %d, want default 10 for unparsable value", cfg.SampleSize)
	}
	if cfg.CachePath != "./data/rankings.db" {
		t.Errorf("CachePath = %q", cfg.CachePath)
	}
}

func TestEnvHelpersDefaults(t *testing.T) {
	t.Setenv("GUESSER_TEST_EMPTY", "")
	if getEnv("GUESSER_TEST_EMPTY", "x") != "x" {
		t.Error("getEnv ignored default")
	}
	if envInt("GUESSER_TEST_EMPTY", 7) != 7 {
		t.Error("envInt ignored default")
	}
	if envBool("GUESSER_TEST_EMPTY", true) != true {
		t.Error("envBool ignored default")
	}
}
