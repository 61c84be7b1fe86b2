package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/dogruyaz/internal/config"
	"github.com/verte-zerg/dogruyaz/internal/model"
	"github.com/verte-zerg/dogruyaz/internal/store"
)

func validConfig() appConfig {
	return appConfig{
		Game:      model.GameConfig{Questions: 10},
		Store:     model.StoreConfig{Backend: store.BackendSQLite, Path: "/tmp/scores.db"},
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(validConfig()); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := map[string]func(*appConfig){
		"--questions":      func(c *appConfig) { c.Game.Questions = 0 },
		"game.category":    func(c *appConfig) { c.Game.Category = "geography" },
		"store.path":       func(c *appConfig) { c.Store.Path = "" },
		"--store":          func(c *appConfig) { c.Store.Backend = "postgres" },
		"store.redis-addr": func(c *appConfig) { c.Store.Backend = store.BackendRedis; c.Store.RedisAddr = "" },
		"--log-level":      func(c *appConfig) { c.LogLevel = "loud" },
		"log.format":       func(c *appConfig) { c.LogFormat = "xml" },
	}
	for want, mutate := range cases {
		cfg := validConfig()
		mutate(&cfg)
		err := validateConfig(cfg)
		if err == nil {
			t.Fatalf("%s: expected error", want)
		}
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("%s: error %q does not name the setting", want, err)
		}
	}

	mem := validConfig()
	mem.Store = model.StoreConfig{Backend: store.BackendMemory}
	if err := validateConfig(mem); err != nil {
		t.Fatalf("memory backend needs no path: %v", err)
	}
}

func TestConfirm(t *testing.T) {
	cases := map[string]bool{
		"e\n":    true,
		"Evet\n": true,
		"y\n":    true,
		"\n":     false,
		"h\n":    false,
		"":       false,
	}
	for input, want := range cases {
		var out bytes.Buffer
		got, err := confirm(strings.NewReader(input), &out, "? ")
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", input, want, got)
		}
		if out.String() != "? " {
			t.Fatalf("prompt not written: %q", out.String())
		}
	}
}

func TestResolveConfigAppliesFile(t *testing.T) {
	storeBackend = store.BackendSQLite
	logLevel = defaultLogLevel
	playQuestions = 10
	ephemeral = false

	questions := 5
	backend := store.BackendMemory
	level := "debug"
	category := "history"
	fileCfg := config.FileConfig{
		Game:  config.GameConfig{Questions: &questions, Category: &category},
		Store: config.StoreConfig{Backend: &backend},
		Log:   config.LogConfig{Level: &level},
	}
	cfg := resolveConfig(nil, fileCfg)
	if cfg.Game.Questions != 5 {
		t.Fatalf("expected 5 questions, got %d", cfg.Game.Questions)
	}
	if cfg.Game.Category != model.History {
		t.Fatalf("expected history, got %q", cfg.Game.Category)
	}
	if cfg.Store.Backend != store.BackendMemory {
		t.Fatalf("expected memory backend, got %q", cfg.Store.Backend)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.LogLevel)
	}
	if cfg.Store.Path != config.DefaultDBPath() {
		t.Fatalf("expected default db path, got %q", cfg.Store.Path)
	}
}

func TestResolveConfigEphemeral(t *testing.T) {
	storeBackend = store.BackendRedis
	playQuestions = 10
	ephemeral = true
	t.Cleanup(func() { ephemeral = false })

	cfg := resolveConfig(nil, config.FileConfig{})
	if cfg.Store.Backend != store.BackendMemory {
		t.Fatalf("--ephemeral should force memory, got %q", cfg.Store.Backend)
	}
}

func TestDefaultConfigTemplateParses(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("template is not valid TOML: %v", err)
	}
	if cfg.Game.Questions != nil || cfg.Store.Backend != nil {
		t.Fatalf("template should leave every value commented out")
	}
}

func TestFlagOverridesConfig(t *testing.T) {
	root := newRootCmd()
	if err := root.ParseFlags([]string{"--store", store.BackendRedis}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	backend := store.BackendMemory
	cfg := resolveConfig(root, config.FileConfig{Store: config.StoreConfig{Backend: &backend}})
	if cfg.Store.Backend != store.BackendRedis {
		t.Fatalf("flag should win, got %q", cfg.Store.Backend)
	}
	storeBackend = store.BackendSQLite
}

func TestStartCategory(t *testing.T) {
	cfg := model.GameConfig{Category: model.History}

	got, err := startCategory("", cfg, false)
	if err != nil || got != "" {
		t.Fatalf("root command should open at home, got %q (%v)", got, err)
	}
	got, err = startCategory("spelling", cfg, false)
	if err != nil || got != "" {
		t.Fatalf("root command ignores category, got %q (%v)", got, err)
	}

	got, err = startCategory("", cfg, true)
	if err != nil || got != model.History {
		t.Fatalf("play should use game.category, got %q (%v)", got, err)
	}
	got, err = startCategory(" Spelling ", cfg, true)
	if err != nil || got != model.Spelling {
		t.Fatalf("flag should win, got %q (%v)", got, err)
	}
	if _, err := startCategory("geography", cfg, true); err == nil || !strings.Contains(err.Error(), "--category") {
		t.Fatalf("expected --category error, got %v", err)
	}

	got, err = startCategory("", model.GameConfig{}, true)
	if err != nil || got != "" {
		t.Fatalf("play without any category starts nowhere, got %q (%v)", got, err)
	}
}
