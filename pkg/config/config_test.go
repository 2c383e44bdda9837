package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"prae/pkg/core"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool("verbose", false, "")
	fs.Bool("quiet", false, "")
	fs.String("codec", string(core.DefaultCodec), "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{Flags: newFlags()})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Codec != "deflate" || cfg.Verbose || cfg.Quiet {
		t.Fatalf("Unexpected defaults %+v", cfg)
	}
	if cfg.CodecValue() != core.CodecDeflate {
		t.Fatalf("CodecValue = %q", cfg.CodecValue())
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "prae.toml")
	if err := os.WriteFile(cfgFile, []byte("codec = \"lz4\"\nverbose = true\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Run("config file", func(t *testing.T) {
		cfg, err := Load(LoadOptions{ConfigFile: cfgFile, Flags: newFlags()})
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.CodecValue() != core.CodecLZ4 || !cfg.Verbose {
			t.Fatalf("Config file not applied: %+v", cfg)
		}
	})

	t.Run("environment over file", func(t *testing.T) {
		t.Setenv("PRAE_CODEC", "deflate")
		cfg, err := Load(LoadOptions{ConfigFile: cfgFile, Flags: newFlags()})
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.CodecValue() != core.CodecDeflate {
			t.Fatalf("Environment not applied: %+v", cfg)
		}
	})

	t.Run("flag over environment", func(t *testing.T) {
		t.Setenv("PRAE_CODEC", "deflate")
		flags := newFlags()
		if err := flags.Parse([]string{"--codec", "lz4"}); err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		cfg, err := Load(LoadOptions{Flags: flags})
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.CodecValue() != core.CodecLZ4 {
			t.Fatalf("Flag not applied: %+v", cfg)
		}
	})
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("PRAE_CODEC", "zstd")
	if _, err := Load(LoadOptions{}); !errors.Is(err, core.ErrUnknownCodec) {
		t.Fatalf("Expected ErrUnknownCodec, got %v", err)
	}

	if _, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")}); err == nil {
		t.Fatalf("Expected error for a missing config file")
	}

	cfg := &Config{Codec: "deflate", Verbose: true, Quiet: true}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Expected verbose and quiet to conflict")
	}
}
