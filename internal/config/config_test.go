package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
listen: 127.0.0.1:9000
log:
  level: debug
  format: json
engine:
  heuristic: octile
  corners: legacy
  max_open_nodes: 5000
  smooth: true
grid:
  width: 64
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != "127.0.0.1:9000" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if cfg.Engine.Heuristic != "octile" || cfg.Engine.Corners != "legacy" || !cfg.Engine.Smooth {
		t.Errorf("Engine = %+v", cfg.Engine)
	}
	if cfg.Engine.MaxOpenNodes != 5000 {
		t.Errorf("MaxOpenNodes = %d", cfg.Engine.MaxOpenNodes)
	}
	if cfg.Grid.Width != 64 || cfg.Grid.Height != Default().Grid.Height {
		t.Errorf("Grid = %+v", cfg.Grid)
	}
	if cfg.Engine.Workers != Default().Engine.Workers {
		t.Errorf("Workers = %d, want the default", cfg.Engine.Workers)
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, %v", level, err)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want []string
	}{
		{"heuristic", "engine: {heuristic: euclid}", []string{`unknown heuristic "euclid"`}},
		{"corners", "engine: {corners: loose}", []string{`unknown corner rule "loose"`}},
		{"grid", "grid: {width: 0, density: 2}", []string{"grid size 0x24", "grid density 2"}},
		{"open nodes", "engine: {max_open_nodes: -1}", []string{"max_open_nodes -1"}},
		{"level", "log: {level: loud}", []string{`log level "loud"`}},
		{"syntax", "engine: [", []string{"config: parse"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			for _, want := range c.want {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err, want)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridastar.yaml")
	if err := os.WriteFile(path, []byte("grid: {seed: 42}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.Seed != 42 {
		t.Errorf("Seed = %d", cfg.Grid.Seed)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("loading a missing file succeeded")
	}
}

func TestNewLogger(t *testing.T) {
	for _, l := range []LogConfig{{Level: "warn", Format: "json"}, {Level: "bogus"}} {
		if l.NewLogger() == nil {
			t.Errorf("NewLogger(%+v) = nil", l)
		}
	}
	logger := LogConfig{Level: "warn"}.NewLogger()
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("warn logger enables info")
	}
}

// waitFor reads from w until accept returns true for a delivery.
func waitFor(t *testing.T, w *Watcher, accept func(Config, error) bool) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Configs:
			if accept(cfg, nil) {
				return
			}
		case err := <-w.Errors:
			if accept(Config{}, err) {
				return
			}
		case <-deadline:
			t.Fatal("watcher delivered nothing useful")
		}
	}
}

func TestWatchReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridastar.yaml")
	if err := os.WriteFile(path, []byte("grid: {width: 10}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("grid: {width: 20}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, w, func(cfg Config, err error) bool {
		return err == nil && cfg.Grid.Width == 20
	})

	if err := os.WriteFile(path, []byte("engine: {heuristic: nope}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, w, func(cfg Config, err error) bool {
		if err == nil && cfg.Engine.Heuristic == "nope" {
			t.Fatal("invalid config delivered")
		}
		return err != nil && strings.Contains(err.Error(), "nope")
	})

	// Other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case cfg := <-w.Configs:
		t.Errorf("unrelated write reloaded %+v", cfg)
	case <-time.After(3 * debounce):
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	for range w.Configs {
	}
	for range w.Errors {
	}
}
