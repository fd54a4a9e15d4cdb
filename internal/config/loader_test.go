package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tactix/internal/dilemma"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)
	return home, work
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "pd.yaml")
	writeFile(t, path, "preset: prisoners_dilemma\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if cfg.Preset != "prisoners_dilemma" {
		t.Errorf("Preset = %q, expected prisoners_dilemma", cfg.Preset)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) expected an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "mode: seeded\ncolour: red\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load(unknown key) expected an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Source != SourceEmbedded {
		t.Errorf("Source = %q, expected %q", cfg.Source, SourceEmbedded)
	}
	if cfg.Mode != string(dilemma.ModeRandomized) {
		t.Errorf("embedded Mode = %q, expected randomized", cfg.Mode)
	}

	writeFile(t, filepath.Join(work, "configs", FileName), "mode: seeded\n")
	cfg, _ = Load("")
	if cfg.Mode != "seeded" {
		t.Errorf("local file not used: Mode = %q, Source = %q", cfg.Mode, cfg.Source)
	}

	userPath := filepath.Join(home, ".tactix", FileName)
	writeFile(t, userPath, "mode: customized\n")
	cfg, _ = Load("")
	if cfg.Mode != "customized" || cfg.Source != userPath {
		t.Errorf("user file not preferred: Mode = %q, Source = %q", cfg.Mode, cfg.Source)
	}
}

func TestLoadSkipsMalformedSearchFiles(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".tactix", FileName), "mode: [\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Source != SourceEmbedded {
		t.Errorf("Source = %q, expected fallback to %q", cfg.Source, SourceEmbedded)
	}
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	embedded, err := Parse(defaultGameYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	builtin := DefaultGameConfig()

	if embedded.Mode != builtin.Mode || embedded.Min != nil || embedded.Max != nil {
		t.Errorf("embedded = %+v, builtin = %+v", embedded, builtin)
	}
	if embedded.Labels != builtin.Labels {
		t.Errorf("embedded labels = %+v, builtin labels = %+v", embedded.Labels, builtin.Labels)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	if cfg.Mode != "" || cfg.Min != nil || !cfg.Outcomes.Empty() {
		t.Errorf("Parse(nil) = %+v, expected zero config", cfg)
	}

	if _, err := Parse([]byte("min: -1\n")); err == nil {
		t.Error("Parse(negative min) expected an error")
	}
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
