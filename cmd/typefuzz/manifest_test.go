package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "typefuzz.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := findManifest(nested)
	if err != nil {
		t.Fatalf("findManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %s, want file under %s", path, root)
	}
}

func TestFindManifestAbsent(t *testing.T) {
	_, ok, err := findManifest(t.TempDir())
	if err != nil {
		t.Fatalf("findManifest: %v", err)
	}
	if ok {
		t.Error("manifest reported in empty directory")
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[campaign]
tests = 12
constraints = 4
max_depth = 3
seed = 99

[solver]
kind = "exec"
bin = "z3"
args = ["-in"]
`)
	m, ok, err := loadManifest(dir)
	if err != nil {
		t.Fatalf("loadManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	c := m.Config.Campaign
	if c.Tests != 12 || c.Constraints != 4 || c.MaxDepth != 3 || c.Seed != 99 {
		t.Errorf("campaign config = %+v", c)
	}
	s := m.Config.Solver
	if s.Kind != "exec" || s.Bin != "z3" || len(s.Args) != 1 || s.Args[0] != "-in" {
		t.Errorf("solver config = %+v", s)
	}
}

func TestLoadManifestRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[campaign\ntests = ")
	if _, _, err := loadManifest(dir); err == nil {
		t.Error("malformed manifest accepted")
	}
}

func TestSolverFactory(t *testing.T) {
	if _, err := solverFactory(solverConfig{Kind: "eval"}); err != nil {
		t.Errorf("eval: %v", err)
	}
	if _, err := solverFactory(solverConfig{Kind: "stub"}); err != nil {
		t.Errorf("stub: %v", err)
	}
	if _, err := solverFactory(solverConfig{Kind: "exec"}); err == nil {
		t.Error("exec without binary accepted")
	}
	if _, err := solverFactory(solverConfig{Kind: "exec", Bin: "z3"}); err != nil {
		t.Errorf("exec with binary: %v", err)
	}
	if _, err := solverFactory(solverConfig{Kind: "cvc5-native"}); err == nil {
		t.Error("unknown backend accepted")
	}
}

func TestReadUIMode(t *testing.T) {
	for value, want := range map[string]uiMode{"": uiModeAuto, "auto": uiModeAuto, "ON": uiModeOn, "off": uiModeOff} {
		got, err := readUIMode(value)
		if err != nil {
			t.Errorf("readUIMode(%q): %v", value, err)
		}
		if got != want {
			t.Errorf("readUIMode(%q) = %q, want %q", value, got, want)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Error("invalid ui mode accepted")
	}
}
