package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type preset struct {
	Gap    time.Duration `yaml:"gap" json:"gap"`
	Volume float64       `yaml:"volume" json:"volume"`
	Name   string        `yaml:"name" json:"name"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "p.yaml", "gap: 250ms\nvolume: 0.8\n")
	p := preset{Name: "default"}
	if err := LoadFile(path, &p); err != nil {
		t.Fatal(err)
	}
	if p.Gap != 250*time.Millisecond || p.Volume != 0.8 || p.Name != "default" {
		t.Fatalf("preset = %+v", p)
	}
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, "p.json", `{"volume": 0.3, "name": "soft"}`)
	var p preset
	if err := LoadFile(path, &p); err != nil {
		t.Fatal(err)
	}
	if p.Volume != 0.3 || p.Name != "soft" {
		t.Fatalf("preset = %+v", p)
	}
}

func TestLoadFileJSONDurationString(t *testing.T) {
	path := writeFile(t, "p.json", `{"gap": "5ms", "volume": 0.5}`)
	p := preset{Name: "default"}
	if err := LoadFile(path, &p); err != nil {
		t.Fatal(err)
	}
	if p.Gap != 5*time.Millisecond || p.Volume != 0.5 || p.Name != "default" {
		t.Fatalf("preset = %+v", p)
	}
}

func TestLoadFileBadJSON(t *testing.T) {
	path := writeFile(t, "p.json", `{"gap": [}`)
	var p preset
	err := LoadFile(path, &p)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "JSON") {
		t.Fatalf("error = %v", err)
	}
}

func TestParseFileUnknownExtension(t *testing.T) {
	var p preset
	if err := ParseFile([]byte("name: guess\n"), "preset.txt", &p); err != nil {
		t.Fatal(err)
	}
	if p.Name != "guess" {
		t.Fatalf("preset = %+v", p)
	}
	if err := ParseFile([]byte("{{{"), "preset.txt", &p); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFileMissing(t *testing.T) {
	var p preset
	if err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), &p); err == nil {
		t.Fatal("expected error")
	}
}
