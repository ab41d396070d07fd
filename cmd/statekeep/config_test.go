package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error = %v", err)
	}
	if cfg.Snapshot.Backend != "file" {
		t.Errorf("Snapshot.Backend = %q, want file", cfg.Snapshot.Backend)
	}
	if cfg.Observer != "slog" {
		t.Errorf("Observer = %q, want slog", cfg.Observer)
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"snapshot": {"path": "/tmp/counter.json", "backend": "memory"},
		"journal": "/tmp/counter.jsonl"
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Snapshot.Path != "/tmp/counter.json" {
		t.Errorf("Snapshot.Path = %q", cfg.Snapshot.Path)
	}
	if cfg.Snapshot.Backend != "memory" {
		t.Errorf("Snapshot.Backend = %q, want memory", cfg.Snapshot.Backend)
	}
	if cfg.Journal != "/tmp/counter.jsonl" {
		t.Errorf("Journal = %q", cfg.Journal)
	}
	// Unset fields keep defaults.
	if cfg.Observer != "slog" {
		t.Errorf("Observer = %q, want default slog", cfg.Observer)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
snapshot:
  path: /tmp/counter.json
journal: /tmp/counter.jsonl
observer: noop
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Snapshot.Path != "/tmp/counter.json" {
		t.Errorf("Snapshot.Path = %q", cfg.Snapshot.Path)
	}
	if cfg.Snapshot.Backend != "file" {
		t.Errorf("Snapshot.Backend = %q, want default file", cfg.Snapshot.Backend)
	}
	if cfg.Observer != "noop" {
		t.Errorf("Observer = %q, want noop", cfg.Observer)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("LoadConfig(missing): expected error")
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		token   string
		want    any
		wantErr bool
	}{
		{token: "inc", want: Incremented{}},
		{token: "dec", want: Decremented{}},
		{token: "add:5", want: AddedBy{Amount: 5}},
		{token: "add:-3", want: AddedBy{Amount: -3}},
		{token: "add:x", wantErr: true},
		{token: "reset", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := parseAction(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseAction(%q): expected error", tt.token)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAction(%q) error = %v", tt.token, err)
			}
			if got != tt.want {
				t.Fatalf("parseAction(%q) = %#v, want %#v", tt.token, got, tt.want)
			}
		})
	}
}
