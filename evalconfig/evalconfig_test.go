package evalconfig

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xdao.co/varbin/function"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestLoadFile_JSONAndYAMLAgree(t *testing.T) {
	jsonPath := writeFile(t, "varbind.json", `{
  "listen": "127.0.0.1:7777",
  "max_msg_bytes": 1048576,
  "log_level": "debug",
  "categories": ["codec", "digest"],
  "functions": ["to_hex", "sha256"]
}`)
	yamlPath := writeFile(t, "varbind.yaml", `
listen: 127.0.0.1:7777
max_msg_bytes: 1048576
log_level: debug
categories: [codec, digest]
functions:
  - to_hex
  - sha256
`)
	a, err := LoadFile(jsonPath)
	if err != nil {
		t.Fatalf("LoadFile(json): %v", err)
	}
	b, err := LoadFile(yamlPath)
	if err != nil {
		t.Fatalf("LoadFile(yaml): %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("json/yaml mismatch (-json +yaml):\n%s", diff)
	}
	if a.Level() != slog.LevelDebug {
		t.Fatalf("Level = %v", a.Level())
	}
}

func TestLoadFile_Errors(t *testing.T) {
	cases := map[string]struct{ name, body string }{
		"empty path":       {"", ""},
		"unknown field":    {"c.json", `{"listen":":1","bogus":true}`},
		"unknown yaml key": {"c.yml", "bogus: 1\n"},
		"bad category":     {"c.json", `{"categories":["nope"]}`},
		"bad function":     {"c.json", `{"functions":["nope"]}`},
		"dup function":     {"c.json", `{"functions":["md5","md5"]}`},
		"negative size":    {"c.json", `{"max_msg_bytes":-1}`},
		"bad level":        {"c.yaml", "log_level: loud\n"},
	}
	for label, tc := range cases {
		path := ""
		if tc.name != "" {
			path = writeFile(t, tc.name, tc.body)
		}
		if _, err := LoadFile(path); err == nil {
			t.Fatalf("%s: expected error", label)
		}
	}
}

func TestLoadFile_EmptyFileIsDefaults(t *testing.T) {
	cfg, err := LoadFile(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if diff := cmp.Diff(Config{}, cfg); diff != "" {
		t.Fatalf("unexpected config:\n%s", diff)
	}
}

func TestCatalog_Filters(t *testing.T) {
	base := function.Default()

	all, err := Config{}.Catalog(base)
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if diff := cmp.Diff(base.Names(function.CategoryAll), all.Names(function.CategoryAll)); diff != "" {
		t.Fatalf("empty config should keep everything:\n%s", diff)
	}

	cfg := Config{Categories: []string{"codec"}, Functions: []string{"from_hex", "sha256", "to_base64"}}
	c, err := cfg.Catalog(base)
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	want := []string{"from_hex", "to_base64"}
	if diff := cmp.Diff(want, c.Names(function.CategoryAll)); diff != "" {
		t.Fatalf("filtered names (-want +got):\n%s", diff)
	}
	if got := len(c.Overloads("from_hex")); got != 2 {
		t.Fatalf("from_hex overloads = %d, want 2", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"debug": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("trace"); err == nil {
		t.Fatalf("expected error")
	}
}
