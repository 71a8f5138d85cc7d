package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "weft.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	r, err := Resolve("demo", dir, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.AppName != "demo" {
		t.Errorf("AppName = %q, want demo", r.AppName)
	}
	if r.Addr() != "localhost:8080" {
		t.Errorf("Addr = %q, want localhost:8080", r.Addr())
	}
	if r.Debug {
		t.Error("Debug should default to false")
	}
	if r.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", r.DataDir, dir)
	}
}

func TestResolveFromYAML(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "app:\n  name: gallery\n  debug: true\nserver:\n  host: 0.0.0.0\n  port: 9000\n")

	r, err := Resolve("demo", dir, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.AppName != "gallery" || r.Host != "0.0.0.0" || r.Port != 9000 || !r.Debug {
		t.Errorf("resolved = %+v", r)
	}
}

func TestResolveBadYAML(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "app: [not a mapping\n")
	if _, err := Resolve("demo", dir, nil); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolveEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "server:\n  port: 9000\n")
	t.Setenv("WEFT_PORT", "9100")
	t.Setenv("WEFT_DEBUG", "true")
	t.Setenv("MAPBOX_API_KEY", "pk.test")

	r, err := Resolve("demo", dir, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Port != 9100 {
		t.Errorf("Port = %d, want env override 9100", r.Port)
	}
	if !r.Debug {
		t.Error("Debug should come from WEFT_DEBUG")
	}
	if r.MapboxKey != "pk.test" {
		t.Errorf("MapboxKey = %q", r.MapboxKey)
	}
}

func TestResolveFlagsOverrideAll(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "server:\n  port: 9000\n")
	t.Setenv("WEFT_PORT", "9100")

	fs := Flags("demo")
	if err := fs.Parse([]string{"--port", "9200", "--host", "127.0.0.1"}); err != nil {
		t.Fatal(err)
	}
	r, err := Resolve("demo", dir, fs)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Port != 9200 || r.Host != "127.0.0.1" {
		t.Errorf("resolved = %+v, want flag values", r)
	}
}

func TestResolveUnsetFlagsDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "server:\n  port: 9000\n")

	fs := Flags("demo")
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	r, err := Resolve("demo", dir, fs)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Port != 9000 {
		t.Errorf("Port = %d, want yaml value 9000", r.Port)
	}
}

func TestResolveInvalidPort(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WEFT_PORT", "not-a-number")
	if _, err := Resolve("demo", dir, nil); err == nil {
		t.Error("expected error for invalid WEFT_PORT")
	}

	t.Setenv("WEFT_PORT", "70000")
	if _, err := Resolve("demo", dir, nil); err == nil {
		t.Error("expected error for out-of-range port")
	}
}
