package templates

import (
	"strings"
	"testing"
)

func TestInitFiles(t *testing.T) {
	files, err := InitFiles()
	if err != nil {
		t.Fatalf("InitFiles failed: %v", err)
	}
	want := map[string]bool{
		"init/go.mod.tmpl":    false,
		"init/main.go.tmpl":   false,
		"init/weft.yaml.tmpl": false,
	}
	for _, f := range files {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Errorf("InitFiles missing %s", f)
		}
	}
}

func TestMainTemplateHoldsPlaceholders(t *testing.T) {
	content, err := ReadFile("init/main.go.tmpl")
	if err != nil {
		t.Fatalf("ReadFile(init/main.go.tmpl) failed: %v", err)
	}
	src := string(content)
	if !strings.Contains(src, "{{.ProjectName}}") {
		t.Error("expected {{.ProjectName}} placeholder in main.go.tmpl")
	}
	if !strings.Contains(src, "github.com/go-weft/weft/pkg/app") {
		t.Error("expected app import in main.go.tmpl")
	}
}
