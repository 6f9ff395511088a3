package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func defaultOptions(root string) Options {
	return Options{
		Roots:       []string{root},
		Extensions:  []string{".tsx"},
		ExcludeDirs: []string{"node_modules", ".git", "dist", "build"},
	}
}

func TestScanFindsTagAndPropText(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "App.tsx", `
		<div>Hello World</div>
		<input placeholder="Enter Name" />
		<Button label="Submit Form">{t("ok")}</Button>
	`)

	files, err := Scan(defaultOptions(root))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected one file with findings, got %+v", files)
	}
	got := map[string]string{}
	for _, f := range files[0].Findings {
		got[f.Text] = f.Kind
	}
	if got["Hello World"] != "Tag text" {
		t.Errorf("tag text not found: %v", got)
	}
	if got["Enter Name"] != "Prop text" || got["Submit Form"] != "Prop text" {
		t.Errorf("prop text not found: %v", got)
	}
}

func TestScanIgnoresNonSuspects(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "Clean.tsx", `
		<div>{t("greeting")}</div>
		<span>lowercase text</span>
		<td>42</td>
		<b>X</b>
	`)

	files, err := Scan(defaultOptions(root))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("clean file produced findings: %+v", files)
	}
}

func TestScanSkipsExcludedDirsAndExtensions(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, filepath.Join("node_modules", "dep", "Dep.tsx"), `<div>Vendored Text</div>`)
	writeSource(t, root, filepath.Join("dist", "App.tsx"), `<div>Built Text</div>`)
	writeSource(t, root, "notes.md", `<div>Doc Text</div>`)
	writeSource(t, root, filepath.Join("pages", "Home.tsx"), `<div>Real Text</div>`)

	files, err := Scan(defaultOptions(root))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(files) != 1 || !strings.HasSuffix(files[0].Path, filepath.Join("pages", "Home.tsx")) {
		t.Fatalf("exclusions not honored: %+v", files)
	}
}

func TestScanMissingRoot(t *testing.T) {
	if _, err := Scan(defaultOptions(filepath.Join(t.TempDir(), "absent"))); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestRenderReport(t *testing.T) {
	files := []FileFindings{
		{Path: "src/App.tsx", Findings: []Finding{
			{Kind: "Tag text", Text: "Hello World"},
			{Kind: "Prop text", Text: "Enter Name"},
		}},
	}
	out := RenderReport(files)
	if !strings.Contains(out, "--- src/App.tsx ---") {
		t.Errorf("file header absent:\n%s", out)
	}
	if !strings.Contains(out, "  Tag text: 'Hello World'") || !strings.Contains(out, "  Prop text: 'Enter Name'") {
		t.Errorf("finding lines absent:\n%s", out)
	}
}
