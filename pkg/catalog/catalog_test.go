package catalog

import (
	"reflect"
	"testing"
)

func TestParseAndFlattenJSON(t *testing.T) {
	data := []byte(`{
		"app": {"name": "Zed"},
		"editor": {
			"menu": {"open": "Open {file}", "close": "Close"},
			"count": 3,
			"beta": true
		},
		"greet": "Hello"
	}`)
	root, err := Parse(data, FormatJSON)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	flat := root.Flatten()
	want := Flat{
		"app.name":          "Zed",
		"editor.menu.open":  "Open {file}",
		"editor.menu.close": "Close",
		"editor.count":      float64(3),
		"editor.beta":       true,
		"greet":             "Hello",
	}
	if !reflect.DeepEqual(flat, want) {
		t.Fatalf("unexpected flat catalog:\n got %v\nwant %v", flat, want)
	}
}

func TestFlattenDeterministic(t *testing.T) {
	data := []byte(`{"a":{"b":{"c":"1","d":"2"},"e":"3"},"f":"4"}`)
	root, err := Parse(data, FormatJSON)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	first := root.Flatten()
	second := root.Flatten()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("flattening is not deterministic:\n%v\n%v", first, second)
	}

	reparsed, err := Parse(data, FormatJSON)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !reflect.DeepEqual(first, reparsed.Flatten()) {
		t.Fatalf("reparsing the same catalog changed the flat form")
	}
}

func TestFlattenDeepNesting(t *testing.T) {
	data := []byte(`{"a":{"b":{"c":{"d":{"e":{"f":{"g":"leaf"}}}}}}}`)
	root, err := Parse(data, FormatJSON)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	flat := root.Flatten()
	if v, ok := flat["a.b.c.d.e.f.g"]; !ok || v != "leaf" {
		t.Fatalf("deep leaf not flattened: %v", flat)
	}
	if len(flat) != 1 {
		t.Fatalf("expected exactly one leaf, got %v", flat)
	}
}

func TestFormatEquivalence(t *testing.T) {
	jsonData := []byte(`{"menu":{"open":"Open {file}","close":"Close"}}`)
	yamlData := []byte("menu:\n  open: Open {file}\n  close: Close\n")
	tomlData := []byte("[menu]\nopen = \"Open {file}\"\nclose = \"Close\"\n")

	fromJSON := mustFlatten(t, jsonData, FormatJSON)
	fromYAML := mustFlatten(t, yamlData, FormatYAML)
	fromTOML := mustFlatten(t, tomlData, FormatTOML)

	if !reflect.DeepEqual(fromJSON, fromYAML) {
		t.Fatalf("YAML flat differs from JSON:\n%v\n%v", fromYAML, fromJSON)
	}
	if !reflect.DeepEqual(fromJSON, fromTOML) {
		t.Fatalf("TOML flat differs from JSON:\n%v\n%v", fromTOML, fromJSON)
	}
}

func mustFlatten(t *testing.T, data []byte, format Format) Flat {
	t.Helper()
	root, err := Parse(data, format)
	if err != nil {
		t.Fatalf("Parse %s error: %v", format, err)
	}
	return root.Flatten()
}

func TestParseRejectsNonMapping(t *testing.T) {
	if _, err := Parse([]byte(`["a","b"]`), FormatJSON); err == nil {
		t.Fatal("expected error for top-level array")
	}
	if _, err := Parse([]byte(`null`), FormatJSON); err == nil {
		t.Fatal("expected error for top-level null")
	}
	if _, err := Parse([]byte(`{`), FormatJSON); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestFormatForFile(t *testing.T) {
	cases := map[string]struct {
		format Format
		ok     bool
	}{
		"en.json":   {FormatJSON, true},
		"fr.YAML":   {FormatYAML, true},
		"de.yaml":   {FormatYAML, true},
		"pt-BR.yml": {FormatYAML, true},
		"it.toml":   {FormatTOML, true},
		"README.md": {"", false},
		"notes.txt": {"", false},
	}
	for name, want := range cases {
		format, ok := FormatForFile(name)
		if ok != want.ok || (ok && format != want.format) {
			t.Errorf("FormatForFile(%q) = %v, %v", name, format, ok)
		}
	}
}
