package io

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/ikreport/pkg/errors"
	"github.com/matzehuels/ikreport/pkg/kin/kintest"
)

func TestImport(t *testing.T) {
	want := kintest.TwoLink()
	for _, path := range []string{"testdata/two_link.json", "testdata/two_link.toml"} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			got, err := Import(path)
			if err != nil {
				t.Fatalf("Import(%s): %v", path, err)
			}
			if !reflect.DeepEqual(*got, want) {
				t.Errorf("Import(%s) =\n%+v\nwant\n%+v", path, *got, want)
			}
		})
	}
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing", filepath.Join(dir, "nope.json"), errors.ErrCodeFileNotFound},
		{"extension", write("bundle.yaml", "robot: {}"), errors.ErrCodeInvalidFormat},
		{"bad json", write("bad.json", `{"robot": `), errors.ErrCodeInvalidInput},
		{"bad toml", write("bad.toml", `robot = `), errors.ErrCodeInvalidInput},
		{"unknown toml key", write("extra.toml", "colour = \"red\"\n"), errors.ErrCodeInvalidInput},
		{"ragged matrix", write("ragged.json", `{"robot": {"mechanism": {"t06": [["1", "0"], ["0"]]}}}`), errors.ErrCodeInvalidMatrix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(tt.path)
			if !errors.Is(err, tt.code) {
				t.Errorf("Import() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestReadJSONAcceptsPartialBundles(t *testing.T) {
	b, err := ReadJSON(strings.NewReader(`{"robot": {"name": "Arm"}}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if b.Robot.Name != "Arm" || len(b.Robot.SolutionNodes) != 0 {
		t.Errorf("ReadJSON = %+v", b)
	}
}

func TestWriteJSON(t *testing.T) {
	b := kintest.TwoLink()
	var buf bytes.Buffer
	if err := WriteJSON(&b, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"solve_method": "*None*"`, `"parent": "-1"`, "\n  \"robot\": {"} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteJSON output missing %q", want)
		}
	}
}

func TestExportImport(t *testing.T) {
	want := kintest.TwoLink()
	dir := t.TempDir()
	for _, name := range []string{"bundle.json", "bundle.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Export(&want, path); err != nil {
				t.Fatalf("Export: %v", err)
			}
			got, err := Import(path)
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			if !reflect.DeepEqual(*got, want) {
				t.Errorf("round trip through %s changed the bundle", name)
			}
		})
	}

	if err := Export(&want, filepath.Join(dir, "bundle.txt")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Export(.txt) error = %v", err)
	}
}
