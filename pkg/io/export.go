package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ikreport/pkg/kin"
)

// WriteJSON encodes b as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(b *kin.Bundle, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes b as TOML and writes it to w.
func WriteTOML(b *kin.Bundle, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(b); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes b to a JSON file at path.
func ExportJSON(b *kin.Bundle, path string) error {
	return exportFile(b, path, WriteJSON)
}

// ExportTOML writes b to a TOML file at path.
func ExportTOML(b *kin.Bundle, path string) error {
	return exportFile(b, path, WriteTOML)
}

// Export writes b to path in the format implied by its extension.
func Export(b *kin.Bundle, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if format == FormatTOML {
		return ExportTOML(b, path)
	}
	return ExportJSON(b, path)
}

func exportFile(b *kin.Bundle, path string, write func(*kin.Bundle, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(b, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
