package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ikreport/pkg/errors"
	"github.com/matzehuels/ikreport/pkg/kin"
)

// Format is a bundle file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported bundle file %s (want .json or .toml)", path)
}

// ReadJSON decodes a JSON bundle from r. It does not close r.
func ReadJSON(r io.Reader) (*kin.Bundle, error) {
	var b kin.Bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode bundle")
	}
	return checked(&b)
}

// ReadTOML decodes a TOML bundle from r. Unknown keys are rejected.
func ReadTOML(r io.Reader) (*kin.Bundle, error) {
	var b kin.Bundle
	md, err := toml.NewDecoder(r).Decode(&b)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode bundle")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "decode bundle: unknown key %s", undecoded[0])
	}
	return checked(&b)
}

// ImportJSON reads the JSON bundle at path.
func ImportJSON(path string) (*kin.Bundle, error) {
	return importFile(path, ReadJSON)
}

// ImportTOML reads the TOML bundle at path.
func ImportTOML(path string) (*kin.Bundle, error) {
	return importFile(path, ReadTOML)
}

// Import reads the bundle at path, choosing the decoder by extension.
func Import(path string) (*kin.Bundle, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format == FormatTOML {
		return ImportTOML(path)
	}
	return ImportJSON(path)
}

func importFile(path string, read func(io.Reader) (*kin.Bundle, error)) (*kin.Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return read(f)
}

func checked(b *kin.Bundle) (*kin.Bundle, error) {
	m := b.Robot.Mech
	for _, mat := range []kin.Matrix{m.DH, m.T06, m.J66} {
		if err := mat.Validate(); err != nil {
			return nil, err
		}
	}
	return b, nil
}
