// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package devices

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported catalog file formats.
type Formats int32 //enums:enum -transform lower

const (
	None Formats = iota
	TOML
	YAML
	JSON
)

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, fmt.Errorf("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	switch strings.ToLower(ext) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// catalogFile is the on-disk catalog schema, shared by all formats:
// a list of presets under the key "devices".
type catalogFile struct {
	Devices []Device `toml:"devices" json:"devices" yaml:"devices"`
}

// Read parses catalog data in the given format and returns the catalog.
// Entries must have a name and a positive size; later entries replace
// earlier ones with the same folded name.
func Read(r io.Reader, f Formats) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var cf catalogFile
	switch f {
	case TOML:
		err = toml.Unmarshal(data, &cf)
	case YAML:
		err = yaml.Unmarshal(data, &cf)
	case JSON:
		err = json.Unmarshal(data, &cf)
	default:
		err = fmt.Errorf("unsupported format %v", f)
	}
	if err != nil {
		return nil, fmt.Errorf("devices: %w", err)
	}
	for _, dv := range cf.Devices {
		if err := dv.valid(); err != nil {
			return nil, err
		}
	}
	return NewCatalog(cf.Devices...), nil
}

// Open loads a catalog file, with the format inferred from the
// filename extension: toml, yaml / yml, or json.
func Open(filename string) (*Catalog, error) {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file, f)
}

// Write writes the catalog in the given format.
func (ct *Catalog) Write(w io.Writer, f Formats) error {
	cf := catalogFile{Devices: ct.devices}
	var data []byte
	var err error
	switch f {
	case TOML:
		data, err = toml.Marshal(cf)
	case YAML:
		data, err = yaml.Marshal(cf)
	case JSON:
		data, err = json.MarshalIndent(cf, "", "\t")
	default:
		err = fmt.Errorf("unsupported format %v", f)
	}
	if err != nil {
		return fmt.Errorf("devices: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Save writes the catalog to the given file, with the format inferred
// from the filename extension.
func (ct *Catalog) Save(filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return ct.Write(file, f)
}
