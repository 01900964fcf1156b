package filestore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/fieldlist/internal/field"
	"github.com/idilsaglam/fieldlist/internal/model"
)

// File-backed field store. One file holds one field value, human-readable.
// The format follows the extension: .yaml/.yml is YAML, anything else JSON.
// No locking; a single local editor owns the file.

const DefaultFileName = "field.json"

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

type Store struct {
	Path   string
	Format Format
}

var _ field.Store = (*Store)(nil)

// New returns a store for path. An empty path means DefaultFileName in the
// working directory.
func New(path string) (*Store, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	return &Store{Path: path, Format: FormatFor(path)}, nil
}

// Value returns the decoded file contents. A missing or blank file is an
// unset field (nil). Unparseable contents report field.ErrMalformedValue.
func (s *Store) Value() (any, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}
	var v any
	switch s.Format {
	case FormatYAML:
		if err := yaml.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("%w: yaml unmarshal: %v", field.ErrMalformedValue, err)
		}
	default:
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("%w: json unmarshal: %v", field.ErrMalformedValue, err)
		}
	}
	return v, nil
}

// SetValue replaces the file with items. The write goes through a temp
// file in the same directory and a rename, so readers never see half a list.
func (s *Store) SetValue(items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := s.encode(items)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (s *Store) encode(items []model.Item) ([]byte, error) {
	if s.Format == FormatYAML {
		b, err := yaml.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		return b, nil
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return append(b, '\n'), nil
}
