// Package dataset loads champion data files.
//
// Two encodings are accepted. JSON files hold {"champions": [...]} as
// produced by the data scrapers; unknown keys are ignored because scraped
// records carry presentation fields the grid never reads. YAML files are
// hand-maintained and decoded strictly.
package dataset

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/errors"
)

// Format is the encoding of a dataset file
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// File is the top-level layout of a dataset file
type File struct {
	Champions []*entities.Champion `json:"champions" yaml:"champions"`
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.InvalidArgumentf("unsupported dataset extension %q", filepath.Ext(path)).
			WithMeta("path", path)
	}
}

// Load reads and validates the dataset at path
func Load(path string) ([]*entities.Champion, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("dataset %q not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open dataset %q", path)
	}
	defer func() { _ = f.Close() }()

	champions, err := LoadFromReader(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load dataset %q", path)
	}

	slog.Info("Loaded champion dataset",
		"path", path,
		"format", string(format),
		"champions", len(champions))

	return champions, nil
}

// LoadFromReader decodes and validates a dataset
func LoadFromReader(r io.Reader, format Format) ([]*entities.Champion, error) {
	var file File

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&file); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode JSON dataset")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.InvalidArgument("dataset is empty")
			}
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode YAML dataset")
		}
	default:
		return nil, errors.InvalidArgumentf("unsupported dataset format %q", format)
	}

	if err := Validate(file.Champions); err != nil {
		return nil, err
	}
	return file.Champions, nil
}

// Validate checks that a dataset is non-empty with unique, non-empty names
func Validate(champions []*entities.Champion) error {
	vb := errors.NewValidationBuilder()

	if len(champions) == 0 {
		vb.Field("champions", "at least one champion is required")
	}

	seen := make(map[string]int, len(champions))
	for i, c := range champions {
		if c == nil {
			vb.Fieldf("champions", "entry %d is empty", i)
			continue
		}
		name := strings.TrimSpace(c.Name)
		if name == "" {
			vb.Fieldf("champions", "entry %d has no name", i)
			continue
		}
		if first, ok := seen[name]; ok {
			vb.Fieldf("champions", "duplicate champion %q at entries %d and %d", name, first, i)
			continue
		}
		seen[name] = i
	}

	return vb.Build()
}
