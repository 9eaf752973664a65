package io

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/datanate/pkg/errors"
	"github.com/matzehuels/datanate/pkg/metric"
)

// Format identifies a definition file syntax.
type Format string

// Supported definition formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the definition format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidConfig, "unsupported definition file %q (want .yaml, .yml or .toml)", path)
	}
}

// Entry is one metric definition with its key, in declaration order.
type Entry struct {
	Key        string
	Definition metric.Definition
}

// Definitions is the parsed content of a definition file.
type Definitions struct {
	Categories []metric.Category
	Metrics    []Entry
}

// LoadDefinitions reads a definition file from path.
func LoadDefinitions(path string) (*Definitions, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "definition file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer f.Close()

	defs, err := ReadDefinitions(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return defs, nil
}

// ReadDefinitions decodes definitions in the given format from r.
// ReadDefinitions does not close r.
func ReadDefinitions(r io.Reader, format Format) (*Definitions, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// decodeYAML walks the document node tree so that the order of the metrics
// mapping survives decoding.
func decodeYAML(data []byte) (*Definitions, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty document")
		}
		return nil, err
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level must be a mapping")
	}
	root := doc.Content[0]

	defs := &Definitions{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "categories":
			cats, err := decodeYAMLCategories(val)
			if err != nil {
				return nil, err
			}
			defs.Categories = cats
		case "metrics":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: metrics must be a mapping of metric key to definition", val.Line)
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				k, v := val.Content[j], val.Content[j+1]
				var d metric.Definition
				if err := v.Decode(&d); err != nil {
					return nil, fmt.Errorf("metric %q (line %d): %w", k.Value, k.Line, err)
				}
				defs.Metrics = append(defs.Metrics, Entry{Key: k.Value, Definition: d})
			}
		}
	}
	return defs, nil
}

// decodeYAMLCategories accepts either a list of {key, name, description}
// objects or a mapping from key to {name, description}.
func decodeYAMLCategories(n *yaml.Node) ([]metric.Category, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		var cats []metric.Category
		if err := n.Decode(&cats); err != nil {
			return nil, fmt.Errorf("categories (line %d): %w", n.Line, err)
		}
		return cats, nil
	case yaml.MappingNode:
		var cats []metric.Category
		for i := 0; i+1 < len(n.Content); i += 2 {
			var c metric.Category
			if err := n.Content[i+1].Decode(&c); err != nil {
				return nil, fmt.Errorf("category %q (line %d): %w", n.Content[i].Value, n.Content[i].Line, err)
			}
			c.Key = n.Content[i].Value
			cats = append(cats, c)
		}
		return cats, nil
	default:
		return nil, fmt.Errorf("line %d: categories must be a list or a mapping", n.Line)
	}
}

type tomlFile struct {
	Categories []metric.Category            `toml:"categories"`
	Metrics    map[string]metric.Definition `toml:"metrics"`
}

// decodeTOML decodes into a map and recovers declaration order from the
// metadata key list.
func decodeTOML(data []byte) (*Definitions, error) {
	var raw tomlFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	defs := &Definitions{Categories: raw.Categories}
	seen := make(map[string]bool, len(raw.Metrics))
	for _, k := range md.Keys() {
		if len(k) < 2 || k[0] != "metrics" || seen[k[1]] {
			continue
		}
		d, ok := raw.Metrics[k[1]]
		if !ok {
			continue
		}
		seen[k[1]] = true
		defs.Metrics = append(defs.Metrics, Entry{Key: k[1], Definition: d})
	}
	return defs, nil
}
