package yamlform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/0xalexb/passmap"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrRowArity is returned when a list row does not have the fixed arity of
// its key.
var ErrRowArity = errors.New("wrong row arity")

// ErrPathIsDirectory is returned when the path passed to FileProvider points
// to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Row arities per list key, config included.
const (
	pairArity  = 2
	orderArity = 4
)

// Encode marshals the mapping's interchange form to a YAML document.
// All five keys are written; the global key is null when unset.
func Encode[C any](mapping *passmap.Mapping[C]) ([]byte, error) {
	objectTypes := make([][]any, 0, len(mapping.ObjectTypes))
	for _, entry := range mapping.ObjectTypes {
		objectTypes = append(objectTypes, []any{entry.ObjectType.String(), entry.Config})
	}

	regexes := make([][]any, 0, len(mapping.ModuleNameRegexes))
	for _, entry := range mapping.ModuleNameRegexes {
		regexes = append(regexes, []any{entry.Regex, entry.Config})
	}

	names := make([][]any, 0, len(mapping.ModuleNames))
	for _, entry := range mapping.ModuleNames {
		names = append(names, []any{entry.ModuleName, entry.Config})
	}

	orders := make([][]any, 0, len(mapping.ModuleNameObjectTypeOrders))
	for _, entry := range mapping.ModuleNameObjectTypeOrders {
		orders = append(orders, []any{entry.ModuleName, entry.ObjectType.String(), entry.Index, entry.Config})
	}

	var global any
	if config, ok := mapping.Global(); ok {
		global = config
	}

	document := map[string]any{
		passmap.GlobalKey:                    global,
		passmap.ObjectTypeKey:                objectTypes,
		passmap.ModuleNameRegexKey:           regexes,
		passmap.ModuleNameKey:                names,
		passmap.ModuleNameObjectTypeOrderKey: orders,
	}

	data, err := yaml.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// Decode unmarshals a YAML document produced by Encode (or written by
// external tooling in the same shape) into a Mapping. All five keys are
// optional; unknown keys are ignored. Config values are decoded into C.
func Decode[C any](data []byte) (*passmap.Mapping[C], error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var raw map[string]any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	mapping := passmap.New[C]()

	if global, ok := raw[passmap.GlobalKey]; ok && global != nil {
		config, err := decodeConfig[C](global)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", passmap.GlobalKey, err)
		}

		mapping.SetGlobal(config)
	}

	err = decodeObjectTypes(raw, mapping)
	if err != nil {
		return nil, err
	}

	err = decodePairs(raw, passmap.ModuleNameRegexKey, func(name string, config C) {
		mapping.SetModuleNameRegex(name, config)
	})
	if err != nil {
		return nil, err
	}

	err = decodePairs(raw, passmap.ModuleNameKey, func(name string, config C) {
		mapping.SetModuleName(name, config)
	})
	if err != nil {
		return nil, err
	}

	err = decodeOrders(raw, mapping)
	if err != nil {
		return nil, err
	}

	return mapping, nil
}

// FileProvider returns a constructor function that reads and decodes a
// mapping from the YAML file at the given path. The closure form is
// Fx-friendly, letting the DI container control when the file is read.
func FileProvider[C any](fpath string) func() (*passmap.Mapping[C], error) {
	return func() (*passmap.Mapping[C], error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		mapping, err := Decode[C](data)
		if err != nil {
			return nil, fmt.Errorf("decoding file %q: %w", cleanPath, err)
		}

		slog.Debug("pattern mapping loaded",
			slog.String("path", cleanPath),
			slog.Int("object_types", len(mapping.ObjectTypes)),
			slog.Int("module_name_regexes", len(mapping.ModuleNameRegexes)),
			slog.Int("module_names", len(mapping.ModuleNames)),
			slog.Int("module_name_object_type_orders", len(mapping.ModuleNameObjectTypeOrders)))

		return mapping, nil
	}
}

func decodeObjectTypes[C any](raw map[string]any, mapping *passmap.Mapping[C]) error {
	rows, err := rowsAt(raw, passmap.ObjectTypeKey, pairArity)
	if err != nil {
		return err
	}

	for i, row := range rows {
		objectType, err := objectTypeAt(row[0])
		if err != nil {
			return fmt.Errorf("key %q row %d: %w", passmap.ObjectTypeKey, i, err)
		}

		config, err := decodeConfig[C](row[1])
		if err != nil {
			return fmt.Errorf("key %q row %d: %w", passmap.ObjectTypeKey, i, err)
		}

		mapping.SetObjectType(objectType, config)
	}

	return nil
}

func decodePairs[C any](raw map[string]any, key string, set func(string, C)) error {
	rows, err := rowsAt(raw, key, pairArity)
	if err != nil {
		return err
	}

	for i, row := range rows {
		name, err := stringAt(row[0])
		if err != nil {
			return fmt.Errorf("key %q row %d: %w", key, i, err)
		}

		config, err := decodeConfig[C](row[1])
		if err != nil {
			return fmt.Errorf("key %q row %d: %w", key, i, err)
		}

		set(name, config)
	}

	return nil
}

func decodeOrders[C any](raw map[string]any, mapping *passmap.Mapping[C]) error {
	rows, err := rowsAt(raw, passmap.ModuleNameObjectTypeOrderKey, orderArity)
	if err != nil {
		return err
	}

	for i, row := range rows {
		name, err := stringAt(row[0])
		if err != nil {
			return fmt.Errorf("key %q row %d: %w", passmap.ModuleNameObjectTypeOrderKey, i, err)
		}

		objectType, err := objectTypeAt(row[1])
		if err != nil {
			return fmt.Errorf("key %q row %d: %w", passmap.ModuleNameObjectTypeOrderKey, i, err)
		}

		index, err := indexAt(row[2])
		if err != nil {
			return fmt.Errorf("key %q row %d: %w", passmap.ModuleNameObjectTypeOrderKey, i, err)
		}

		config, err := decodeConfig[C](row[3])
		if err != nil {
			return fmt.Errorf("key %q row %d: %w", passmap.ModuleNameObjectTypeOrderKey, i, err)
		}

		mapping.SetModuleNameObjectTypeOrder(name, objectType, index, config)
	}

	return nil
}

func rowsAt(raw map[string]any, key string, arity int) ([][]any, error) {
	value, ok := raw[key]
	if !ok || value == nil {
		return nil, nil
	}

	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("key %q: expected a sequence, got %T", key, value)
	}

	rows := make([][]any, 0, len(list))

	for i, item := range list {
		row, ok := item.([]any)
		if !ok {
			return nil, fmt.Errorf("key %q row %d: expected a sequence, got %T", key, i, item)
		}

		if len(row) != arity {
			return nil, fmt.Errorf("key %q row %d: %w: got %d, want %d", key, i, ErrRowArity, len(row), arity)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// decodeConfig re-marshals a decoded YAML value and unmarshals it into the
// typed config. This keeps the document shape loose while giving callers a
// typed payload.
func decodeConfig[C any](value any) (C, error) {
	var config C

	data, err := yaml.Marshal(value)
	if err != nil {
		return config, fmt.Errorf("remarshal config: %w", err)
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}

	return config, nil
}

func objectTypeAt(value any) (passmap.ObjectType, error) {
	tagged, err := stringAt(value)
	if err != nil {
		return nil, err
	}

	objectType, err := passmap.ParseObjectType(tagged)
	if err != nil {
		return nil, err
	}

	return objectType, nil
}

func stringAt(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", value)
	}

	return s, nil
}

func indexAt(value any) (int, error) {
	switch index := value.(type) {
	case int:
		return index, nil
	case int64:
		return int(index), nil
	case uint64:
		return int(index), nil
	case float64:
		return int(index), nil
	default:
		return 0, fmt.Errorf("expected an integer index, got %T", value)
	}
}
