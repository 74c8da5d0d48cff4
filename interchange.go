package passmap

import "fmt"

// Keys of the interchange mapping produced by ToMap and read by FromMap.
const (
	// GlobalKey holds the global config.
	GlobalKey = ""
	// ObjectTypeKey holds (objectType, config) rows.
	ObjectTypeKey = "object_type"
	// ModuleNameRegexKey holds (regex, config) rows.
	ModuleNameRegexKey = "module_name_regex"
	// ModuleNameKey holds (moduleName, config) rows.
	ModuleNameKey = "module_name"
	// ModuleNameObjectTypeOrderKey holds (moduleName, objectType, index, config) rows.
	ModuleNameObjectTypeOrderKey = "module_name_object_type_order"
)

// ToMap converts the Mapping to a plain nested mapping for interchange with
// external tooling. All five keys are always present; the global value is nil
// when unset and each list key holds rows of fixed arity with the config
// last. Configs are shared by reference with the Mapping, not copied.
func (m *Mapping[C]) ToMap() map[string]any {
	objectTypes := make([][]any, 0, len(m.ObjectTypes))
	for _, entry := range m.ObjectTypes {
		objectTypes = append(objectTypes, []any{entry.ObjectType, entry.Config})
	}

	regexes := make([][]any, 0, len(m.ModuleNameRegexes))
	for _, entry := range m.ModuleNameRegexes {
		regexes = append(regexes, []any{entry.Regex, entry.Config})
	}

	names := make([][]any, 0, len(m.ModuleNames))
	for _, entry := range m.ModuleNames {
		names = append(names, []any{entry.ModuleName, entry.Config})
	}

	orders := make([][]any, 0, len(m.ModuleNameObjectTypeOrders))
	for _, entry := range m.ModuleNameObjectTypeOrders {
		orders = append(orders, []any{entry.ModuleName, entry.ObjectType, entry.Index, entry.Config})
	}

	var global any
	if m.globalSet {
		global = m.global
	}

	return map[string]any{
		GlobalKey:                    global,
		ObjectTypeKey:                objectTypes,
		ModuleNameRegexKey:           regexes,
		ModuleNameKey:                names,
		ModuleNameObjectTypeOrderKey: orders,
	}
}

// FromMap reconstructs a Mapping from an interchange mapping. All five keys
// are optional; an absent key leaves the corresponding list empty and an
// absent or nil global leaves the global unset. Unknown keys are ignored.
// Rows are replayed through the setters in iteration order, so a mapping
// rebuilt from ToMap output is element-wise and order-wise identical to the
// original.
//
// FromMap does not validate the input shape. A row with the wrong arity or
// field types panics at the offending element. Object types are accepted as
// ObjectType values or as tagged strings ("type:…", "function:…",
// "method:…"); indexes as any integer scalar, since decoded documents carry
// loose numeric types.
func FromMap[C any](raw map[string]any) *Mapping[C] {
	mapping := New[C]()

	if global, ok := raw[GlobalKey]; ok && global != nil {
		mapping.SetGlobal(configOf[C](global))
	}

	for _, row := range rowsOf(raw[ObjectTypeKey]) {
		mapping.SetObjectType(objectTypeOf(row[0]), configOf[C](row[1]))
	}

	for _, row := range rowsOf(raw[ModuleNameRegexKey]) {
		mapping.SetModuleNameRegex(row[0].(string), configOf[C](row[1]))
	}

	for _, row := range rowsOf(raw[ModuleNameKey]) {
		mapping.SetModuleName(row[0].(string), configOf[C](row[1]))
	}

	for _, row := range rowsOf(raw[ModuleNameObjectTypeOrderKey]) {
		mapping.SetModuleNameObjectTypeOrder(
			row[0].(string),
			objectTypeOf(row[1]),
			indexOf(row[2]),
			configOf[C](row[3]),
		)
	}

	return mapping
}

func rowsOf(value any) [][]any {
	switch list := value.(type) {
	case nil:
		return nil
	case [][]any:
		return list
	case []any:
		rows := make([][]any, 0, len(list))
		for _, row := range list {
			rows = append(rows, row.([]any))
		}

		return rows
	default:
		panic(fmt.Sprintf("passmap: %T is not a row list", value))
	}
}

func configOf[C any](value any) C {
	if value == nil {
		var zero C

		return zero
	}

	return value.(C)
}

func objectTypeOf(value any) ObjectType {
	switch objectType := value.(type) {
	case ObjectType:
		return objectType
	case string:
		parsed, err := ParseObjectType(objectType)
		if err != nil {
			panic(fmt.Sprintf("passmap: %v", err))
		}

		return parsed
	default:
		panic(fmt.Sprintf("passmap: %T is not an object type", value))
	}
}

func indexOf(value any) int {
	switch index := value.(type) {
	case int:
		return index
	case int64:
		return int(index)
	case uint64:
		return int(index)
	case float64:
		return int(index)
	default:
		panic(fmt.Sprintf("passmap: %T is not an index", value))
	}
}
