package passmap

// Category identifies one of the five pattern categories. Categories form a
// strict total order: a resolver checks them in increasing match priority,
// so a match in a later category shadows any match in an earlier one.
type Category int

// Categories in increasing match priority.
const (
	CategoryGlobal Category = iota
	CategoryObjectType
	CategoryModuleNameRegex
	CategoryModuleName
	CategoryModuleNameObjectTypeOrder
)

// String returns the interchange key of the category.
func (c Category) String() string {
	switch c {
	case CategoryGlobal:
		return GlobalKey
	case CategoryObjectType:
		return ObjectTypeKey
	case CategoryModuleNameRegex:
		return ModuleNameRegexKey
	case CategoryModuleName:
		return ModuleNameKey
	case CategoryModuleNameObjectTypeOrder:
		return ModuleNameObjectTypeOrderKey
	default:
		return "unknown"
	}
}

// Categories returns all categories in increasing match priority.
func Categories() []Category {
	return []Category{
		CategoryGlobal,
		CategoryObjectType,
		CategoryModuleNameRegex,
		CategoryModuleName,
		CategoryModuleNameObjectTypeOrder,
	}
}

// ObjectTypeConfig returns the config registered for the object type.
// When the same object type was registered more than once the last
// registration wins.
func (m *Mapping[C]) ObjectTypeConfig(objectType ObjectType) (C, bool) {
	for i := len(m.ObjectTypes) - 1; i >= 0; i-- {
		if m.ObjectTypes[i].ObjectType == objectType {
			return m.ObjectTypes[i].Config, true
		}
	}

	var zero C

	return zero, false
}

// ModuleNameRegexConfig returns the config registered for the exact regex
// string, last registration wins. It compares regex strings literally; it
// does not evaluate the regex against module names, which is the resolver's
// job.
func (m *Mapping[C]) ModuleNameRegexConfig(regex string) (C, bool) {
	for i := len(m.ModuleNameRegexes) - 1; i >= 0; i-- {
		if m.ModuleNameRegexes[i].Regex == regex {
			return m.ModuleNameRegexes[i].Config, true
		}
	}

	var zero C

	return zero, false
}

// ModuleNameConfig returns the config registered for the module name, last
// registration wins.
func (m *Mapping[C]) ModuleNameConfig(name string) (C, bool) {
	for i := len(m.ModuleNames) - 1; i >= 0; i-- {
		if m.ModuleNames[i].ModuleName == name {
			return m.ModuleNames[i].Config, true
		}
	}

	var zero C

	return zero, false
}

// ModuleNameObjectTypeOrderConfig returns the config registered for the
// (module name, object type, index) triple, last registration wins.
func (m *Mapping[C]) ModuleNameObjectTypeOrderConfig(
	name string,
	objectType ObjectType,
	index int,
) (C, bool) {
	for i := len(m.ModuleNameObjectTypeOrders) - 1; i >= 0; i-- {
		entry := m.ModuleNameObjectTypeOrders[i]
		if entry.ModuleName == name && entry.ObjectType == objectType && entry.Index == index {
			return entry.Config, true
		}
	}

	var zero C

	return zero, false
}
