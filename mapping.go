package passmap

// ObjectTypeEntry associates an object type with a config.
type ObjectTypeEntry[C any] struct {
	ObjectType ObjectType
	Config     C
}

// ModuleNameRegexEntry associates a module-name regex with a config.
// The regex is stored verbatim; it is neither compiled nor validated here.
type ModuleNameRegexEntry[C any] struct {
	Regex  string
	Config C
}

// ModuleNameEntry associates an exact module name with a config.
type ModuleNameEntry[C any] struct {
	ModuleName string
	Config     C
}

// ModuleNameObjectTypeOrderEntry associates a config with the Index-th
// occurrence of ObjectType within the named module.
type ModuleNameObjectTypeOrderEntry[C any] struct {
	ModuleName string
	ObjectType ObjectType
	Index      int
	Config     C
}

// Mapping accumulates pattern/config associations for a graph transformation
// pass. The config payload C is opaque to the mapping.
//
// Entry slices are exported for consumers that resolve patterns against a
// concrete graph. They hold entries in registration order; appending through
// the setters never removes or reorders earlier entries, so a resolver must
// take the last matching entry of a list, not the first.
//
// A Mapping is not safe for concurrent mutation. Callers sharing one across
// goroutines must serialize access externally.
type Mapping[C any] struct {
	ObjectTypes                []ObjectTypeEntry[C]
	ModuleNameRegexes          []ModuleNameRegexEntry[C]
	ModuleNames                []ModuleNameEntry[C]
	ModuleNameObjectTypeOrders []ModuleNameObjectTypeOrderEntry[C]

	global    C
	globalSet bool
}

// New creates an empty Mapping.
func New[C any]() *Mapping[C] {
	return &Mapping[C]{}
}

// SetGlobal sets the global (default) config. Unlike the other setters it
// overwrites: only the most recent value is kept.
func (m *Mapping[C]) SetGlobal(config C) *Mapping[C] {
	m.global = config
	m.globalSet = true

	return m
}

// Global returns the global config and whether one was set.
func (m *Mapping[C]) Global() (C, bool) {
	return m.global, m.globalSet
}

// SetObjectType appends a config for the given object type. Registering the
// same object type again appends a second entry; the later one wins at
// resolution time.
func (m *Mapping[C]) SetObjectType(objectType ObjectType, config C) *Mapping[C] {
	m.ObjectTypes = append(m.ObjectTypes, ObjectTypeEntry[C]{
		ObjectType: objectType,
		Config:     config,
	})

	return m
}

// SetModuleNameRegex appends a config for module names matching the given
// regex. Regexes are matched by consumers in registration order, so the
// caller should register more specific patterns first:
//
//	mapping := passmap.New[Config]().
//		SetModuleNameRegex("foo.*bar.*conv[0-9]+", narrow).
//		SetModuleNameRegex("foo.*bar.*", mid).
//		SetModuleNameRegex("foo.*", wide)
//
// The regex string is stored verbatim and never reordered by specificity.
func (m *Mapping[C]) SetModuleNameRegex(regex string, config C) *Mapping[C] {
	m.ModuleNameRegexes = append(m.ModuleNameRegexes, ModuleNameRegexEntry[C]{
		Regex:  regex,
		Config: config,
	})

	return m
}

// SetModuleName appends a config for the exact module name.
func (m *Mapping[C]) SetModuleName(name string, config C) *Mapping[C] {
	m.ModuleNames = append(m.ModuleNames, ModuleNameEntry[C]{
		ModuleName: name,
		Config:     config,
	})

	return m
}

// SetModuleNameObjectTypeOrder appends a config for the index-th occurrence
// of objectType within the named module. The index is not range-checked.
func (m *Mapping[C]) SetModuleNameObjectTypeOrder(
	name string,
	objectType ObjectType,
	index int,
	config C,
) *Mapping[C] {
	m.ModuleNameObjectTypeOrders = append(m.ModuleNameObjectTypeOrders, ModuleNameObjectTypeOrderEntry[C]{
		ModuleName: name,
		ObjectType: objectType,
		Index:      index,
		Config:     config,
	})

	return m
}
