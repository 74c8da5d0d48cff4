// Package passmap maps structural patterns over a computation graph to
// opaque configuration values for a downstream graph transformation pass.
//
// A Mapping accumulates pattern/config associations in five categories,
// listed in increasing match priority:
//   - global: the unconditional default
//   - object type: an operator kind, free function, or method name
//   - module name regex: a regex over qualified module names
//   - module name: an exact qualified module name
//   - module name + object type + order: the Nth occurrence of an object
//     type within a named module
//
// The configuration payload is a caller-owned type parameter. The mapping
// stores it by value passthrough and never copies, compares, or inspects it.
//
// # Ordering
//
// Each category keeps its entries in registration order with no dedup.
// Registering a key twice keeps both entries; a consumer resolving a lookup
// takes the last matching entry. The per-category lookup methods on Mapping
// implement this last-match rule and are the reference for any external
// resolver.
//
// # Interchange
//
// ToMap and FromMap convert a Mapping to and from a plain nested mapping for
// interchange with external tooling. The yamlform subpackage persists that
// form as a YAML document.
package passmap
