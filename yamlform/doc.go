// Package yamlform persists the passmap interchange mapping as a YAML
// document.
//
// The document mirrors the interchange form key for key: the empty-string
// key holds the global config and the four list keys hold fixed-arity rows
// as YAML sequences with the config last. Object types are written in their
// tagged string form ("type:…", "function:…", "method:…") so the union
// survives the trip through YAML.
//
// Configs are decoded into the caller's config type C, so a typed config
// struct round-trips through Encode and Decode:
//
//	type PassConfig struct {
//	    Bits int    `yaml:"bits"`
//	    Mode string `yaml:"mode"`
//	}
//
//	mapping, err := yamlform.Decode[PassConfig](data)
//
// FileProvider wraps Decode in an Fx-friendly constructor closure reading
// from a file.
package yamlform
