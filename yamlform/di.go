package yamlform

import (
	"fmt"

	"github.com/0xalexb/passmap"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that provides a mapping decoded from the
// YAML file at path, under the given named tag. The file is read when the
// container instantiates the mapping, not when the module is created.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule[C any](name, path string) fx.Option {
	if name == "" {
		return fx.Error(passmap.ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				FileProvider[C](path),
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
