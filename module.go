package passmap

import (
	"errors"
	"fmt"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when an Fx module is created without a name.
var ErrEmptyName = errors.New("module name is empty")

// NewModule creates an Fx module that supplies the mapping to DI under the
// given named tag. The name is used as both the Fx module name and the named
// tag for *Mapping[C], so several mappings for different passes can coexist
// in one container. A nil mapping is supplied as an empty one.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule[C any](name string, mapping *Mapping[C]) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	if mapping == nil {
		mapping = New[C]()
	}

	return fx.Module(name,
		fx.Supply(
			fx.Annotate(mapping, fx.ResultTags(fmt.Sprintf(`name:"%s"`, name))),
		),
	)
}
