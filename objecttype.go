package passmap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownObjectType is returned when a tagged object-type string carries
// an unrecognized tag.
var ErrUnknownObjectType = errors.New("unknown object type tag")

// ObjectType identifies what a graph node calls. It is a closed union with
// three cases:
//   - TypeRef: an operator or module kind (call into a typed module)
//   - FunctionRef: a free function
//   - MethodName: a method invoked by name on a value
//
// The zero interface value is not a valid ObjectType.
type ObjectType interface {
	fmt.Stringer

	objectType()
}

// TypeRef names an operator or module kind, e.g. "nn.Linear".
type TypeRef string

// FunctionRef names a free function, e.g. "nn.functional.linear".
type FunctionRef string

// MethodName names a method invoked by name, e.g. "add".
type MethodName string

func (TypeRef) objectType()     {}
func (FunctionRef) objectType() {}
func (MethodName) objectType()  {}

// String returns the tagged wire form, e.g. "type:nn.Linear".
func (t TypeRef) String() string {
	return "type:" + string(t)
}

// String returns the tagged wire form, e.g. "function:nn.functional.linear".
func (f FunctionRef) String() string {
	return "function:" + string(f)
}

// String returns the tagged wire form, e.g. "method:add".
func (m MethodName) String() string {
	return "method:" + string(m)
}

// ParseObjectType parses the tagged wire form produced by String.
// The identifier after the tag is not validated; an unknown or missing tag
// is an error.
func ParseObjectType(s string) (ObjectType, error) {
	tag, name, found := strings.Cut(s, ":")
	if !found {
		return nil, fmt.Errorf("%w: %q has no tag separator", ErrUnknownObjectType, s)
	}

	switch tag {
	case "type":
		return TypeRef(name), nil
	case "function":
		return FunctionRef(name), nil
	case "method":
		return MethodName(name), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, tag)
	}
}
