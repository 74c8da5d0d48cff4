package passmap_test

import (
	"testing"

	"github.com/0xalexb/passmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMapping() *passmap.Mapping[*passConfig] {
	return passmap.New[*passConfig]().
		SetGlobal(&passConfig{Bits: 8, Mode: "symmetric"}).
		SetObjectType(passmap.TypeRef("nn.Linear"), &passConfig{Bits: 8}).
		SetObjectType(passmap.MethodName("add"), &passConfig{Bits: 16}).
		SetModuleNameRegex("encoder.*conv[0-9]+", &passConfig{Bits: 4}).
		SetModuleNameRegex("encoder.*", &passConfig{Bits: 8}).
		SetModuleName("decoder.head", &passConfig{Bits: 16, Mode: "affine"}).
		SetModuleNameObjectTypeOrder("encoder.block", passmap.FunctionRef("nn.functional.linear"), 1, &passConfig{Bits: 4})
}

func TestToMap_AllKeysPresent(t *testing.T) {
	t.Parallel()

	raw := passmap.New[*passConfig]().ToMap()

	require.Len(t, raw, 5)
	assert.Contains(t, raw, passmap.GlobalKey)
	assert.Contains(t, raw, passmap.ObjectTypeKey)
	assert.Contains(t, raw, passmap.ModuleNameRegexKey)
	assert.Contains(t, raw, passmap.ModuleNameKey)
	assert.Contains(t, raw, passmap.ModuleNameObjectTypeOrderKey)

	assert.Nil(t, raw[passmap.GlobalKey])
	assert.Empty(t, raw[passmap.ObjectTypeKey])
	assert.Empty(t, raw[passmap.ModuleNameRegexKey])
	assert.Empty(t, raw[passmap.ModuleNameKey])
	assert.Empty(t, raw[passmap.ModuleNameObjectTypeOrderKey])
}

func TestToMap_RowOrderAndShape(t *testing.T) {
	t.Parallel()

	mapping := buildMapping()
	raw := mapping.ToMap()

	objectTypes, ok := raw[passmap.ObjectTypeKey].([][]any)
	require.True(t, ok)
	require.Len(t, objectTypes, 2)
	assert.Equal(t, []any{passmap.TypeRef("nn.Linear"), mapping.ObjectTypes[0].Config}, objectTypes[0])
	assert.Equal(t, []any{passmap.MethodName("add"), mapping.ObjectTypes[1].Config}, objectTypes[1])

	regexes, ok := raw[passmap.ModuleNameRegexKey].([][]any)
	require.True(t, ok)
	require.Len(t, regexes, 2)
	assert.Equal(t, "encoder.*conv[0-9]+", regexes[0][0])
	assert.Equal(t, "encoder.*", regexes[1][0])

	orders, ok := raw[passmap.ModuleNameObjectTypeOrderKey].([][]any)
	require.True(t, ok)
	require.Len(t, orders, 1)
	assert.Equal(t, []any{
		"encoder.block",
		passmap.FunctionRef("nn.functional.linear"),
		1,
		mapping.ModuleNameObjectTypeOrders[0].Config,
	}, orders[0])
}

func TestToMap_SharesConfigsByReference(t *testing.T) {
	t.Parallel()

	config := &passConfig{Bits: 8}
	mapping := passmap.New[*passConfig]().
		SetGlobal(config).
		SetModuleName("encoder.layer1", config)

	raw := mapping.ToMap()

	assert.Same(t, config, raw[passmap.GlobalKey])

	names, ok := raw[passmap.ModuleNameKey].([][]any)
	require.True(t, ok)
	require.Len(t, names, 1)
	assert.Same(t, config, names[0][1])
}

func TestFromMap_RoundTrip(t *testing.T) {
	t.Parallel()

	mapping := buildMapping()

	rebuilt := passmap.FromMap[*passConfig](mapping.ToMap())

	require.Equal(t, mapping, rebuilt)

	// Configs survive the round trip by reference, not as copies.
	global, ok := mapping.Global()
	require.True(t, ok)

	rebuiltGlobal, ok := rebuilt.Global()
	require.True(t, ok)
	assert.Same(t, global, rebuiltGlobal)
	assert.Same(t, mapping.ObjectTypes[0].Config, rebuilt.ObjectTypes[0].Config)
}

func TestFromMap_EmptyInput(t *testing.T) {
	t.Parallel()

	mapping := passmap.FromMap[*passConfig](map[string]any{})

	_, ok := mapping.Global()
	assert.False(t, ok)
	assert.Empty(t, mapping.ObjectTypes)
	assert.Empty(t, mapping.ModuleNameRegexes)
	assert.Empty(t, mapping.ModuleNames)
	assert.Empty(t, mapping.ModuleNameObjectTypeOrders)
}

func TestFromMap_IgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	mapping := passmap.FromMap[*passConfig](map[string]any{
		"module_name_suffix": [][]any{{"layer1", &passConfig{}}},
		"version":            3,
	})

	assert.Empty(t, mapping.ModuleNames)
}

func TestFromMap_NilGlobalLeavesGlobalUnset(t *testing.T) {
	t.Parallel()

	mapping := passmap.FromMap[*passConfig](map[string]any{
		passmap.GlobalKey: nil,
	})

	_, ok := mapping.Global()
	assert.False(t, ok)
}

func TestFromMap_LooseRowTypes(t *testing.T) {
	t.Parallel()

	// Decoded documents carry tagged strings for object types, plain []any
	// rows, and wide integer types for indexes.
	config := &passConfig{Bits: 4}
	mapping := passmap.FromMap[*passConfig](map[string]any{
		passmap.ObjectTypeKey: []any{
			[]any{"type:nn.Linear", config},
		},
		passmap.ModuleNameObjectTypeOrderKey: []any{
			[]any{"encoder.block", "function:nn.functional.linear", uint64(2), config},
		},
	})

	require.Len(t, mapping.ObjectTypes, 1)
	assert.Equal(t, passmap.TypeRef("nn.Linear"), mapping.ObjectTypes[0].ObjectType)

	require.Len(t, mapping.ModuleNameObjectTypeOrders, 1)
	assert.Equal(t, passmap.FunctionRef("nn.functional.linear"), mapping.ModuleNameObjectTypeOrders[0].ObjectType)
	assert.Equal(t, 2, mapping.ModuleNameObjectTypeOrders[0].Index)
}

func TestFromMap_MalformedRowsPanic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{
			name: "short row",
			raw: map[string]any{
				passmap.ModuleNameKey: [][]any{{"encoder.layer1"}},
			},
		},
		{
			name: "row list is not a sequence",
			raw: map[string]any{
				passmap.ObjectTypeKey: "type:nn.Linear",
			},
		},
		{
			name: "bad object type tag",
			raw: map[string]any{
				passmap.ObjectTypeKey: [][]any{{"operator:nn.Linear", &passConfig{}}},
			},
		},
		{
			name: "non-integer index",
			raw: map[string]any{
				passmap.ModuleNameObjectTypeOrderKey: [][]any{
					{"encoder.block", "method:add", "first", &passConfig{}},
				},
			},
		},
	}

	for _, testInfo := range tests {
		testInfo := testInfo
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			require.Panics(t, func() {
				passmap.FromMap[*passConfig](testInfo.raw)
			})
		})
	}
}
