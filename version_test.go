package passmap_test

import (
	"testing"

	"github.com/0xalexb/passmap"

	"github.com/stretchr/testify/require"
)

func TestVersion_DefaultValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dev", passmap.Version)
	require.Equal(t, "unknown", passmap.CompiledAt)
}
