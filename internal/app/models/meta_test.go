package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIsConsistent(t *testing.T) {
	require.Len(t, Registry, 16)

	kinds := make(map[string]bool)
	prefixes := make(map[string]bool)
	tables := make(map[string]bool)

	for _, meta := range Registry {
		assert.NotEmpty(t, meta.Spec.Kind)
		assert.NotEmpty(t, meta.Spec.Prefix)
		assert.NotEmpty(t, meta.Table)
		assert.NotEmpty(t, meta.IDColumn)
		assert.GreaterOrEqual(t, meta.Spec.Width, 4)

		assert.False(t, kinds[meta.Spec.Kind], "duplicate kind %q", meta.Spec.Kind)
		assert.False(t, prefixes[meta.Spec.Prefix], "duplicate prefix %q", meta.Spec.Prefix)
		assert.False(t, tables[meta.Table], "duplicate table %q", meta.Table)

		kinds[meta.Spec.Kind] = true
		prefixes[meta.Spec.Prefix] = true
		tables[meta.Table] = true
	}
}

func TestRegistryFormatsRoundTrip(t *testing.T) {
	for _, meta := range Registry {
		id := meta.Spec.Format(1)
		n, err := meta.Spec.Parse(id)
		require.NoError(t, err, "spec %s", meta.Spec.Kind)
		assert.Equal(t, int64(1), n)
	}
}

func TestChatMessageSpecUsesWiderCounter(t *testing.T) {
	assert.Equal(t, "MSG000001", ChatMessageIDSpec.Format(1))
}
