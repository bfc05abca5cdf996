package reconcile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCollection(t *testing.T, name, doc string) *Collection {
	t.Helper()
	v, err := Decode([]byte(doc))
	require.NoError(t, err)
	c, err := NewCollection(name, v)
	require.NoError(t, err)
	return c
}

func idStrings(ids []Identifier) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
