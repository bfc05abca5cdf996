package diff

import (
	"os"
	"path/filepath"
	"testing"

	"json-diff/core/source"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	docA = `[{"id":"1","name":"Alice"},{"id":"2","name":"Bob"}]`
	docB = `[{"id":"2","name":"Bobby"},{"id":"3","name":"Carl"}]`
)

// newTestService serves the given files from a temporary directory.
func newTestService(t *testing.T, files map[string]string) *Service {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return NewService(source.NewDirectory(dir), zap.NewNop())
}

func defaultFiles() map[string]string {
	return map[string]string{
		"a.json":        docA,
		"b.json":        docB,
		"dup.json":      `[{"id":"1","name":"Alice"},{"id":"1","name":"Alicia"}]`,
		"other.json":    `[{"key":"1","label":"x"}]`,
		"broken.json":   `[{"id":"1"`,
		"object.json":   `{"id":"1"}`,
		"nested.json":   `[{"id":{"k":1},"name":"x"}]`,
		"numbers1.json": `[{"id":1,"name":"Alice","age":30},{"id":2,"name":"Bob","age":40}]`,
		"numbers2.json": `[{"id":1,"name":"Alicia","age":31},{"id":2,"name":"Bob","age":40}]`,
	}
}
