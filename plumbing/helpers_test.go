package plumbing

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"

	"github.com/brickster241/repoversion/utils/types"
)

// writeLooseObject stores "<type> <size>\0<content>" zlib compressed under dir/objects and returns its sha1.
func writeLooseObject(t *testing.T, dir string, objType types.ObjectType, content string) string {
	t.Helper()

	store := []byte(fmt.Sprintf("%s %d\x00%s", objType, len(content), content))
	sum := sha1.Sum(store)
	hash := hex.EncodeToString(sum[:])

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(store)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	writeRaw(t, dir, hash, buf.Bytes())
	return hash
}

// writeRaw stores data as-is at the loose object path of hash.
func writeRaw(t *testing.T, dir, hash string, data []byte) {
	t.Helper()
	objDir := filepath.Join(dir, "objects", hash[:2])
	require.NoError(t, os.MkdirAll(objDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(objDir, hash[2:]), data, 0o644))
}

// writeCommit stores a commit object with the given parents.
func writeCommit(t *testing.T, dir, message string, parents ...string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("tree 4b825dc642cb6eb9a060e54bf8d69288fbee4904\n")
	for _, p := range parents {
		b.WriteString("parent " + p + "\n")
	}
	b.WriteString("author Test <test@example.com> 1700000000 +0000\n")
	b.WriteString("committer Test <test@example.com> 1700000000 +0000\n")
	b.WriteString("\n" + message + "\n")
	return writeLooseObject(t, dir, types.CommitObject, b.String())
}

// writeFile creates dir/name with content, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// memoryStore is an in-memory ObjectReader for graph shapes git would never write.
type memoryStore map[string][]string

func (m memoryStore) ReadObject(hash string) (types.ObjectType, []byte, error) {
	parents, ok := m[hash]
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrMissingObject, hash)
	}
	var b strings.Builder
	b.WriteString("tree t\n")
	for _, p := range parents {
		b.WriteString("parent " + p + "\n")
	}
	b.WriteString("\nmessage\n")
	return types.CommitObject, []byte(b.String()), nil
}
