package plumbing

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zlib"

	"github.com/brickster241/repoversion/utils/constants"
	"github.com/brickster241/repoversion/utils/types"
)

// ObjectReader reads objects by hash. It returns: object type, raw content (WITHOUT header), error if any
type ObjectReader interface {
	ReadObject(hash string) (types.ObjectType, []byte, error)
}

// LooseObjectStore reads loose objects from <dir>/objects. Packed objects are not supported.
type LooseObjectStore struct {
	dir    string
	format ObjectFormat
}

// NewLooseObjectStore returns a store rooted at the metadata (or common) directory dir.
func NewLooseObjectStore(dir string, format ObjectFormat) *LooseObjectStore {
	if format == "" {
		format = SHA1
	}
	return &LooseObjectStore{dir: dir, format: format}
}

// ObjectPath returns <dir>/objects/<first 2 hex chars>/<remaining hex chars>.
func (s *LooseObjectStore) ObjectPath(hash string) string {
	return filepath.Join(s.dir, constants.ObjectsDirName, hash[:2], hash[2:])
}

// ReadObject reads and inflates a loose object and splits off its "<type> <size>\0" header.
func (s *LooseObjectStore) ReadObject(hash string) (types.ObjectType, []byte, error) {

	// Check SHA length and alphabet, this also keeps the path inside objects/
	if !s.format.ValidHash(hash) {
		return "", nil, fmt.Errorf("%w: invalid %s object name %q", ErrMissingObject, s.format, hash)
	}
	hash = strings.ToLower(hash)

	data, err := s.inflate(hash)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %v", ErrMissingObject, hash, err)
	}

	// Split Header, Content -> then Header to parts
	nullIdx := bytes.IndexByte(data, 0)
	if nullIdx == -1 {
		return "", nil, fmt.Errorf("%w: %s: no object header", ErrMissingObject, hash)
	}

	header := string(data[:nullIdx])
	content := data[nullIdx+1:]

	parts := strings.Split(header, " ")
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("%w: %s: invalid object header %q", ErrMissingObject, hash, header)
	}

	// Declared size must match what was inflated
	size, err := strconv.Atoi(parts[1])
	if err != nil || size != len(content) {
		return "", nil, fmt.Errorf("%w: %s: object size mismatch", ErrMissingObject, hash)
	}

	return types.ObjectType(parts[0]), content, nil
}

// inflate reads the whole zlib stream of a loose object, header included.
func (s *LooseObjectStore) inflate(hash string) ([]byte, error) {
	f, err := os.Open(s.ObjectPath(hash))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zlib.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return io.ReadAll(zr)
}

// ReadObjectText returns the fully decompressed loose object, header included, decoded as text.
func ReadObjectText(dir, hash string) (string, error) {
	store := NewLooseObjectStore(dir, formatForHash(hash))
	if !store.format.ValidHash(hash) {
		return "", fmt.Errorf("%w: invalid object name %q", ErrMissingObject, hash)
	}

	data, err := store.inflate(strings.ToLower(hash))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMissingObject, hash, err)
	}
	return string(data), nil
}

// formatForHash guesses the object format from the length of a hash.
func formatForHash(hash string) ObjectFormat {
	if len(hash) == SHA256.HexLen() {
		return SHA256
	}
	return SHA1
}
