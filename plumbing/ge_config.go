package plumbing

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/brickster241/repoversion/utils/constants"
)

// ObjectFormat is the hash algorithm a repository uses to name its objects.
type ObjectFormat string

const (
	SHA1   ObjectFormat = "sha1"
	SHA256 ObjectFormat = "sha256"
)

// HexLen returns the length of a hex encoded object name.
func (f ObjectFormat) HexLen() int {
	if f == SHA256 {
		return 64
	}
	return 40
}

// ValidHash reports whether hash is a lowercase or uppercase hex object name of the right length.
func (f ObjectFormat) ValidHash(hash string) bool {
	if len(hash) != f.HexLen() {
		return false
	}
	for _, c := range hash {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ReadObjectFormat reads extensions.objectformat from <commonDir>/config.
// A missing config file or key means sha1. On parse failure sha1 is returned alongside the error.
func ReadObjectFormat(commonDir string) (ObjectFormat, error) {
	cfgPath := filepath.Join(commonDir, constants.ConfigFileName)

	// Git config allows bare boolean keys and mixed case names. Loose tolerates a missing file.
	cfg, err := ini.LoadSources(ini.LoadOptions{
		Loose:                   true,
		Insensitive:             true,
		AllowBooleanKeys:        true,
		SkipUnrecognizableLines: true,
	}, cfgPath)
	if err != nil {
		return SHA1, fmt.Errorf("read %s: %w", cfgPath, err)
	}

	// Check value for extensions.objectformat
	val := strings.ToLower(strings.TrimSpace(cfg.Section("extensions").Key("objectformat").String()))
	switch val {
	case "", string(SHA1):
		return SHA1, nil
	case string(SHA256):
		return SHA256, nil
	default:
		return SHA1, fmt.Errorf("unsupported object format %q in %s", val, cfgPath)
	}
}
