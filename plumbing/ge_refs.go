package plumbing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/brickster241/repoversion/utils/constants"
	"github.com/brickster241/repoversion/utils/types"
)

// ParseHead parses the content of a HEAD file.
// "ref: refs/heads/main" yields the branch and its ref path, anything else is taken as a detached commit hash.
func ParseHead(content string) (types.HeadFileInfo, error) {

	// Symbolic Ref
	if strings.HasPrefix(content, constants.SymbolicRefPrefix) {
		fields := strings.Fields(content)
		if len(fields) < 2 {
			return types.HeadFileInfo{}, fmt.Errorf("%w: symbolic HEAD without a ref path", ErrMalformedRef)
		}
		branchRef := strings.TrimSpace(fields[1])
		return types.HeadFileInfo{
			Branch:    branchRef[strings.LastIndex(branchRef, "/")+1:],
			BranchRef: branchRef,
		}, nil
	}

	// Detached HEAD
	hash := strings.TrimSpace(content)
	if hash == "" {
		return types.HeadFileInfo{}, fmt.Errorf("%w: empty HEAD", ErrMalformedRef)
	}
	return types.HeadFileInfo{
		Hash:      hash,
		ShortHash: shortHash(hash),
	}, nil
}

// ParseBranchFile parses the content of a branch ref file such as refs/heads/main.
func ParseBranchFile(content string) types.BranchFileInfo {
	hash := strings.TrimSpace(content)
	return types.BranchFileInfo{
		Hash:      hash,
		ShortHash: shortHash(hash),
	}
}

// ReadHeadFile reads and validates <gitDir>/HEAD.
func ReadHeadFile(gitDir string, format ObjectFormat) (types.HeadFileInfo, error) {
	data, err := os.ReadFile(filepath.Join(gitDir, constants.HeadFileName))
	if err != nil {
		return types.HeadFileInfo{}, fmt.Errorf("%w: %v", ErrNotARepo, err)
	}

	head, err := ParseHead(string(data))
	if err != nil {
		return types.HeadFileInfo{}, err
	}

	// Validate whichever half was filled in
	if head.Detached() {
		if !format.ValidHash(head.Hash) {
			return types.HeadFileInfo{}, fmt.Errorf("%w: HEAD is not a %s hash: %q", ErrMalformedRef, format, head.Hash)
		}
		return head, nil
	}
	if err := validateRefPath(head.BranchRef); err != nil {
		return types.HeadFileInfo{}, err
	}
	return head, nil
}

// ReadBranchFile reads and validates <commonDir>/<branchRef>.
// A branch file that does not exist yet returns ErrNoCommits.
func ReadBranchFile(commonDir, branchRef string, format ObjectFormat) (types.BranchFileInfo, error) {
	if err := validateRefPath(branchRef); err != nil {
		return types.BranchFileInfo{}, err
	}

	data, err := os.ReadFile(filepath.Join(commonDir, filepath.FromSlash(branchRef)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.BranchFileInfo{}, fmt.Errorf("%w: %s does not exist", ErrNoCommits, branchRef)
		}
		return types.BranchFileInfo{}, fmt.Errorf("%w: %v", ErrNotARepo, err)
	}

	branch := ParseBranchFile(string(data))
	if !format.ValidHash(branch.Hash) {
		return types.BranchFileInfo{}, fmt.Errorf("%w: %s is not a %s hash: %q", ErrMalformedRef, branchRef, format, branch.Hash)
	}
	return branch, nil
}

// validateRefPath rejects refs outside refs/ so that a ref never escapes the metadata directory.
func validateRefPath(ref string) error {
	if !strings.HasPrefix(ref, constants.RefsPrefix) {
		return fmt.Errorf("%w: ref %q is not under %s", ErrMalformedRef, ref, constants.RefsPrefix)
	}
	for _, segment := range strings.Split(ref, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return fmt.Errorf("%w: invalid ref path %q", ErrMalformedRef, ref)
		}
	}
	return nil
}

// shortHash returns the first 7 characters of hash, or hash itself when shorter.
func shortHash(hash string) string {
	if len(hash) <= constants.ShortHashLength {
		return hash
	}
	return hash[:constants.ShortHashLength]
}
