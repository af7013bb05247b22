package types

// HeadFileInfo represents the parsed state of .git/HEAD
type HeadFileInfo struct {
	Branch    string // branch name, e.g. main (empty if detached)
	BranchRef string // refs/heads/main (empty if detached)
	Hash      string // commit hash, only set if detached
	ShortHash string // first 7 characters of Hash
}

// Detached reports whether HEAD points directly at a commit.
func (h HeadFileInfo) Detached() bool {
	return h.BranchRef == ""
}

// BranchFileInfo represents the parsed content of a branch ref file.
type BranchFileInfo struct {
	Hash      string
	ShortHash string
}
