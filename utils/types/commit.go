package types

// CommitNode represents a commit object as seen by the commit walker
type CommitNode struct {
	Hash    string   // commit hash
	Parents []string // parent commit hashes, can be multiple for merges
}

// IsMerge reports whether the commit has more than one parent.
func (c CommitNode) IsMerge() bool {
	return len(c.Parents) > 1
}

// IsRoot reports whether the commit has no parents.
func (c CommitNode) IsRoot() bool {
	return len(c.Parents) == 0
}
