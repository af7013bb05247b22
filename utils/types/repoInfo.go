package types

import "fmt"

// RepoInfo is an immutable snapshot of the checked out state of a repository.
// Empty strings mean the value is absent.
type RepoInfo struct {
	Branch    string `json:"branch" yaml:"branch"`       // branch name, empty on detached HEAD
	BranchRef string `json:"branchRef" yaml:"branchRef"` // e.g. refs/heads/main, empty on detached HEAD
	Hash      string `json:"hash" yaml:"hash"`           // full commit hash, empty if there are no commits
	ShortHash string `json:"shortHash" yaml:"shortHash"` // first 7 characters of Hash
	Commits   int    `json:"commits" yaml:"commits"`     // number of commits reachable from Hash
}

// Detached reports whether the snapshot was taken on a detached HEAD.
func (r RepoInfo) Detached() bool {
	return r.BranchRef == ""
}

// HasCommits reports whether the current branch has any commits.
func (r RepoInfo) HasCommits() bool {
	return r.Hash != ""
}

// Version renders a compact version string such as "main.42+abc1234".
func (r RepoInfo) Version() string {
	name := r.Branch
	if name == "" {
		name = "HEAD"
	}
	if !r.HasCommits() {
		return fmt.Sprintf("%s.0", name)
	}
	return fmt.Sprintf("%s.%d+%s", name, r.Commits, r.ShortHash)
}
