package plumbing

import "errors"

// FailureKind tags why repository info could not be determined.
type FailureKind string

const (
	KindNone          FailureKind = ""
	KindNotARepo      FailureKind = "not-a-repo"
	KindMalformedRef  FailureKind = "malformed-ref"
	KindMissingObject FailureKind = "missing-object"
	KindNoCommits     FailureKind = "no-commits"
	KindUnknown       FailureKind = "unknown"
)

var (
	// ErrNotARepo means .git is missing, invalid or unreadable.
	ErrNotARepo = errors.New("not a git repository")
	// ErrMalformedRef means HEAD or a branch ref file does not match the expected grammar.
	ErrMalformedRef = errors.New("malformed ref")
	// ErrMissingObject means an object file is missing or corrupt.
	ErrMissingObject = errors.New("missing or corrupt object")
	// ErrNoCommits means the checked out branch has no commits yet.
	ErrNoCommits = errors.New("no commits yet")
)

// FailureKindOf maps an error returned by this package to its tag.
func FailureKindOf(err error) FailureKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNotARepo):
		return KindNotARepo
	case errors.Is(err, ErrMalformedRef):
		return KindMalformedRef
	case errors.Is(err, ErrMissingObject):
		return KindMissingObject
	case errors.Is(err, ErrNoCommits):
		return KindNoCommits
	default:
		return KindUnknown
	}
}
