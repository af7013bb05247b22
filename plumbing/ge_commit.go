package plumbing

import (
	"fmt"
	"strings"

	"github.com/brickster241/repoversion/utils/constants"
	"github.com/brickster241/repoversion/utils/types"
)

// ParseCommitParents returns the parent hashes named in a decompressed commit object.
// Root commits have none, merges have two or more.
func ParseCommitParents(objectText string) []string {
	var parents []string

	// Iterate Line by Line, only "parent <hash>" lines count
	for _, line := range strings.Split(objectText, "\n") {
		if !strings.HasPrefix(line, constants.ParentLinePrefix) {
			continue
		}
		fields := strings.Fields(line[len(constants.ParentLinePrefix):])
		if len(fields) == 0 {
			continue
		}
		parents = append(parents, strings.TrimSpace(fields[0]))
	}
	return parents
}

// ReadCommit reads and parses a commit object.
func ReadCommit(reader ObjectReader, hash string) (types.CommitNode, error) {
	objType, data, err := reader.ReadObject(hash)
	if err != nil {
		return types.CommitNode{}, err
	}

	// Check whether it is a commit object
	if objType != types.CommitObject {
		return types.CommitNode{}, fmt.Errorf("%w: %s is a %s, not a commit", ErrMissingObject, hash, objType)
	}

	// Parents are header lines, the message starts after the first blank line
	header := string(data)
	if idx := strings.Index(header, "\n\n"); idx != -1 {
		header = header[:idx]
	}

	return types.CommitNode{
		Hash:    hash,
		Parents: ParseCommitParents(header),
	}, nil
}

// WalkCommits visits every commit reachable from startHash exactly once.
// It uses an explicit stack and a visited set so reconverging merge histories are not counted twice and deep histories do not grow the call stack.
// Visiting stops at the first error from reading an object or from fn.
func WalkCommits(reader ObjectReader, startHash string, fn func(types.CommitNode) error) error {
	if startHash == "" {
		return nil
	}

	visited := make(map[string]struct{})
	stack := []string{startHash}

	for len(stack) > 0 {
		// Pop
		hash := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[hash]; seen {
			continue
		}
		visited[hash] = struct{}{}

		commit, err := ReadCommit(reader, hash)
		if err != nil {
			return err
		}
		if err := fn(commit); err != nil {
			return err
		}

		stack = append(stack, commit.Parents...)
	}
	return nil
}

// CountCommits returns the number of distinct commits reachable from startHash, startHash included.
// An empty startHash counts 0. A missing or corrupt object fails the whole count.
func CountCommits(reader ObjectReader, startHash string) (int, error) {
	count := 0
	err := WalkCommits(reader, startHash, func(types.CommitNode) error {
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
