package porcelain_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitplumbing "github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// fixtureRepo is a real on-disk repository written with go-git, whose loose objects and refs match what git writes.
type fixtureRepo struct {
	t    *testing.T
	dir  string
	repo *git.Repository
	wt   *git.Worktree
	n    int
}

// newFixtureRepo initializes an empty repository whose HEAD points at refs/heads/main.
func newFixtureRepo(t *testing.T) *fixtureRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	head := gitplumbing.NewSymbolicReference(gitplumbing.HEAD, gitplumbing.NewBranchReferenceName("main"))
	require.NoError(t, repo.Storer.SetReference(head))

	wt, err := repo.Worktree()
	require.NoError(t, err)

	return &fixtureRepo{t: t, dir: dir, repo: repo, wt: wt}
}

// commit writes a new file and commits it. Without explicit parents the current HEAD is the parent.
func (f *fixtureRepo) commit(message string, parents ...gitplumbing.Hash) gitplumbing.Hash {
	f.t.Helper()
	f.n++

	name := fmt.Sprintf("file%03d.txt", f.n)
	require.NoError(f.t, os.WriteFile(filepath.Join(f.dir, name), []byte(message+"\n"), 0o644))
	_, err := f.wt.Add(name)
	require.NoError(f.t, err)

	hash, err := f.wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Unix(1700000000+int64(f.n), 0).UTC(),
		},
		Parents: parents,
	})
	require.NoError(f.t, err)
	return hash
}

// commits makes n sequential commits and returns the last one.
func (f *fixtureRepo) commits(n int) gitplumbing.Hash {
	f.t.Helper()
	var last gitplumbing.Hash
	for i := 0; i < n; i++ {
		last = f.commit(fmt.Sprintf("commit %d", f.n+1))
	}
	return last
}

// detach points HEAD directly at hash.
func (f *fixtureRepo) detach(hash gitplumbing.Hash) {
	f.t.Helper()
	require.NoError(f.t, f.repo.Storer.SetReference(gitplumbing.NewHashReference(gitplumbing.HEAD, hash)))
}

// gitDir returns the .git directory of the fixture.
func (f *fixtureRepo) gitDir() string {
	return filepath.Join(f.dir, ".git")
}

// objectPath returns the loose object file of hash.
func (f *fixtureRepo) objectPath(hash gitplumbing.Hash) string {
	hex := hash.String()
	return filepath.Join(f.gitDir(), "objects", hex[:2], hex[2:])
}

// referenceCount counts commits reachable from hash using go-git's own log walk.
func (f *fixtureRepo) referenceCount(hash gitplumbing.Hash) int {
	f.t.Helper()
	iter, err := f.repo.Log(&git.LogOptions{From: hash})
	require.NoError(f.t, err)

	count := 0
	require.NoError(f.t, iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	}))
	return count
}
