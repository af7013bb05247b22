package porcelain

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"k8s.io/utils/clock"

	"github.com/brickster241/repoversion/plumbing"
	"github.com/brickster241/repoversion/utils/types"
)

const (
	logFieldRepoPath    = "repo_path"
	logFieldGitDir      = "git_dir"
	logFieldCommonDir   = "common_dir"
	logFieldFailureKind = "failure_kind"
	logFieldBranchRef   = "branch_ref"
	logFieldHash        = "hash"
	logFieldCommits     = "commits"
	logFieldDuration    = "duration"
	logFieldFormat      = "object_format"
)

// Inspector assembles RepoInfo snapshots from a repository's metadata directory.
type Inspector struct {
	logger *zap.Logger
	cache  *SnapshotCache
	clock  clock.PassiveClock
}

// NewInspector wires an Inspector. A nil logger discards output, a nil cache gets a fresh one on the real clock.
func NewInspector(logger *zap.Logger, cache *SnapshotCache) *Inspector {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NewSnapshotCache(nil)
	}
	return &Inspector{logger: logger, cache: cache, clock: cache.Clock()}
}

// Cache returns the snapshot cache used by RepoInfoCached.
func (i *Inspector) Cache() *SnapshotCache {
	return i.cache
}

// Inspect reads the repository at repoPath.
// The error carries the failure tag (see plumbing.FailureKindOf). A branch without commits is not an error: Hash is empty and Commits is 0.
func (i *Inspector) Inspect(repoPath string) (types.RepoInfo, error) {
	start := i.clock.Now()

	// 1. Locate the metadata directory
	gitDir, err := plumbing.LocateMetadataDir(repoPath)
	if err != nil {
		return types.RepoInfo{}, err
	}
	commonDir := plumbing.ResolveCommonDir(gitDir)

	format, err := plumbing.ReadObjectFormat(commonDir)
	if err != nil {
		i.logger.Debug("falling back to default object format", zap.String(logFieldCommonDir, commonDir), zap.Error(err))
	}
	i.logger.Debug("located metadata directory",
		zap.String(logFieldRepoPath, repoPath),
		zap.String(logFieldGitDir, gitDir),
		zap.String(logFieldCommonDir, commonDir),
		zap.String(logFieldFormat, string(format)),
	)

	// 2. Read HEAD
	head, err := plumbing.ReadHeadFile(gitDir, format)
	if err != nil {
		return types.RepoInfo{}, err
	}

	info := types.RepoInfo{
		Branch:    head.Branch,
		BranchRef: head.BranchRef,
		Hash:      head.Hash,
		ShortHash: head.ShortHash,
	}

	// 3. The branch file is authoritative for the hash when HEAD is symbolic
	if !head.Detached() {
		branch, err := plumbing.ReadBranchFile(commonDir, head.BranchRef, format)
		switch {
		case errors.Is(err, plumbing.ErrNoCommits):
			i.logger.Debug("branch has no commits yet", zap.String(logFieldBranchRef, head.BranchRef))
			return info, nil
		case err != nil:
			return types.RepoInfo{}, err
		}
		info.Hash = branch.Hash
		info.ShortHash = branch.ShortHash
	}

	// 4. Count reachable commits
	count, err := plumbing.CountCommits(plumbing.NewLooseObjectStore(commonDir, format), info.Hash)
	if err != nil {
		return types.RepoInfo{}, err
	}
	info.Commits = count

	i.logger.Debug("assembled repository info",
		zap.String(logFieldBranchRef, info.BranchRef),
		zap.String(logFieldHash, info.Hash),
		zap.Int(logFieldCommits, info.Commits),
		zap.Duration(logFieldDuration, i.clock.Since(start)),
	)
	return info, nil
}

// RepoInfo returns a fresh snapshot of the repository at repoPath, or nil if it could not be determined.
func (i *Inspector) RepoInfo(repoPath string) *types.RepoInfo {
	info, err := i.Inspect(repoPath)
	if err != nil {
		i.logger.Debug("repository info unavailable",
			zap.String(logFieldRepoPath, repoPath),
			zap.String(logFieldFailureKind, string(plumbing.FailureKindOf(err))),
			zap.Error(err),
		)
		return nil
	}
	return &info
}

// RepoInfoCached returns the cached snapshot if it is younger than maxAge, otherwise recomputes it.
// Pass constants.DefaultMaxAge for the usual one minute window. A maxAge of 0 or constants.NeverCache always recomputes.
func (i *Inspector) RepoInfoCached(repoPath string, maxAge time.Duration) *types.RepoInfo {
	return i.cache.GetOrCompute(maxAge, func() *types.RepoInfo {
		return i.RepoInfo(repoPath)
	})
}
