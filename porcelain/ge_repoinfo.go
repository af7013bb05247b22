// Package porcelain assembles repository version info and caches the latest snapshot.
package porcelain

import (
	"time"

	"github.com/brickster241/repoversion/utils/types"
)

var defaultInspector = NewInspector(nil, nil)

// GetRepoInfo returns a fresh snapshot of the repository at repoPath, or nil if it could not be determined.
func GetRepoInfo(repoPath string) *types.RepoInfo {
	return defaultInspector.RepoInfo(repoPath)
}

// GetRepoInfoCached is GetRepoInfo behind the process-wide snapshot cache.
// Pass constants.DefaultMaxAge for the usual one minute window. A maxAge of 0 or constants.NeverCache always recomputes.
func GetRepoInfoCached(repoPath string, maxAge time.Duration) *types.RepoInfo {
	return defaultInspector.RepoInfoCached(repoPath, maxAge)
}
