package porcelain

import (
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/brickster241/repoversion/utils/types"
)

// SnapshotCache holds the most recent RepoInfo and when it was stored.
// It has a capacity of one entry, shared by every repository path it is asked about.
type SnapshotCache struct {
	clock clock.PassiveClock

	mu        sync.RWMutex
	info      *types.RepoInfo
	updatedAt time.Time
}

// NewSnapshotCache returns an empty cache. A nil clock uses the real clock.
func NewSnapshotCache(clk clock.PassiveClock) *SnapshotCache {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &SnapshotCache{clock: clk}
}

// Clock returns the clock used to age snapshots.
func (c *SnapshotCache) Clock() clock.PassiveClock {
	return c.clock
}

// IsFresh reports whether a snapshot is stored and its age is strictly less than maxAge.
// A maxAge of 0 or below, such as constants.NeverCache, is never fresh.
func (c *SnapshotCache) IsFresh(maxAge time.Duration) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.freshLocked(maxAge)
}

func (c *SnapshotCache) freshLocked(maxAge time.Duration) bool {
	if maxAge <= 0 || c.info == nil {
		return false
	}
	return c.clock.Since(c.updatedAt) < maxAge
}

// Get returns a copy of the stored snapshot if it is fresh, nil otherwise.
func (c *SnapshotCache) Get(maxAge time.Duration) *types.RepoInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.freshLocked(maxAge) {
		return nil
	}
	info := *c.info
	return &info
}

// Put stores a copy of info and resets the freshness timestamp. Storing nil is a no-op.
func (c *SnapshotCache) Put(info *types.RepoInfo) {
	if info == nil {
		return
	}
	stored := *info

	c.mu.Lock()
	defer c.mu.Unlock()
	c.info = &stored
	c.updatedAt = c.clock.Now()
}

// GetOrCompute returns the fresh snapshot, or runs compute, stores its result and returns it.
// Concurrent misses each run their own compute, the last Put wins.
func (c *SnapshotCache) GetOrCompute(maxAge time.Duration, compute func() *types.RepoInfo) *types.RepoInfo {
	if info := c.Get(maxAge); info != nil {
		return info
	}

	info := compute()
	c.Put(info)
	if info == nil {
		return nil
	}
	result := *info
	return &result
}
