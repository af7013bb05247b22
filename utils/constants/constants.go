package constants

import "time"

const (
	GitDirName        = ".git"
	HeadFileName      = "HEAD"
	ConfigFileName    = "config"
	CommonDirFileName = "commondir"
	ObjectsDirName    = "objects"
	GitDirFilePrefix  = "gitdir:"         // content prefix of a .git file (submodules, worktrees)
	SymbolicRefPrefix = "ref:"            // content prefix of a symbolic HEAD
	RefsPrefix        = "refs/"           // every symbolic ref must live under refs/
	ParentLinePrefix  = "parent "         // commit header line naming a parent
	ShortHashLength   = 7                 // length of the abbreviated hash
	DefaultMaxAge     = time.Minute       // freshness window callers pass when they have no preference
	NeverCache        = time.Duration(-1) // maxAge sentinel that always forces recomputation
)
