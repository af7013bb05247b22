package plumbing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brickster241/repoversion/utils/constants"
)

// LocateMetadataDir resolves the .git directory of the repository at repoPath.
// A .git directory is returned as is. A .git file (submodules, linked worktrees) must contain "gitdir: <path>", relative paths are resolved against repoPath.
func LocateMetadataDir(repoPath string) (string, error) {
	gitPath := filepath.Join(repoPath, constants.GitDirName)

	// Stat the .git entry, any failure means there is no repository here
	info, err := os.Stat(gitPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotARepo, err)
	}

	// Standard layout
	if info.IsDir() {
		return gitPath, nil
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is neither a file nor a directory", ErrNotARepo, gitPath)
	}

	// Submodule or worktree layout: .git is a file pointing at the real directory
	data, err := os.ReadFile(gitPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotARepo, err)
	}
	content := string(data)
	if !strings.HasPrefix(content, constants.GitDirFilePrefix) {
		return "", fmt.Errorf("%w: invalid .git file %s", ErrNotARepo, gitPath)
	}

	gitDir := strings.TrimSpace(strings.TrimPrefix(content, constants.GitDirFilePrefix))
	if gitDir == "" {
		return "", fmt.Errorf("%w: empty gitdir in %s", ErrNotARepo, gitPath)
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(repoPath, gitDir)
	}
	return filepath.Clean(gitDir), nil
}

// ResolveCommonDir returns the directory holding refs, objects and config for gitDir.
// Linked worktrees name it in a commondir file, everything else uses gitDir itself.
func ResolveCommonDir(gitDir string) string {
	data, err := os.ReadFile(filepath.Join(gitDir, constants.CommonDirFileName))
	if err != nil {
		return gitDir
	}

	commonDir := strings.TrimSpace(string(data))
	if commonDir == "" {
		return gitDir
	}
	if !filepath.IsAbs(commonDir) {
		commonDir = filepath.Join(gitDir, commonDir)
	}
	return filepath.Clean(commonDir)
}
