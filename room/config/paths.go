package config

import (
	"os"
	"path/filepath"
)

// PathResolver handles resolution of relative paths in the config
type PathResolver struct {
	baseDir string
}

// NewPathResolver creates a new PathResolver relative to the given base directory
func NewPathResolver(baseDir string) *PathResolver {
	return &PathResolver{baseDir: baseDir}
}

// ResolvePath resolves a potentially relative path to an absolute path.
// The empty path stays empty.
func (pr *PathResolver) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(pr.baseDir, path)
}

// Relativize rewrites path, absolute or relative to the working directory, to be
// relative to the base directory. On failure path is returned unchanged.
func (pr *PathResolver) Relativize(path string) string {
	if path == "" {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	base, err := filepath.Abs(pr.baseDir)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return path
	}
	return rel
}

// FileExists checks if a file exists and is readable
func (pr *PathResolver) FileExists(path string) bool {
	absPath := pr.ResolvePath(path)
	_, err := os.Stat(absPath)
	return err == nil
}
