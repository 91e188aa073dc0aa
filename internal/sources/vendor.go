package sources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ms-henglu/logtree/internal/log"
	"github.com/otiai10/copy"
)

// WorkspaceDir is the per-project directory holding vendored sources.
const WorkspaceDir = ".logtree"

// Resolve returns a local directory holding the manifests of source.
// Existing local directories are used in place; anything else goes through the global cache.
func Resolve(ctx context.Context, source string) (string, error) {
	if dir, ok := localDir(source); ok {
		log.Debug("Using local source %s", dir)
		return dir, nil
	}

	path, hit, err := EnsureGlobalCache(ctx, source)
	if err != nil {
		return "", err
	}
	if hit {
		log.Debug("Resolved %s from cache: %s", source, path)
	} else {
		log.Debug("Downloaded %s to %s", source, path)
	}
	return path, nil
}

// Vendor copies a source into <workspace>/.logtree/trees/<cache key>.
// Returns the destination directory and whether the source came from the cache.
func Vendor(ctx context.Context, source, workspace string) (string, bool, error) {
	srcPath := ""
	hit := false
	if dir, ok := localDir(source); ok {
		srcPath = dir
	} else {
		var err error
		srcPath, hit, err = EnsureGlobalCache(ctx, source)
		if err != nil {
			return "", false, err
		}
	}

	dstPath := filepath.Join(workspace, WorkspaceDir, "trees", GetCacheKey(source))

	// Clean target
	if err := os.RemoveAll(dstPath); err != nil {
		return "", false, fmt.Errorf("failed to clean vendor directory %s: %w", dstPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return "", false, fmt.Errorf("failed to create vendor directory parent: %w", err)
	}

	log.Debug("Vendoring %s from %s...", source, srcPath)
	if err := copy.Copy(srcPath, dstPath, copy.Options{
		Skip: func(info os.FileInfo, src, dest string) (bool, error) {
			return info.IsDir() && info.Name() == ".git", nil
		},
	}); err != nil {
		return "", false, fmt.Errorf("failed to copy %s: %w", source, err)
	}

	return dstPath, hit, nil
}

// localDir reports whether source names an existing directory on disk.
// Forced getters (git::, s3::) and URLs are never local.
func localDir(source string) (string, bool) {
	if strings.Contains(source, "::") || strings.Contains(source, "://") {
		return "", false
	}
	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		return "", false
	}
	abs, err := filepath.Abs(source)
	if err != nil {
		return "", false
	}
	return abs, true
}
