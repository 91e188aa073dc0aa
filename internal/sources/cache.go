package sources

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter"
	"github.com/ms-henglu/logtree/internal/log"
)

// CacheDirEnv overrides the global cache location.
const CacheDirEnv = "LOGTREE_CACHE_DIR"

// GlobalCacheDir returns the global cache directory.
// It checks LOGTREE_CACHE_DIR environment variable first, then defaults to ~/.logtree/cache.
func GlobalCacheDir() (string, error) {
	if dir := os.Getenv(CacheDirEnv); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		cwd, wdErr := os.Getwd()
		if wdErr != nil {
			return "", fmt.Errorf("failed to get user home directory (%v) and current working directory (%w)", err, wdErr)
		}
		log.Warn(fmt.Sprintf("Failed to get user home directory: %v. Falling back to current directory for cache. Set %s to specify a custom cache location.", err, CacheDirEnv))
		return filepath.Join(cwd, ".logtree", "cache"), nil
	}
	return filepath.Join(homeDir, ".logtree", "cache"), nil
}

// EnsureGlobalCache checks if the source is in the global cache, and if not, downloads it.
// Returns the absolute path to the cached directory and a boolean indicating if it was a cache hit.
func EnsureGlobalCache(ctx context.Context, source string) (string, bool, error) {
	cacheDir, err := GlobalCacheDir()
	if err != nil {
		return "", false, err
	}

	cacheKey := GetCacheKey(source)
	cachePath := filepath.Join(cacheDir, cacheKey)

	if _, err := os.Stat(cachePath); err == nil {
		log.Debug("Cache hit for %s (%s)", source, cacheKey)
		return cachePath, true, nil
	}

	log.Debug("Downloading %s to cache...", source)

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", false, fmt.Errorf("failed to create cache directory: %w", err)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", false, err
	}

	// A failed fetch must not leave a directory behind that reads as a cache hit.
	tmpPath, err := os.MkdirTemp(cacheDir, ".download-*")
	if err != nil {
		return "", false, fmt.Errorf("failed to create download directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpPath) }()

	client := &getter.Client{
		Ctx:     ctx,
		Src:     source,
		Dst:     filepath.Join(tmpPath, "src"),
		Pwd:     pwd,
		Mode:    getter.ClientModeAny,
		Getters: snapshotGetters(),
	}

	if err := client.Get(); err != nil {
		return "", false, fmt.Errorf("failed to download %s: %w", source, err)
	}

	if err := os.Rename(filepath.Join(tmpPath, "src"), cachePath); err != nil {
		return "", false, fmt.Errorf("failed to populate cache: %w", err)
	}

	return cachePath, false, nil
}

// snapshotGetters returns the default getters with local files copied instead of symlinked,
// so cache entries stay stable when the source changes.
func snapshotGetters() map[string]getter.Getter {
	getters := make(map[string]getter.Getter, len(getter.Getters))
	for k, v := range getter.Getters {
		getters[k] = v
	}
	getters["file"] = &getter.FileGetter{Copy: true}
	return getters
}

// GetCacheKey returns a human-readable and unique cache key for a source.
func GetCacheKey(source string) string {
	// Human readable part
	// source: github.com/acme/trees//build -> github.com-acme-trees--build
	sanitizedSource := strings.ReplaceAll(source, "/", "-")
	sanitizedSource = strings.ReplaceAll(sanitizedSource, ":", "-")

	// Hash part for uniqueness
	shortHash := hashString(source)[:8]

	key := fmt.Sprintf("%s-%s", sanitizedSource, shortHash)

	// Final sanitization to ensure valid filename
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' || r == '?' || r == '*' || r == '"' || r == '<' || r == '>' || r == '|' || r == '&' || r == '=' {
			return '-'
		}
		return r
	}, key)
}

func hashString(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// CleanGlobalCache removes the global cache directory.
// Returns false if there was nothing to remove.
func CleanGlobalCache() (bool, error) {
	cacheDir, err := GlobalCacheDir()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(cacheDir); os.IsNotExist(err) {
		return false, nil
	}
	if err := os.RemoveAll(cacheDir); err != nil {
		return false, fmt.Errorf("failed to remove cache directory %s: %w", cacheDir, err)
	}
	return true, nil
}
