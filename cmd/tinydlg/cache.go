package main

import (
	"path/filepath"
	"time"

	"github.com/patrickmn/go-cache"
)

// Dialog kinds used as last-directory cache keys
const (
	kindSave   = "save"
	kindOpen   = "open"
	kindFolder = "folder"
)

const (
	lastDirExpiration = 30 * time.Minute
	cleanupInterval   = 5 * time.Minute
)

const prefixLastDir = "lastdir:"

// pathCache remembers the last directory a file dialog produced, per
// dialog kind, so later calls in the same session (notably scripted
// ones) can start where the user left off.
type pathCache struct {
	c *cache.Cache
}

func newPathCache() *pathCache {
	return &pathCache{c: cache.New(lastDirExpiration, cleanupInterval)}
}

// Remember stores the directory part of a chosen file path.
func (pc *pathCache) Remember(kind, path string) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		pc.c.Set(prefixLastDir+kind, dir, cache.DefaultExpiration)
	}
}

// RememberDir stores a chosen directory as-is.
func (pc *pathCache) RememberDir(kind, dir string) {
	if dir != "" {
		pc.c.Set(prefixLastDir+kind, dir, cache.DefaultExpiration)
	}
}

// LastDir retrieves the remembered directory for a dialog kind.
func (pc *pathCache) LastDir(kind string) (string, bool) {
	if val, found := pc.c.Get(prefixLastDir + kind); found {
		if dir, ok := val.(string); ok {
			return dir, true
		}
	}
	return "", false
}
