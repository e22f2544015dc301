// Package assets finds the image files a catalog refers to and copies them
// into a built site.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultMaxFileSize caps a single asset at 20 MB.
const DefaultMaxFileSize int64 = 20 << 20

// File is one asset found under the assets root.
type File struct {
	Path    string // absolute path on disk
	RelPath string // slash-separated, relative to the root
	Size    int64
	Hash    string // SHA-256 hex digest
}

// Config controls Walk.
type Config struct {
	Root        string
	Include     []string // nil means DefaultInclude
	Exclude     []string
	MaxFileSize int64 // 0 means DefaultMaxFileSize
}

// Walk lists every regular file under cfg.Root that passes the include and
// exclude globs. A missing root yields no files and no error.
func Walk(cfg Config) ([]File, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve root: %w", err)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	include := cfg.Include
	if include == nil {
		include = DefaultInclude
	}
	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var files []File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if !MatchesInclude(rel, include) || MatchesExclude(rel, cfg.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > maxSize {
			return nil
		}
		hash, err := hashFile(path)
		if err != nil {
			return nil
		}

		files = append(files, File{
			Path:    path,
			RelPath: filepath.ToSlash(rel),
			Size:    info.Size(),
			Hash:    hash,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: traversal: %w", err)
	}
	return files, nil
}

// Copy writes files under dst, keeping their relative paths. A destination
// that already holds the same content is left alone. It returns how many
// files were written.
func Copy(files []File, dst string) (int, error) {
	written := 0
	for _, f := range files {
		target := filepath.Join(dst, filepath.FromSlash(f.RelPath))
		if h, err := hashFile(target); err == nil && h == f.Hash {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("assets: create dir for %s: %w", f.RelPath, err)
		}
		if err := copyFile(f.Path, target); err != nil {
			return written, fmt.Errorf("assets: copy %s: %w", f.RelPath, err)
		}
		written++
	}
	return written, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
