package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileMode applies to new files written with a zero mode.
const DefaultFileMode os.FileMode = 0o644

// tempPrefix marks in-flight writes so discovery skips them as hidden files.
const tempPrefix = ".jandent-"

// WriteAtomic replaces path with content through a synced temp file in the
// same directory. A zero mode keeps the permissions of an existing path and
// falls back to DefaultFileMode for a new one. On failure path is untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if mode == 0 {
		mode, err = existingMode(path)
		if err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), tempPrefix+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	steps := []struct {
		what string
		run  func() error
	}{
		{"write", func() error {
			_, werr := tmp.Write(content)
			return werr
		}},
		{"sync", tmp.Sync},
		{"close", tmp.Close},
		{"chmod", func() error { return os.Chmod(tmp.Name(), mode) }},
		{"rename", func() error { return os.Rename(tmp.Name(), path) }},
	}
	for _, step := range steps {
		if err = step.run(); err != nil {
			return fmt.Errorf("%s %s: %w", step.what, path, err)
		}
	}
	return nil
}

func existingMode(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return info.Mode().Perm(), nil
	case errors.Is(err, fs.ErrNotExist):
		return DefaultFileMode, nil
	default:
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
}
