// Package runner discovers prose files and runs the jandent pipeline over
// them with bounded parallelism.
package runner

import (
	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories.
	// If empty, defaults to the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and anchors ignore globs.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions selects files found while walking directories
	// (lowercase, with leading dot). Files named explicitly are always taken.
	Extensions []string

	// ExcludeGlobs skip files or directories. They merge the config's
	// ignore list with --ignore.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs caps concurrent files. 0 or negative means runtime.NumCPU().
	Jobs int

	// Mode selects the convert or the lint pass.
	Mode lint.Mode

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the extensions walked by default.
func DefaultExtensions() []string {
	return []string{".txt", ".md"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
