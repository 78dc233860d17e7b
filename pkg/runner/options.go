// Package runner provides multi-file formatting orchestration.
package runner

import "github.com/yaklabco/mdtidy/pkg/config"

// Options controls a multi-file formatting run.
type Options struct {
	// Paths are the user-specified files or directories to process. Empty
	// defaults to the working directory.
	Paths []string

	// WorkingDir is the base directory for resolving relative Paths. Empty
	// means the process working directory.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered Markdown.
	Extensions []string

	// Jobs caps the number of concurrent workers. Zero or negative means one
	// worker per CPU.
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
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
