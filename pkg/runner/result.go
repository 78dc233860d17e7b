package runner

// FileOutcome is the result of formatting one file.
type FileOutcome struct {
	// Path is the file that was processed.
	Path string

	// Changed reports whether formatting altered the file's content.
	Changed bool

	// Skipped is true when a gate (ignore pattern or frontmatter) exempted
	// the file.
	Skipped bool

	// Formatted holds the formatted content. Set only when Changed is true
	// and the run is not writing in place.
	Formatted string

	// Original holds the on-disk content when Changed is true, for diff
	// rendering.
	Original string

	// Error is set when the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesChanged    int
	FilesSkipped    int
	FilesErrored    int
}

// Result is the overall run result, ordered deterministically by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

func (r *Result) accumulate(o FileOutcome) {
	r.Files = append(r.Files, o)
	switch {
	case o.Error != nil:
		r.Stats.FilesErrored++
	case o.Skipped:
		r.Stats.FilesSkipped++
	default:
		r.Stats.FilesProcessed++
		if o.Changed {
			r.Stats.FilesChanged++
		}
	}
}

// HasChanges reports whether any file differed from its formatted form.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}
