package pretty

import (
	"fmt"
	"io"

	"github.com/yaklabco/mdtidy/pkg/runner"
)

// WriteSummary renders the end-of-run summary line(s).
func WriteSummary(w io.Writer, styles *Styles, res *runner.Result, wrote bool) {
	if res == nil {
		return
	}
	s := res.Stats

	switch {
	case s.FilesErrored > 0:
		fmt.Fprintln(w, styles.Failure.Render(
			fmt.Sprintf("%d of %d files failed", s.FilesErrored, s.FilesDiscovered)))
	case s.FilesChanged == 0:
		fmt.Fprintln(w, styles.Success.Render(
			fmt.Sprintf("%d files already tidy", s.FilesProcessed)))
	case wrote:
		fmt.Fprintln(w, styles.Success.Render(
			fmt.Sprintf("formatted %d of %d files", s.FilesChanged, s.FilesProcessed)))
	default:
		fmt.Fprintln(w, styles.Failure.Render(
			fmt.Sprintf("%d of %d files would change", s.FilesChanged, s.FilesProcessed)))
	}

	if s.FilesSkipped > 0 {
		fmt.Fprintln(w, styles.Dim.Render(fmt.Sprintf("%d files skipped", s.FilesSkipped)))
	}
}
