package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtidy/internal/configloader"
	"github.com/yaklabco/mdtidy/internal/logging"
	"github.com/yaklabco/mdtidy/internal/ui/pretty"
	"github.com/yaklabco/mdtidy/pkg/config"
	"github.com/yaklabco/mdtidy/pkg/formatter"
	"github.com/yaklabco/mdtidy/pkg/runner"
)

// fmtFlags are the flags of the fmt subcommand.
type fmtFlags struct {
	write        bool
	check        bool
	diff         bool
	stdin        bool
	fragment     bool
	cursor       int
	headingLevel int
	number       bool
	tagFences    bool
	upload       bool
	jobs         int
}

func newFmtCommand(root *rootFlags) *cobra.Command {
	flags := &fmtFlags{cursor: -1}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Format Markdown files",
		Long: `Format the given files or directories. Without --write, changed files are
reported but left untouched. With --stdin the document is read from standard
input and the result written to standard output; --cursor additionally tracks
a byte offset through all edits and reports the remapped value on stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(root, flags)
			if err != nil {
				return err
			}
			if flags.stdin {
				return runStdin(cmd, cfg, flags)
			}
			return runFiles(cmd, cfg, root, flags, args)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite changed files in place")
	cmd.Flags().BoolVar(&flags.check, "check", false, "exit non-zero when files would change")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print diffs instead of rewriting")
	cmd.Flags().BoolVar(&flags.stdin, "stdin", false, "format standard input to standard output")
	cmd.Flags().BoolVar(&flags.fragment, "fragment", false,
		"treat stdin as a document fragment, preserving its trailing-newline shape")
	cmd.Flags().IntVar(&flags.cursor, "cursor", -1,
		"track this byte offset through formatting and report it on stderr (stdin mode)")
	cmd.Flags().IntVar(&flags.headingLevel, "heading-level", 0,
		"shift headings so the shallowest sits at this level (0 disables)")
	cmd.Flags().BoolVar(&flags.number, "number-headings", false, "number headings with dotted counters")
	cmd.Flags().BoolVar(&flags.tagFences, "tag-fences", false, "tag unlabeled code fences with a detected language")
	cmd.Flags().BoolVar(&flags.upload, "upload", false, "upload local and foreign images to object storage")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of concurrent workers (0 = auto)")

	return cmd
}

// resolveConfig loads the config file and overlays CLI flags.
func resolveConfig(root *rootFlags, flags *fmtFlags) (*config.Config, error) {
	loaded, err := configloader.Load(configloader.LoadOptions{ExplicitPath: root.configPath})
	if err != nil {
		return nil, err
	}
	cfg := loaded.Config
	if loaded.LoadedFrom != "" {
		logging.Default().Debug("loaded config", logging.FieldPath, loaded.LoadedFrom)
	}

	if flags.headingLevel > 0 {
		cfg.HeadingStartLevel = flags.headingLevel
	}
	if flags.number {
		cfg.NumberHeadings = true
	}
	if flags.tagFences {
		cfg.TagFences = true
	}
	if flags.upload {
		cfg.Upload.Enabled = true
	}
	cfg.Write = flags.write
	cfg.Check = flags.check
	cfg.Diff = flags.diff
	return cfg, nil
}

// runStdin formats one document from stdin. This is the editor-integration
// path: the remapped cursor is the whole point.
func runStdin(cmd *cobra.Command, cfg *config.Config, flags *fmtFlags) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	text := string(data)

	f, err := formatter.New(cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if flags.fragment {
		out, err := f.FormatSelection(ctx, text)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if flags.cursor >= 0 {
		res, err := f.FormatWithCursor(ctx, text, flags.cursor)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), res.Text)
		fmt.Fprintf(cmd.ErrOrStderr(), "cursor=%d\n", res.Cursor)
		return nil
	}

	res, err := f.Format(ctx, text)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), res.Text)
	return nil
}

// runFiles formats files on disk via the runner.
func runFiles(cmd *cobra.Command, cfg *config.Config, root *rootFlags, flags *fmtFlags, paths []string) error {
	f, err := formatter.New(cfg)
	if err != nil {
		return err
	}

	res, err := runner.New(f).Run(cmd.Context(), runner.Options{
		Paths:  paths,
		Jobs:   flags.jobs,
		Config: cfg,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, os.Stdout))

	for _, file := range res.Files {
		switch {
		case file.Error != nil:
			logging.Default().Error("format failed",
				logging.FieldPath, file.Path, logging.FieldError, file.Error)
		case file.Changed && cfg.Diff:
			pretty.WriteDiff(out, styles, file.Path, file.Original, file.Formatted)
		case file.Changed && !cfg.Write:
			fmt.Fprintln(out, styles.FilePath.Render(file.Path))
		}
	}

	pretty.WriteSummary(out, styles, res, cfg.Write)

	if res.HasErrors() {
		return fmt.Errorf("%d files failed", res.Stats.FilesErrored)
	}
	if cfg.Check && res.HasChanges() {
		return ErrWouldChange
	}
	return nil
}
