package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"json-diff/core/logger"
	"json-diff/core/reconcile"
	"json-diff/core/source"
	"json-diff/feature/diff"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	msgInvalidFiles = "One or both files are not valid arrays of objects or their schemas do not match."
	msgNotUnique    = "The unique identifier is not unique in one or both files."
	msgInvalidInput = "Invalid input or error processing files."
)

// ErrInvalidSelection is returned when a file selection is not a listed
// file name or a number within the listing.
var ErrInvalidSelection = errors.New("invalid selection")

type diffOptions struct {
	fileA      string
	fileB      string
	identifier string
	detail     bool
	asJSON     bool
	noColor    bool
	pause      bool
	logFile    string
}

var diffOpts diffOptions

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare two files interactively",
	Long: `Lists the files of the source, asks for the two files to compare and the
identifier key, then prints the rows found on one side only and the fields
that differ between matched rows. Every message is also written to the run log.

Flags answer the prompts ahead of time, which makes the command scriptable:
  json-diff diff --dir ./exports --a users_old.json --b users_new.json --id id`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		logPath := diffOpts.logFile
		if logPath == "" {
			logPath = e.cfg.Log.File
		}
		runLog, err := logger.OpenRunLog(logPath)
		if err != nil {
			return err
		}
		defer runLog.Close()

		svc := diff.NewService(e.source, e.logger)
		s := &diffSession{
			svc:     svc,
			opts:    diffOpts,
			in:      bufio.NewReader(cmd.InOrStdin()),
			out:     cmd.OutOrStdout(),
			prompts: cmd.OutOrStdout(),
			log:     runLog.Logger,
			logPath: runLog.Path(),
		}
		if diffOpts.asJSON {
			// Keep stdout a single JSON document.
			s.prompts = cmd.ErrOrStderr()
		}
		return s.run(cmd.Context())
	},
}

func init() {
	f := diffCmd.Flags()
	f.StringVar(&diffOpts.fileA, "a", "", "First file, by name or listing number")
	f.StringVar(&diffOpts.fileB, "b", "", "Second file, by name or listing number")
	f.StringVar(&diffOpts.identifier, "id", "", "Key used as the unique identifier")
	f.BoolVar(&diffOpts.detail, "detail", false, "Print the changes inside every differing field")
	f.BoolVar(&diffOpts.asJSON, "json", false, "Print the result as JSON instead of the text report")
	f.BoolVar(&diffOpts.noColor, "no-color", false, "Disable colored output")
	f.BoolVar(&diffOpts.pause, "pause", false, "Wait for Enter before exiting")
	f.StringVar(&diffOpts.logFile, "log-file", "", "Run log path (default from LOG_FILE)")
	RootCmd.AddCommand(diffCmd)
}

// diffSession is one run of the interactive comparison.
type diffSession struct {
	svc     *diff.Service
	opts    diffOptions
	in      *bufio.Reader
	out     io.Writer
	prompts io.Writer
	log     *zap.Logger
	logPath string
}

func (s *diffSession) run(ctx context.Context) error {
	rep := diff.NewReporter(s.out, s.log,
		diff.WithColor(!s.opts.noColor && !s.opts.asJSON),
		diff.WithDetail(s.opts.detail),
	)
	err := s.compare(ctx, rep)
	if s.opts.pause {
		s.prompt("Press any key to exit.")
	}
	return err
}

func (s *diffSession) compare(ctx context.Context, rep *diff.Reporter) error {
	if !s.opts.asJSON {
		s.banner()
	}

	files, err := s.svc.Files(ctx)
	if err != nil {
		rep.Error(err.Error())
		return err
	}
	if !s.opts.asJSON {
		fmt.Fprintln(s.out, "JSON files found:")
		for i, f := range files {
			fmt.Fprintf(s.out, "%d. %s\n", i+1, f)
		}
	}

	nameA, err := s.choose(files, s.opts.fileA, "Enter the number of the first file to diff: ")
	if err != nil {
		return s.invalidInput(err)
	}
	nameB, err := s.choose(files, s.opts.fileB, "Enter the number of the second file to diff: ")
	if err != nil {
		return s.invalidInput(err)
	}

	a, b, err := s.svc.LoadPair(ctx, nameA, nameB)
	if err != nil {
		if isInvalidFile(err) {
			rep.Error(msgInvalidFiles)
		} else {
			rep.Error(err.Error())
		}
		return err
	}

	identifier := s.opts.identifier
	if identifier == "" {
		fmt.Fprintf(s.prompts, "Keys in the JSON objects: %v\n", []string(a.Schema()))
		identifier = s.prompt("Enter the key to use as the unique identifier: ")
	}

	report, err := s.svc.Compare(a, b, identifier, s.opts.detail)
	if err != nil {
		if errors.Is(err, reconcile.ErrNotUnique) {
			rep.Error(msgNotUnique)
		} else {
			rep.Error(err.Error())
		}
		return err
	}

	if s.opts.asJSON {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		logReport(s.log, report)
		return nil
	}

	rep.Report(report)
	fmt.Fprintf(s.out, "Differences have been logged to %s\n", s.logPath)
	return nil
}

func (s *diffSession) banner() {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "Welcome to the JSON Diff Tool!")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "This program compares two JSON files.")
	fmt.Fprintln(s.out, "The JSON files must contain arrays of objects with identical keys.")
	fmt.Fprintln(s.out, "You will be asked to select two files and a unique identifier key.")
	fmt.Fprintln(s.out, "The program will output:")
	fmt.Fprintln(s.out, "  - Unique identifiers of rows in the first file not in the second.")
	fmt.Fprintln(s.out, "  - Unique identifiers of rows in the second file not in the first.")
	fmt.Fprintln(s.out, "  - Attributes with discrepancies between the common rows.")
	fmt.Fprintln(s.out, "Ensure your JSON files are correctly formatted to avoid errors.")
	fmt.Fprintln(s.out, rule)

	src := s.svc.Source()
	if dir, ok := src.(interface{ Path() string }); ok {
		path, err := filepath.Abs(dir.Path())
		if err != nil {
			path = dir.Path()
		}
		fmt.Fprintf(s.out, "Working in directory: %s\n", path)
	} else {
		fmt.Fprintf(s.out, "Reading from %s source\n", src.Kind())
	}
}

// choose resolves a flag value, or asks for a number when none was given.
func (s *diffSession) choose(files []string, preset, question string) (string, error) {
	if preset != "" {
		return resolveSelection(files, preset)
	}
	return resolveSelection(files, s.prompt(question))
}

// prompt prints question and returns the next input line, trimmed.
func (s *diffSession) prompt(question string) string {
	fmt.Fprint(s.prompts, question)
	line, _ := s.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (s *diffSession) invalidInput(err error) error {
	s.log.Error(msgInvalidInput)
	fmt.Fprintf(s.prompts, "Error: %v\n", err)
	return err
}

// resolveSelection maps a listed name or a 1-based listing number to a name.
func resolveSelection(files []string, choice string) (string, error) {
	choice = strings.TrimSpace(choice)
	for _, f := range files {
		if f == choice {
			return f, nil
		}
	}

	n, err := strconv.Atoi(choice)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, choice)
	}
	if n < 1 || n > len(files) {
		return "", fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidSelection, n, len(files))
	}
	return files[n-1], nil
}

func isInvalidFile(err error) bool {
	return errors.Is(err, reconcile.ErrMalformedJSON) ||
		errors.Is(err, reconcile.ErrMalformedStructure) ||
		errors.Is(err, reconcile.ErrSchemaMismatch) ||
		errors.Is(err, source.ErrNotFound)
}

// logReport mirrors a JSON report into the run log as one entry.
func logReport(l *zap.Logger, report *diff.Report) {
	l.Info("Comparison finished",
		zap.String("file_a", report.FileA),
		zap.String("file_b", report.FileB),
		zap.Int("only_in_a", len(report.OnlyInA)),
		zap.Int("only_in_b", len(report.OnlyInB)),
		zap.Int("discrepancies", len(report.Discrepancies)),
	)
}
