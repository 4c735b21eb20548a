// Command goedn is a thin CLI front end over the goedn reader: parse a
// file (or stdin) and print a one-line summary of the top-level value, or
// re-parse on every save with --watch. Parsing a data notation file is out
// of this module's scope as a *library* concern (spec.md §1); this binary
// exists only as a manual smoke-test harness, grounded on the teacher's
// cobra root-command shape (cli/main.go).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/DotFox/goedn"
)

func main() {
	var (
		watch        bool
		enableRatio  bool
		enableOctal  bool
		enableMeta   bool
		enableUscore bool
	)

	rootCmd := &cobra.Command{
		Use:           "goedn [file]",
		Short:         "Parse a data-notation file and print its top-level value",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			opts := edn.NewOptions(
				edn.WithRatio(enableRatio),
				edn.WithOctal(enableOctal),
				edn.WithMetadata(enableMeta),
				edn.WithUnderscoreDigitGroups(enableUscore),
			)
			if err := parseAndReport(path, opts); err != nil {
				return err
			}
			if watch && path != "" {
				return watchAndReparse(path, opts)
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&watch, "watch", false, "re-parse the file on every save")
	rootCmd.Flags().BoolVar(&enableRatio, "ratio", false, "enable a/b ratio literals")
	rootCmd.Flags().BoolVar(&enableOctal, "octal", false, "enable 0NNN octal literals")
	rootCmd.Flags().BoolVar(&enableMeta, "metadata", false, "enable ^metadata forms")
	rootCmd.Flags().BoolVar(&enableUscore, "underscore", false, "enable 1_000 digit grouping")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "goedn:", err)
		os.Exit(1)
	}
}

func parseAndReport(path string, opts edn.Options) error {
	src, err := readInput(path)
	if err != nil {
		return err
	}
	v, perr := edn.ReadWithOptions(src, opts)
	if perr != nil {
		return fmt.Errorf("%s: %w", describePath(path), perr)
	}
	fmt.Printf("%s: %s\n", describePath(path), v.Kind())
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func describePath(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}

// watchAndReparse re-runs parseAndReport every time path changes on disk,
// grounded on the teacher's preference for explicit Watcher lifecycles
// (vault/executor's Close() pattern) rather than a bare polling loop.
func watchAndReparse(path string, opts edn.Options) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(path); err != nil {
		return err
	}
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := parseAndReport(path, opts); err != nil {
					fmt.Fprintln(os.Stderr, "goedn:", err)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "goedn: watch error:", err)
		}
	}
}
