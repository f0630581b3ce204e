// Package cli implements the ls command line: an optional directory path,
// listed in columns on standard output.
package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lsgrid/lsgrid"
)

// NewLogger returns the logger the command reports problems through. Only
// warnings and errors are shown.
func NewLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	return log
}

// NewCommand returns the ls command. Listings go to stdout, sized to the
// width reported by width.
func NewCommand(stdout io.Writer, width lsgrid.WidthSource, log logrus.FieldLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ls [path]",
		Short:         "List a directory in columns",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := lsgrid.DefaultDir
			if len(args) > 0 {
				path = args[0]
			}
			_, err := lsgrid.NewListing().
				WithLogger(log.WithField("path", path)).
				WithStdout(stdout).
				Dir(path).
				Visible().
				Sort().
				Sanitize(lsgrid.QuoteInvalid).
				Columns(width)
			return err
		},
	}
	cmd.SetOut(stdout)
	return cmd
}

// Main runs the command against the process's arguments, standard output and
// terminal, and returns the exit status.
func Main() int {
	log := NewLogger(os.Stderr)
	cmd := NewCommand(os.Stdout, lsgrid.TerminalWidth(os.Stdout), log)
	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}
