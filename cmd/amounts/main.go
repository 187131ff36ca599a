// Command amounts evaluates token amount expressions and checks config files
// of them.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "amounts:", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	logLevel string
	debug    bool
	logFile  string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:           "amounts",
		Short:         "Evaluate token amount expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.setupLogging(cmd); err != nil {
				return err
			}
			logrus.Debugf("Called %s.PersistentPreRunE(%s)", cmd.Name(), strings.Join(args, " "))
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log messages above specified level (trace, debug, info, warn, error, fatal, panic)")
	pf.BoolVar(&opts.debug, "debug", false, "shorthand for --log-level=debug with timestamps")
	pf.StringVar(&opts.logFile, "log-file", "", "also write log records to `file`")

	cmd.AddCommand(newIntCmd(), newDecimalCmd(), newCheckCmd())
	return cmd
}

func (o *rootOptions) setupLogging(cmd *cobra.Command) error {
	logrus.SetOutput(cmd.ErrOrStderr())
	level := o.logLevel
	if o.debug {
		level = "debug"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: !o.debug,
		FullTimestamp:    o.debug,
	})
	if o.logFile != "" {
		hook, err := newFileHook(o.logFile)
		if err != nil {
			return err
		}
		logrus.AddHook(hook)
	}
	if logrus.IsLevelEnabled(logrus.InfoLevel) {
		logrus.Infof("filtering at log level %s", logrus.GetLevel())
	}
	return nil
}

// fileHook copies log records to a file as JSON.
type fileHook struct {
	f   *os.File
	fmt logrus.Formatter
}

func newFileHook(path string) (*fileHook, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return &fileHook{f: f, fmt: &logrus.JSONFormatter{}}, nil
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileHook) Fire(e *logrus.Entry) error {
	b, err := h.fmt.Format(e)
	if err != nil {
		return err
	}
	_, err = h.f.Write(b)
	return err
}
