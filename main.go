// Copyright
// SPDX-License-Identifier: MIT
// docsmith: compose a Diátaxis-structured README from the terminal
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	cfg "docsmith/internal/config"
	"docsmith/internal/templates"
	appTUI "docsmith/internal/tui"
)

const Version = "0.7.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flags mirrors the root command's persistent flags.
type flags struct {
	configPath   string
	outputDir    string
	fileName     string
	templatesDir string
	logFile      string
	logLevel     string
	noColor      bool
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:   "docsmith",
		Short: "Compose a topic-structured README in the terminal",
		Long: `docsmith edits the sections of a README one topic at a time:
Project Name, Tutorials, How-To Guides, Explanation and Reference.

Topics you never edit show their template text and are left out of the saved file.

Examples:
  docsmith                         # edit ./README.md
  docsmith -o docs -f INDEX.md     # write docs/INDEX.md
  docsmith init                    # scaffold templates/ and .docsmith.yaml`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, f, true)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(c)
			if err != nil {
				return err
			}
			defer closeLog()
			logger.Info("starting", "version", Version, "output", c.OutputPath(), "templates", c.TemplatesDir)
			return appTUI.Run(c, logger)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Config file (default $DOCSMITH_CONFIG or "+cfg.DefaultPath+")")
	pf.StringVarP(&f.outputDir, "output-dir", "o", "", "Directory the document is written to")
	pf.StringVarP(&f.fileName, "file-name", "f", "", "Document file name")
	pf.StringVarP(&f.templatesDir, "templates", "t", "", "Directory with per-topic template files")
	pf.StringVar(&f.logFile, "log-file", "", "Append logs to file (created if missing)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&f.noColor, "no-color", false, "Disable colors")

	root.AddCommand(newInitCmd(&f), newVersionCmd())
	return root
}

func newInitCmd(f *flags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold template files and a sample config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, *f, false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			written, err := templates.Scaffold(c.TemplatesDir, force)
			if err != nil {
				return fmt.Errorf("scaffold templates: %w", err)
			}
			for _, p := range written {
				fmt.Fprintln(out, "Wrote", p)
			}
			if len(written) == 0 {
				fmt.Fprintln(out, "Templates in", c.TemplatesDir, "already exist; not overwriting")
			}

			path, _ := cfg.Resolve(f.configPath)
			if _, err := os.Stat(path); err == nil && !force {
				fmt.Fprintln(out, path, "already exists; not overwriting")
				return nil
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			if err := cfg.Save(path, c); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintln(out, "Wrote", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "docsmith", Version)
		},
	}
}

// loadConfig layers defaults, the config file, the environment and explicitly set flags.
// With mustExist unset a missing config file is tolerated even when named explicitly.
func loadConfig(cmd *cobra.Command, f flags, mustExist bool) (cfg.Config, error) {
	path, required := cfg.Resolve(f.configPath)
	c, err := cfg.Load(path, required && mustExist)
	if err != nil {
		return c, err
	}
	if err := c.ApplyEnv(); err != nil {
		return c, err
	}
	fl := cmd.Flags()
	if fl.Changed("output-dir") {
		c.OutputDir = f.outputDir
	}
	if fl.Changed("file-name") {
		c.FileName = f.fileName
	}
	if fl.Changed("templates") {
		c.TemplatesDir = f.templatesDir
	}
	if fl.Changed("log-file") {
		c.LogFile = f.logFile
	}
	if fl.Changed("log-level") {
		c.LogLevel = f.logLevel
	}
	if fl.Changed("no-color") {
		c.NoColor = f.noColor
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// newLogger writes to the configured log file. The terminal belongs to the UI, so
// without a file the log is discarded.
func newLogger(c cfg.Config) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if c.LogLevel != "" {
		l, err := log.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}
	f, err := openLogFile(c.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	var w io.Writer = io.Discard
	closeFn := func() {}
	if f != nil {
		w = f
		closeFn = func() { _ = f.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "docsmith",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	return logger, closeFn, nil
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(f, "=== docsmith %s started at %s ===\n", Version, time.Now().Format(time.RFC3339))
	return f, nil
}
