package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"catlint/internal/check"
	"catlint/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default catlint.toml",
	Long: `Write a catlint.toml with the default section grammar and check
settings into the given directory (current directory when omitted), as a
starting point for tuning the tool to a particular document`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// runInit executes the "init" command: it resolves the target directory,
// refuses to overwrite an existing manifest, and writes the default one.
func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("already initialized: %s exists", manifestPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(manifestPath, []byte(defaultManifest()), 0o644); err != nil { // #nosec G306 -- config file, not a secret
		return fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", manifestPath)
	return nil
}

func defaultManifest() string {
	return `# catlint configuration

[catalog]
# Heading shapes that start a new entry section.
heading_styles = ["markdown", "numbered"]
# Labels that introduce the prevention tip block (case-insensitive).
tip_labels = ["prevention tip", "prevention", "how to avoid", "how to prevent", "tip", "solution", "fix"]
# Labels stripped from description prose.
description_labels = ["description", "what it is", "cause"]
# Entry names must match this pattern.
name_pattern = '` + check.DefaultNamePattern + `'

[check]
# Normalized entry names exempt from every rule.
ignore = []
# Drop the info-level finding for duplicate groups whose texts agree.
silent_agreeing_duplicates = false

[files]
# Extensions scanned in directory mode.
extensions = [".md", ".txt"]
`
}
