package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"catlint/internal/driver"
	"catlint/internal/project"
)

// resolveDriverOptions loads the nearest catlint.toml (walking up from the
// input path) and folds it with the persistent flags into driver options.
// The returned extensions apply in directory mode.
func resolveDriverOptions(cmd *cobra.Command, inputPath string) (driver.Options, []string, error) {
	var opts driver.Options

	maxFindings, err := cmd.Root().PersistentFlags().GetInt("max-findings")
	if err != nil {
		return opts, nil, fmt.Errorf("failed to get max-findings flag: %w", err)
	}
	opts.MaxFindings = maxFindings

	startDir := inputPath
	if startDir == "-" {
		startDir = "."
	} else if st, statErr := os.Stat(startDir); statErr == nil && !st.IsDir() {
		startDir = filepath.Dir(startDir)
	}

	// nil-манифест даёт дефолты
	manifest, _, err := project.Load(startDir)
	if err != nil {
		return opts, nil, err
	}

	parserOpts, err := manifest.ParserOptions()
	if err != nil {
		return opts, nil, err
	}
	opts.ParserOpts = parserOpts

	checkCfg, err := manifest.CheckConfig()
	if err != nil {
		return opts, nil, err
	}
	opts.CheckCfg = checkCfg

	exts, err := manifest.Extensions()
	if err != nil {
		return opts, nil, err
	}
	return opts, exts, nil
}

// resolveColor interprets the persistent --color flag.
func resolveColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		// fatih/color отключает цвет вне терминала; --color on форсирует
		color.NoColor = false
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(os.Stdout), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", colorFlag)
	}
}
