package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"catlint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "catlint",
	Short: "Consistency checker for exception catalog documents",
	Long: `catlint parses semi-structured exception/error reference documents,
builds a catalog of named entries and reports duplicates with diverging
text, missing descriptions or prevention tips, and malformed entry names`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 2.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-findings", 256, "maximum number of findings to collect per document")

	if err := rootCmd.Execute(); err != nil {
		// exit 1 is reserved for findings; tool errors exit 2
		os.Exit(2)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
