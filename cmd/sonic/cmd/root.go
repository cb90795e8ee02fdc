package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sonic",
	Short: "Sonic lexical analyzer",
	Long: `sonic is a standalone scanner for the Sonic language grammar.

It tokenizes source text into the closed set of token kinds the grammar
defines — identifiers and keywords, the four numeric literal kinds, static
and interpolated strings, operators and punctuation — and reports the
first lexical error encountered, with no recovery.

This command only covers lexical analysis: there is no parser, no AST, and
no semantic analysis behind it.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
