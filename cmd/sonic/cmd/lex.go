package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/soniclang/sonic/internal/diagnostic"
	"github.com/soniclang/sonic/internal/lexer"
	"github.com/soniclang/sonic/pkg/token"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Sonic file or expression",
	Long: `Tokenize (lex) a Sonic program and print the resulting tokens.

This command is useful for debugging the scanner and understanding how
Sonic source code is tokenized.

Examples:
  # Tokenize a script file
  sonic lex script.sonic

  # Tokenize an inline expression
  sonic lex -e "let x = 42"

  # Show token kinds and positions
  sonic lex --show-type --show-pos script.sonic`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token kind names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "suppress token output, report only the lexical error")
}

func lexScript(cmd *cobra.Command, args []string) error {
	var input string
	var filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	tokens, err := lexer.Lex(input)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			fmt.Fprintln(os.Stderr, diagnostic.New(lexErr, input, filename).Format(true))
		}
		return err
	}

	if !onlyErrors {
		for _, tok := range tokens {
			printToken(tok, input)
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(tokens))
	}

	return nil
}

func printToken(tok token.Token, source string) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-25s]", tok.Kind)
	}
	output += fmt.Sprintf(" %q", tok.Content)

	if showPos {
		line, col := diagnostic.LineCol(source, tok.Pos)
		output += fmt.Sprintf(" @%d:%d", line, col)
	}

	fmt.Println(output)
}
