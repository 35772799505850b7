package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/midbel/foxlang/fox"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate lines interactively in one session",
	Long: `Read lines from stdin and evaluate them in the same session: variables
and functions defined on a line stay visible on the next ones. Blocks can be
written over several lines. Type .quit to leave.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	var (
		out   = cmd.OutOrStdout()
		scan  = bufio.NewScanner(os.Stdin)
		block strings.Builder
	)
	fmt.Fprintln(out, mutedStyle.Render("session "+sess.ID))
	for {
		if block.Len() == 0 {
			fmt.Fprint(out, promptStyle.Render("fox> "))
		} else {
			fmt.Fprint(out, promptStyle.Render("...> "))
		}
		if !scan.Scan() {
			break
		}
		line := scan.Text()
		if block.Len() == 0 && strings.TrimSpace(line) == ".quit" {
			break
		}
		block.WriteString(line)
		block.WriteByte('\n')

		value, err := sess.RunString(block.String())
		if fox.IsIncomplete(err) {
			continue
		}
		block.Reset()
		if err != nil {
			printError(err)
			continue
		}
		if _, ok := value.(fox.Null); !ok {
			fmt.Fprintln(out, renderValue(value))
		}
	}
	fmt.Fprintln(out)
	return scan.Err()
}
