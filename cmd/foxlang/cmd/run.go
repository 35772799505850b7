package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var runExec string

var runCmd = &cobra.Command{
	Use:   "run [file|-]",
	Short: "Evaluate a script and print its value",
	Long: `Evaluate a script read from a file, from stdin or given with -e and
print the value it produces.

Examples:
  foxlang run script.prg
  echo 'RETURN "ab" * 3' | foxlang run
  foxlang run -e 'LOCAL x = 20; RETURN x + 1'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runExec, "exec", "e", "", "script to evaluate")
}

func runScript(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	var r io.Reader
	if runExec != "" {
		if len(args) > 0 {
			return fmt.Errorf("file and -e can not be given together")
		}
		r = strings.NewReader(runExec)
	} else {
		rc, err := openInput(args)
		if err != nil {
			return err
		}
		defer rc.Close()
		r = rc
	}
	value, err := sess.Run(r)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderValue(value))
	return nil
}
