package cmd

import (
	"fmt"
	"os"

	"github.com/midbel/foxlang/fox"
	"github.com/spf13/cobra"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file|-]",
	Short: "Print a script in its canonical form",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openInput(args)
		if err != nil {
			return err
		}
		prog, err := fox.Parse(r)
		r.Close()
		if err != nil {
			return err
		}
		str := fox.Format(prog) + "\n"
		if fmtWrite && len(args) > 0 && args[0] != "-" {
			return os.WriteFile(args[0], []byte(str), 0o644)
		}
		fmt.Fprint(cmd.OutOrStdout(), str)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to the file instead of stdout")
}
