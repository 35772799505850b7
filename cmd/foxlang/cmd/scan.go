package cmd

import (
	"fmt"

	"github.com/midbel/foxlang/fox"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [file|-]",
	Short: "Print the tokens of a script",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openInput(args)
		if err != nil {
			return err
		}
		defer r.Close()

		scan, err := fox.Scan(r)
		if err != nil {
			return err
		}
		for {
			tok, err := scan.Scan()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mutedStyle.Render(tok.Position.String()), tok)
			if tok.Type == fox.EOF {
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
