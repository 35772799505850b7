package cmd

import (
	"fmt"

	"github.com/midbel/foxlang/fox"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var parseYAML bool

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Print the syntax tree of a script",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openInput(args)
		if err != nil {
			return err
		}
		defer r.Close()

		prog, err := fox.Parse(r)
		if err != nil {
			return err
		}
		if !parseYAML {
			fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", prog)
			return nil
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(fox.Tree(prog))
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseYAML, "yaml", false, "dump the tree as yaml")
}
