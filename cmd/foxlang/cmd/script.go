package cmd

import (
	"fmt"
	"io"

	"github.com/midbel/foxlang"
	"github.com/spf13/cobra"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Manage the library of stored scripts",
	Long: `Store scripts under a name and run them later. The library lives in the
bbolt file given by the store setting of the configuration.

Examples:
  foxlang script put hello hello.prg
  foxlang script list
  foxlang script run hello
  foxlang script result hello`,
}

var scriptPutCmd = &cobra.Command{
	Use:   "put <name> [file|-]",
	Short: "Store a script",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openInput(args[1:])
		if err != nil {
			return err
		}
		defer r.Close()
		src, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		return withStore(func(sess *foxlang.Session) error {
			db, err := sess.Store()
			if err != nil {
				return err
			}
			return db.Put(args[0], string(src))
		})
	},
}

var scriptGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print the source of a stored script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(sess *foxlang.Session) error {
			db, err := sess.Store()
			if err != nil {
				return err
			}
			src, err := db.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), src)
			return nil
		})
	},
}

var scriptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scripts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(sess *foxlang.Session) error {
			db, err := sess.Store()
			if err != nil {
				return err
			}
			list, err := db.List()
			if err != nil {
				return err
			}
			for _, name := range list {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		})
	},
}

var scriptRemoveCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"delete"},
	Short:   "Remove a stored script",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(sess *foxlang.Session) error {
			db, err := sess.Store()
			if err != nil {
				return err
			}
			return db.Delete(args[0])
		})
	},
}

var scriptRunCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Evaluate a stored script and record its value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(sess *foxlang.Session) error {
			value, err := sess.RunScript(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderValue(value))
			return nil
		})
	},
}

var scriptResultCmd = &cobra.Command{
	Use:   "result <name>",
	Short: "Print the value of the last run of a stored script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(sess *foxlang.Session) error {
			db, err := sess.Store()
			if err != nil {
				return err
			}
			res, err := db.LastResult(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", valueStyle.Render(res.Value), mutedStyle.Render("("+res.Type+")"))
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(fmt.Sprintf("session %s at %s", res.Session, res.When.Format("2006-01-02 15:04:05"))))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.AddCommand(scriptPutCmd, scriptGetCmd, scriptListCmd, scriptRemoveCmd, scriptRunCmd, scriptResultCmd)
}

func withStore(run func(*foxlang.Session) error) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	defer sess.Close()
	return run(sess)
}
