package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/midbel/foxlang"
	"github.com/midbel/foxlang/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "foxlang",
	Short: "foxlang - a small FoxPro flavoured scripting language",
	Long: `foxlang parses and evaluates scripts written in a small FoxPro
flavoured language: LOCAL/PUBLIC variables, IF blocks, functions and closures.

Configuration is read from --config, then from the FOXLANG_CONFIG
environment variable. YAML and TOML files are supported.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml or toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func newSession() (*foxlang.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return foxlang.NewSession(cfg, os.Stderr)
}

// openInput gives the file named in args or stdin when none is given or the
// name is "-".
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
}
