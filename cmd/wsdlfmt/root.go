package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func isUsage(err error) bool {
	var u *usageError
	return errors.As(err, &u)
}

// app holds the configuration shared by every subcommand.
type app struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr, log: zerolog.Nop()}
	var cfgFile string

	root := &cobra.Command{
		Use:           "wsdlfmt",
		Short:         "Re-serialize and inspect WSDL 1.1 documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.loadConfig(cfgFile); err != nil {
				return err
			}
			a.log = a.newLogger()
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().Bool("debug", false, "use debug level logging")
	root.PersistentFlags().Bool("pretty", true, "use console logging instead of JSON")
	cobra.CheckErr(a.v.BindPFlag("debug", root.PersistentFlags().Lookup("debug")))
	cobra.CheckErr(a.v.BindPFlag("pretty", root.PersistentFlags().Lookup("pretty")))

	root.AddCommand(a.newFmtCmd(), a.newOutlineCmd())
	return root
}

func (a *app) loadConfig(path string) error {
	a.v.SetEnvPrefix("WSDLFMT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if path == "" {
		return nil
	}
	a.v.SetConfigFile(path)
	return a.v.ReadInConfig()
}

func (a *app) newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if a.v.GetBool("debug") {
		level = zerolog.DebugLevel
	}
	var out io.Writer = a.stderr
	if a.v.GetBool("pretty") {
		out = zerolog.ConsoleWriter{Out: a.stderr, NoColor: a.stderr != os.Stderr}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
