package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   appName,
		Short: "Encrypt and decrypt with classical pen-and-paper ciphers.",
		Long: `oldcrypto-cli runs the historical ciphers of the oldcrypto library:
Caesar, Playfair, Chaocipher, Wheatstone, Polybius squares, straddling
checkerboards, transpositions, ADFGVX, Nihilist, VIC and Solitaire.

None of these ciphers is secure. Use them for study and puzzles only.`,
		Version:       oldcrypto.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			a.initLogger(cmd.ErrOrStderr())
			if used := a.v.ConfigFileUsed(); used != "" {
				a.log.Debug("using config file", "path", used)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.oldcrypto.yaml)")
	pf.String("recipes-dir", "", "directory holding saved recipes (default is $HOME/.oldcrypto/recipes)")
	pf.Bool("verbose", false, "log debug information to stderr")

	root.AddCommand(
		a.newCipherCmd(true),
		a.newCipherCmd(false),
		a.newListCmd(),
		a.newKeygenCmd(),
		a.newRecipeCmd(),
		a.newBenchCmd(),
		a.newVersionCmd(),
	)
	return root
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".oldcrypto")
	}

	a.v.SetEnvPrefix("OLDCRYPTO")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func (a *app) initLogger(w io.Writer) {
	level := slog.LevelWarn
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (a *app) recipesDir() string {
	if dir := a.v.GetString("recipes-dir"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".oldcrypto", "recipes")
	}
	return filepath.Join(home, ".oldcrypto", "recipes")
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, oldcrypto.Version)
		},
	}
}
