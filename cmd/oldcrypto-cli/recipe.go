package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/core"
	"github.com/BackendStack21/old-crypto-go/recipe"
)

func (a *app) newRecipeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Manage saved cipher chains",
		Long: `Recipes are named chains of cipher stages stored as YAML files in the
recipes directory. Encrypt runs the stages in order, decrypt in reverse.`,
	}
	cmd.AddCommand(
		a.newRecipeSaveCmd(),
		a.newRecipeListCmd(),
		a.newRecipeShowCmd(),
		a.newRecipeDeleteCmd(),
	)
	return cmd
}

func (a *app) store() (*recipe.Store, error) {
	s := recipe.NewStore(a.recipesDir())
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *app) newRecipeSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the cipher options as a recipe stage",
		Long: `Save the cipher given by the cipher options as a one stage recipe, or
append it as a new last stage with --append.`,
		Example: fmt.Sprintf(`  %[1]s recipe save field --cipher square --key PORTABLE --coords ADFGVX
  %[1]s recipe save field --append --cipher transposition --key SUBWAY`, appName),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.params()
			if err != nil {
				return err
			}
			s, err := a.store()
			if err != nil {
				return err
			}

			r := &recipe.Recipe{Name: args[0]}
			if a.v.GetBool("append") {
				old, ok := s.Get(args[0])
				if !ok {
					return fmt.Errorf("%w: no recipe named %q to append to", oldcrypto.ErrInvalidConfiguration, args[0])
				}
				cp := *old
				cp.Stages = append(append([]core.Params(nil), old.Stages...), p)
				r = &cp
			} else {
				r.Stages = append(r.Stages, p)
			}
			if cmd.Flags().Changed("description") {
				r.Description = a.v.GetString("description")
			}
			if cmd.Flags().Changed("tags") {
				r.Tags = a.v.GetStringSlice("tags")
			}

			if err := s.Save(r); err != nil {
				return err
			}
			a.log.Debug("recipe saved", "name", r.Name, "id", r.ID, "stages", len(r.Stages), "dir", s.Dir())
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d stage(s))\n", r.Name, len(r.Stages))
			return nil
		},
	}
	f := cmd.Flags()
	addCipherFlags(f)
	f.Bool("append", false, "append a stage to an existing recipe")
	f.String("description", "", "free text description")
	f.StringSlice("tags", nil, "comma separated tags")
	return cmd
}

func (a *app) newRecipeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSTAGES\tTAGS\tUPDATED")
			for _, r := range s.List() {
				names := make([]string, len(r.Stages))
				for i, st := range r.Stages {
					names[i] = st.Cipher
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, strings.Join(names, ">"), strings.Join(r.Tags, ","), r.UpdatedAt)
			}
			return tw.Flush()
		},
	}
}

func (a *app) newRecipeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a recipe as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}
			r, ok := s.Get(args[0])
			if !ok {
				return fmt.Errorf("%w: no recipe named %q", oldcrypto.ErrInvalidConfiguration, args[0])
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(r); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func (a *app) newRecipeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}
			if _, ok := s.Get(args[0]); !ok {
				return fmt.Errorf("%w: no recipe named %q", oldcrypto.ErrInvalidConfiguration, args[0])
			}
			if err := s.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
