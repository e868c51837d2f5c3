package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BackendStack21/old-crypto-go/core"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available ciphers and their options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tOPTIONS\tDESCRIPTION")
			for _, e := range core.List() {
				opts := strings.Join(flagNames(e.Fields), " ")
				if opts == "" {
					opts = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Kind, opts, e.Description)
			}
			return tw.Flush()
		},
	}
}

// flagNames maps parameter field names to their command line flags.
func flagNames(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		switch f {
		case core.FieldMessageNumber:
			out[i] = "--msgno"
		default:
			out[i] = "--" + strings.ReplaceAll(f, "_", "-")
		}
	}
	return out
}
