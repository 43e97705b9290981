// Package commands holds the cobra subcommands.
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kneto/nlcmd/internal/app"
	"github.com/kneto/nlcmd/internal/domain"
)

// NewPatternsCommand creates the discovery surface: every registered
// pattern grouped by category, in matching order.
func NewPatternsCommand(container *app.Container) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List every phrase nlcmd recognizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPatterns(cmd.OutOrStdout(), container, category)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only show one category")
	return cmd
}

func listPatterns(out io.Writer, container *app.Container, only string) error {
	grouped := container.Registry.ByCategory()

	for _, category := range domain.Categories() {
		if only != "" && string(category) != only {
			continue
		}
		patterns := grouped[category]
		if len(patterns) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s:\n", category)
		for _, p := range patterns {
			marker := " "
			if !p.Safe {
				marker = "!"
			}
			fmt.Fprintf(out, "  %s [%3d] %-28s e.g. %q\n", marker, p.Priority, p.Description, p.Example)
		}
		fmt.Fprintln(out)
	}

	if only != "" {
		if _, known := grouped[domain.Category(only)]; !known {
			return fmt.Errorf("unknown category %q", only)
		}
	}
	fmt.Fprintln(out, "Patterns marked ! are destructive and require confirmation.")
	return nil
}
