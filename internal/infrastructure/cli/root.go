// Package cli wires the cobra command surface.
package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kneto/nlcmd/internal/app"
	"github.com/kneto/nlcmd/internal/domain"
	"github.com/kneto/nlcmd/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	DryRun  bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.TranslateService.Prompter = NewPrompter(nil, nil)
	container.TranslateService.Clipboard = NewClipboard()

	var (
		dryRun         bool
		autoConfirm    bool
		nonInteractive bool
		interactive    bool
		plain          bool
		copyCmd        bool
		debug          bool
	)

	root := &cobra.Command{
		Use:   "nlcmd [phrase]",
		Short: "nlcmd - natural language for the command prompt",
		Long:  "nlcmd translates plain-English phrases into CMD commands, with a confirmation gate for destructive ones.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				container.EnableDebug()
			}
			renderer := NewRenderer(cmd.OutOrStdout(), plain || container.Config.Preferences.PlainOutput)

			if interactive {
				repl := NewRepl(container, renderer, ReplOptions{
					DryRun:         dryRun || opts.DryRun,
					AutoConfirm:    autoConfirm,
					NonInteractive: nonInteractive,
					Copy:           copyCmd,
				})
				return repl.Run(cmd.Context())
			}

			if len(args) == 0 {
				return cmd.Help()
			}

			req := domain.TranslateRequest{
				Context:         cmd.Context(),
				Phrase:          strings.Join(args, " "),
				DryRun:          dryRun || opts.DryRun,
				AutoConfirm:     autoConfirm,
				NonInteractive:  nonInteractive,
				CopyToClipboard: copyCmd,
			}
			resp, err := container.TranslateService.Run(req)
			renderer.RenderResponse(resp)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show the resolved command without executing it")
	root.Flags().BoolVarP(&autoConfirm, "yes", "y", false, "Execute destructive commands without confirmation")
	root.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; reject destructive commands")
	root.Flags().BoolVarP(&interactive, "interactive", "i", false, "Start interactive mode")
	root.Flags().BoolVar(&plain, "plain", false, "Plain text output without decoration")
	root.Flags().BoolVarP(&copyCmd, "copy", "c", false, "Copy generated command to clipboard")
	root.Flags().BoolVar(&debug, "debug", false, "Log each pattern attempted while matching (same as NLCMD_DEBUG)")

	root.AddCommand(commands.NewPatternsCommand(container))
	root.AddCommand(commands.NewStatsCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	return root, nil
}
