package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kneto/nlcmd/internal/app"
	"github.com/kneto/nlcmd/internal/domain"
)

// NewDoctorCommand runs environment diagnostics.
func NewDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check config, patterns, shell, and history store",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			out := cmd.OutOrStdout()
			for _, check := range report.Checks {
				fmt.Fprintf(out, "[%-5s] %-16s %s\n", marker(check.Status), check.Name, check.Details)
			}
			return err
		},
	}
}

func marker(status domain.HealthStatus) string {
	switch status {
	case domain.HealthOK:
		return "ok"
	case domain.HealthWarn:
		return "warn"
	default:
		return "error"
	}
}
