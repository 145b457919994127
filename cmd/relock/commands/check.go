package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare the manifest against the lock snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifestPath, _ := cmd.Flags().GetString("manifest")
			lockPath, _ := cmd.Flags().GetString("lock")
			strict, _ := cmd.Flags().GetBool("strict")
			exitCode, _ := cmd.Flags().GetBool("exit-code")

			report, err := c.app.Check(cmd.Context(), app.CheckOptions{
				ManifestPath: manifestPath,
				LockPath:     lockPath,
				Strict:       strict,
			})
			if err != nil {
				return err
			}

			printReport(cmd, report)
			if exitCode && report.Any() {
				return domain.ErrChangesDetected
			}
			return nil
		},
	}
	cmd.Flags().BoolP("strict", "s", false, "Test version constraints exactly as declared (reject locked pre-releases)")
	cmd.Flags().BoolP("exit-code", "e", false, "Exit with status 1 when changes are detected")
	return cmd
}

func printReport(cmd *cobra.Command, report *domain.ChangeReport) {
	if !report.Any() && len(report.Packages()) == 0 && len(report.RemoteFiles()) == 0 {
		cmd.Println("lock snapshot is up to date")
		return
	}

	for _, gp := range report.Packages() {
		line := fmt.Sprintf("package  %s/%s", gp.Group, gp.Package)
		if pv, ok := report.Preferred(gp); ok {
			line += fmt.Sprintf(" (was %s)", pv.Version)
		}
		cmd.Println(line)
	}
	for _, gr := range report.RemoteFiles() {
		cmd.Println(fmt.Sprintf("remote   %s/%s", gr.Group, gr.Ref.Name))
	}
}
