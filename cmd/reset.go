package cmd

import (
	"errors"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/etymquest/internal/ui/theme"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long:  "Delete the stored stats for the current profile. The activity log is kept.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return errors.New("refusing to reset without --yes")
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		if err := a.Engine.Reset(cmd.Context()); err != nil {
			return err
		}
		lipgloss.Fprintln(cmd.OutOrStdout(), theme.Subtitle.Render(fmt.Sprintf("Progress for profile %q was reset.", cfg.Profile)))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
