package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	forceFlag bool

	unlinkCmd = &cobra.Command{
		Use:   "unlink",
		Short: "Remove the Gemini Enterprise registration",
		Long:  longUnlink,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetLevel(log.InfoLevel)

			manager, err := newManager()

			if err != nil {
				fmt.Println(errorStyle.Render(err.Error()))
				return err
			}

			if err = manager.Unlink(cmd.Context(), forceFlag); err != nil {
				fmt.Println(errorStyle.Render("Unlink failed: " + err.Error()))
				return err
			}

			fmt.Println(successStyle.Render("Agent unlinked."))

			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(unlinkCmd)

	unlinkCmd.Flags().BoolVar(&forceFlag, "force", false, "Skip the confirmation prompt")
}

var longUnlink = `
Delete the Gemini Enterprise registration of the linked agent and clear
the recorded agent id. Unlinking when nothing is linked is a no-op.

Examples:
  # Unlink after confirming interactively.
  agentlink unlink

  # Unlink without a prompt, for scripted teardown.
  agentlink unlink --force
`
