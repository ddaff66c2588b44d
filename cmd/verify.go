package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the Gemini Enterprise registration",
	Long:  longVerify,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.SetLevel(log.InfoLevel)

		manager, err := newManager()

		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			return err
		}

		agent, err := manager.Verify(cmd.Context())

		if err != nil {
			fmt.Println(errorStyle.Render("Verification failed: " + err.Error()))
			return err
		}

		fmt.Println(successStyle.Render("Agent verified successfully!"))
		fmt.Println(detailStyle.Render("Display Name: " + agent.DisplayName))
		fmt.Println(detailStyle.Render("Description:  " + agent.Description))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var longVerify = `
Fetch the registry record of the linked agent and report its display
name and description. Read-only; local state is never modified.

Examples:
  agentlink verify
  agentlink verify --env-file deploy/.env
`
