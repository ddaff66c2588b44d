package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mapsmcp/agentlink/pkg/agentspace"
)

var (
	displayNameFlag     string
	descriptionFlag     string
	toolDescriptionFlag string

	linkCmd = &cobra.Command{
		Use:   "link",
		Short: "Link the deployed agent engine to Gemini Enterprise",
		Long:  longLink,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetLevel(log.InfoLevel)

			manager, err := newManager()

			if err != nil {
				fmt.Println(errorStyle.Render(err.Error()))
				return err
			}

			result, err := manager.Link(cmd.Context(), agentspace.LinkOverrides{
				DisplayName:     displayNameFlag,
				Description:     descriptionFlag,
				ToolDescription: toolDescriptionFlag,
			})

			if err != nil {
				fmt.Println(errorStyle.Render("Link failed: " + err.Error()))
				return err
			}

			fmt.Println(successStyle.Render("Agent linked successfully!"))
			fmt.Println(detailStyle.Render("Agent Name: " + result.AgentName))
			fmt.Println(detailStyle.Render("Agent ID:   " + result.AgentID))

			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(linkCmd)

	linkCmd.Flags().StringVar(&displayNameFlag, "display-name", "", "Display name for the agent")
	linkCmd.Flags().StringVar(&descriptionFlag, "description", "", "Description of the agent")
	linkCmd.Flags().StringVar(&toolDescriptionFlag, "tool-description", "", "Tool description shown to the assistant")
}

var longLink = `
Register the deployed agent engine with Gemini Enterprise and record
the assigned agent id in the env file. Fails if an agent id is already
recorded; unlink first to re-link.

Examples:
  # Link with the configured display name and description.
  agentlink link

  # Link with a custom display name, reading state from a specific env file.
  agentlink link --display-name "Maps Assistant" --env-file deploy/.env
`
