package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the Gemini Enterprise console URL",
	Long:  longURL,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := newManager()

		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			return err
		}

		url, err := manager.ConsoleURL()

		if err != nil {
			fmt.Println(errorStyle.Render("Cannot generate URL: " + err.Error()))
			return err
		}

		fmt.Println(warnStyle.Render("Gemini Enterprise UI URL:"))
		fmt.Println(url)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)
}

var longURL = `
Print the Gemini Enterprise console URL for the configured app. Pure
formatting from local configuration, no network call.

Examples:
  agentlink url
`
