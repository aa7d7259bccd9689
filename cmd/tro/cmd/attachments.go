package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tro/internal/application/commands"
	"tro/internal/domain"
)

var attachmentsCmd = &cobra.Command{
	Use:   "attachments <board> <list> <card>",
	Short: "List the attachment URLs of a card",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, t, err := target(cmd, args)
		if err != nil {
			return err
		}

		attachments, err := commands.NewAttachmentsCommand(gw, t).Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, a := range attachments {
			fmt.Println(a.URL)
		}
		return nil
	},
}

var attachCmd = &cobra.Command{
	Use:   "attach <path> <board> <list> <card>",
	Short: "Upload a file to a card",
	Long: `Upload a local file as an attachment of a card.

Examples:
  tro attach ./screenshot.png work todo "fix login"`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, t, err := target(cmd, args[1:])
		if err != nil {
			return err
		}

		attachment, err := commands.NewAttachCommand(gw, t, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(domain.RenderAttachment(*attachment))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(attachmentsCmd)
	rootCmd.AddCommand(attachCmd)
}
