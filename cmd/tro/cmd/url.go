package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tro/internal/adapters/clipboard"
	"tro/internal/application/commands"
	"tro/internal/ports"
)

var urlCopy bool

var urlCmd = &cobra.Command{
	Use:   "url <board> [list] [card]",
	Short: "Print the web URL of a board or card",
	Long: `Print the web URL of a card, or of a board. Lists have no page of their
own, so naming a list prints its board's URL.

Examples:
  tro url work
  tro url work todo "fix login" --copy`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, t, err := target(cmd, args)
		if err != nil {
			return err
		}

		var cb ports.Clipboard
		if urlCopy {
			sys := clipboard.System{}
			if !sys.Available() {
				return fmt.Errorf("no clipboard utility available")
			}
			cb = sys
		}

		url, err := commands.NewURLCommand(cb, t, urlCopy).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(url)
		if urlCopy {
			fmt.Fprintln(os.Stderr, "Copied to clipboard")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)
	urlCmd.Flags().BoolVarP(&urlCopy, "copy", "c", false, "copy the URL to the clipboard")
}
