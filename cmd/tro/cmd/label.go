package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tro/internal/adapters/tui/styles"
	"tro/internal/application/commands"
)

var labelDelete bool

var labelCmd = &cobra.Command{
	Use:   "label <label> <board> <list> <card>",
	Short: "Apply a label to a card, or remove it",
	Long: `Apply one of the board's labels to a card. The label is matched by name
like boards, lists and cards.

Examples:
  tro label bug work todo "fix login"
  tro label bug work todo "fix login" --delete`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, t, err := target(cmd, args[1:])
		if err != nil {
			return err
		}

		labelCmd := commands.NewLabelCommand(gw, t, args[0], labelDelete, ignoreCase)
		result, err := labelCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		result.Card.Name = name(result.Card.Name)
		fmt.Fprintln(os.Stderr, result.Message(styles.Label(result.Label.Name, result.Label.Color)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(labelCmd)
	labelCmd.Flags().BoolVarP(&labelDelete, "delete", "d", false, "remove the label instead of applying it")
}
