package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tro/internal/application/commands"
	"tro/internal/domain"
)

var closeShow bool

var closeCmd = &cobra.Command{
	Use:   "close <board> [list] [card]",
	Short: "Close (archive) a board, list or card",
	Long: `Close the most specific object named. Closed objects can be re-opened
with 'tro open'.

Examples:
  tro close work todo "fix login"
  tro close work todo --show
  tro close work`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, t, err := target(cmd, args)
		if err != nil {
			return err
		}

		closeCmd := commands.NewCloseCommand(gw, t, closeShow)
		result, err := closeCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if result.Board != nil {
			fmt.Println(domain.RenderBoard(*result.Board))
		}
		fmt.Fprintf(os.Stderr, "Closed %s: '%s'\n", result.Type, name(result.Name))
		fmt.Fprintf(os.Stderr, "id: %s\n", result.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(closeCmd)
	closeCmd.Flags().BoolVarP(&closeShow, "show", "s", false, "show the board after closing a list or card")
}
