package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tro/internal/application/commands"
)

var openCmd = &cobra.Command{
	Use:   "open <board|list|card> <id>",
	Short: "Re-open a closed board, list or card",
	Long: `Re-open a closed object by its ID. Closed objects cannot be found by name,
so the ID is required. IDs of closed cards are shown by 'tro search'.

Examples:
  tro open card 5f1e2d3c4b5a697887766554
  tro open board 5f1e2d3c4b5a697887766553`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := GetGateway(cmd.Context())
		if err != nil {
			return err
		}

		openCmd := commands.NewOpenCommand(gw, args[0], args[1])
		result, err := openCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Opened %s: %s\n", result.Type, name(result.Name))
		fmt.Fprintf(os.Stderr, "id: %s\n", result.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
