package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tro/internal/adapters/tui/styles"
	"tro/internal/application/commands"
	"tro/internal/domain"
)

var searchPartial bool

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search cards and boards",
	Long: `Search Trello for cards and boards. Closed cards are included and marked,
so their IDs can be passed to 'tro open'.

Examples:
  tro search login
  tro search "is:open label:bug"
  tro search logi --partial`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := GetGateway(cmd.Context())
		if err != nil {
			return err
		}

		searchCmd := commands.NewSearchCommand(gw, strings.Join(args, " "), searchPartial)
		results, err := searchCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(results.Cards) == 0 && len(results.Boards) == 0 {
			fmt.Println("No results found")
			return nil
		}

		if len(results.Cards) > 0 {
			fmt.Println(domain.Heading("Cards", "-"))
			for _, c := range results.Cards {
				state := ""
				if c.Closed {
					state = styles.Closed.Render("[Closed]")
				}
				fmt.Printf("'%s' id: %s %s\n", name(c.Name), c.ID, state)
			}
			fmt.Println()
		}

		if len(results.Boards) > 0 {
			fmt.Println(domain.Heading("Boards", "-"))
			for _, b := range results.Boards {
				fmt.Printf("'%s' id: %s\n", name(b.Name), b.ID)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVarP(&searchPartial, "partial", "p", false, "match query words as prefixes")
}
