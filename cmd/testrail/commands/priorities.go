package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewPrioritiesCommand creates the priorities command group
func NewPrioritiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "priorities",
		Aliases: []string{"priority"},
		Short:   "Manage case priorities",
	}

	cmd.AddCommand(newPrioritiesListCommand())

	return cmd
}

func newPrioritiesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List case priorities",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			priorities, err := client.Priorities().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list priorities: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(priorities)
			case OutputFormatYAML:
				return renderYAML(priorities)
			default:
				if len(priorities) == 0 {
					fmt.Println("No priorities found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Short Name", "Rank", "Default")

				for _, priority := range priorities {
					_ = table.Append(
						strconv.FormatInt(priority.ID, 10),
						priority.Name,
						priority.ShortName,
						strconv.Itoa(priority.Priority),
						yesNo(priority.IsDefault),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
