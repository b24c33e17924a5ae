package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/autoocto/testrail-tools/pkg/testrail"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSuitesCommand creates the suites command group
func NewSuitesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "suites",
		Aliases: []string{"suite"},
		Short:   "Manage test suites",
		Long:    "List and manage test suites within a project",
	}

	cmd.AddCommand(newSuitesListCommand())
	cmd.AddCommand(newSuitesGetCommand())
	cmd.AddCommand(newSuitesCreateCommand())
	cmd.AddCommand(newSuitesUpdateCommand())
	cmd.AddCommand(newSuitesDeleteCommand())

	return cmd
}

func newSuitesListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list PROJECT_ID",
		Short: "List suites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := &testrail.ListOptions{}

			if cmd.Flags().Changed("limit") {
				opts.Limit = testrail.Int(limit)
			}

			if cmd.Flags().Changed("offset") {
				opts.Offset = testrail.Int(offset)
			}

			var (
				suites []testrail.Suite
				page   *testrail.SuitePage
			)

			if allPages {
				suites, err = client.Suites().Iterate(ctx, projectID, opts).All()
			} else {
				page, err = client.Suites().List(ctx, projectID, opts)
				if page != nil {
					suites = page.Suites
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list suites: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(suites)
			case OutputFormatYAML:
				return renderYAML(suites)
			default:
				if len(suites) == 0 {
					fmt.Println("No suites found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Master", "Baseline", "Completed")

				for _, suite := range suites {
					_ = table.Append(
						strconv.FormatInt(suite.ID, 10),
						suite.Name,
						yesNo(suite.IsMaster),
						yesNo(suite.IsBaseline),
						yesNo(suite.IsCompleted),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if !allPages && page != nil {
					pagingHint(page.Pagination)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "start index")

	return cmd
}

func newSuitesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUITE_ID",
		Short: "Get suite details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suiteID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			suite, err := client.Suites().Get(context.Background(), suiteID)
			if err != nil {
				return fmt.Errorf("failed to get suite: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(suite)
			case OutputFormatYAML:
				return renderYAML(suite)
			default:
				fmt.Printf("Suite: %s\n", suite.Name)
				fmt.Printf("  ID:         %d\n", suite.ID)
				fmt.Printf("  Project:    %d\n", suite.ProjectID)
				fmt.Printf("  Master:     %t\n", suite.IsMaster)
				fmt.Printf("  Baseline:   %t\n", suite.IsBaseline)
				fmt.Printf("  Completed:  %t\n", suite.IsCompleted)

				if suite.Description != "" {
					fmt.Printf("  Description: %s\n", suite.Description)
				}
			}

			return nil
		},
	}
}

func newSuitesCreateCommand() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create PROJECT_ID",
		Short: "Create a suite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if name == "" {
				return ErrNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &testrail.SuiteRequest{
				Name: testrail.String(name),
			}

			if description != "" {
				request.Description = testrail.String(description)
			}

			suite, err := client.Suites().Create(context.Background(), projectID, request)
			if err != nil {
				return fmt.Errorf("failed to create suite: %w", err)
			}

			fmt.Printf("Created suite '%s' with ID %d\n", suite.Name, suite.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "suite name (required)")
	cmd.Flags().StringVar(&description, "description", "", "suite description")

	return cmd
}

func newSuitesUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update SUITE_ID",
		Short: "Update a suite",
		Long:  "Update a suite. Only the supplied fields are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suiteID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &testrail.SuiteRequest{}

			if cmd.Flags().Changed("name") {
				request.Name = testrail.String(name)
			}

			if cmd.Flags().Changed("description") {
				request.Description = testrail.String(description)
			}

			suite, err := client.Suites().Update(context.Background(), suiteID, request)
			if err != nil {
				return fmt.Errorf("failed to update suite: %w", err)
			}

			fmt.Printf("Updated suite '%s'\n", suite.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new suite name")
	cmd.Flags().StringVar(&description, "description", "", "new description")

	return cmd
}

func newSuitesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete SUITE_ID",
		Short: "Delete a suite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suiteID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Really delete suite %d and its cases? (y/N): ", suiteID)

				var confirm string

				_, _ = fmt.Scanln(&confirm)
				if confirm != "y" && confirm != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Suites().Delete(context.Background(), suiteID)
			if err != nil {
				return fmt.Errorf("failed to delete suite: %w", err)
			}

			fmt.Printf("Deleted suite %d\n", suiteID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
