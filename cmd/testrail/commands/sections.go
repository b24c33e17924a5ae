package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/autoocto/testrail-tools/pkg/testrail"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSectionsCommand creates the sections command group
func NewSectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sections",
		Aliases: []string{"section"},
		Short:   "Manage sections",
		Long:    "List and manage sections within a suite",
	}

	cmd.AddCommand(newSectionsListCommand())
	cmd.AddCommand(newSectionsGetCommand())
	cmd.AddCommand(newSectionsCreateCommand())
	cmd.AddCommand(newSectionsUpdateCommand())
	cmd.AddCommand(newSectionsDeleteCommand())

	return cmd
}

func newSectionsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		offset   int
		suiteID  int64
	)

	cmd := &cobra.Command{
		Use:   "list PROJECT_ID",
		Short: "List sections",
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
			opts := &testrail.SectionListOptions{}

			if cmd.Flags().Changed("limit") {
				opts.Limit = testrail.Int(limit)
			}

			if cmd.Flags().Changed("offset") {
				opts.Offset = testrail.Int(offset)
			}

			if cmd.Flags().Changed("suite") {
				opts.SuiteID = testrail.Int64(suiteID)
			}

			var (
				sections []testrail.Section
				page     *testrail.SectionPage
			)

			if allPages {
				sections, err = client.Sections().Iterate(ctx, projectID, opts).All()
			} else {
				page, err = client.Sections().List(ctx, projectID, opts)
				if page != nil {
					sections = page.Sections
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list sections: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(sections)
			case OutputFormatYAML:
				return renderYAML(sections)
			default:
				if len(sections) == 0 {
					fmt.Println("No sections found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Suite", "Depth")

				for _, section := range sections {
					indent := strings.Repeat("  ", section.Depth)
					_ = table.Append(
						strconv.FormatInt(section.ID, 10),
						indent+section.Name,
						strconv.FormatInt(section.SuiteID, 10),
						strconv.Itoa(section.Depth),
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
	cmd.Flags().Int64Var(&suiteID, "suite", 0, "filter by suite id")

	return cmd
}

func newSectionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SECTION_ID",
		Short: "Get section details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sectionID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			section, err := client.Sections().Get(context.Background(), sectionID)
			if err != nil {
				return fmt.Errorf("failed to get section: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(section)
			case OutputFormatYAML:
				return renderYAML(section)
			default:
				fmt.Printf("Section: %s\n", section.Name)
				fmt.Printf("  ID:    %d\n", section.ID)
				fmt.Printf("  Suite: %d\n", section.SuiteID)
				fmt.Printf("  Depth: %d\n", section.Depth)

				if section.ParentID != nil {
					fmt.Printf("  Parent: %d\n", *section.ParentID)
				}

				if section.Description != "" {
					fmt.Printf("  Description: %s\n", section.Description)
				}
			}

			return nil
		},
	}
}

func newSectionsCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		suiteID     int64
		parentID    int64
	)

	cmd := &cobra.Command{
		Use:   "create PROJECT_ID",
		Short: "Create a section",
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

			request := &testrail.SectionRequest{
				Name: testrail.String(name),
			}

			if description != "" {
				request.Description = testrail.String(description)
			}

			if cmd.Flags().Changed("suite") {
				request.SuiteID = testrail.Int64(suiteID)
			}

			if cmd.Flags().Changed("parent") {
				request.ParentID = testrail.Int64(parentID)
			}

			section, err := client.Sections().Create(context.Background(), projectID, request)
			if err != nil {
				return fmt.Errorf("failed to create section: %w", err)
			}

			fmt.Printf("Created section '%s' with ID %d\n", section.Name, section.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "section name (required)")
	cmd.Flags().StringVar(&description, "description", "", "section description")
	cmd.Flags().Int64Var(&suiteID, "suite", 0, "suite id (required for multi-suite projects)")
	cmd.Flags().Int64Var(&parentID, "parent", 0, "parent section id")

	return cmd
}

func newSectionsUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update SECTION_ID",
		Short: "Update a section",
		Long:  "Update a section. Only the supplied fields are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sectionID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &testrail.SectionRequest{}

			if cmd.Flags().Changed("name") {
				request.Name = testrail.String(name)
			}

			if cmd.Flags().Changed("description") {
				request.Description = testrail.String(description)
			}

			section, err := client.Sections().Update(context.Background(), sectionID, request)
			if err != nil {
				return fmt.Errorf("failed to update section: %w", err)
			}

			fmt.Printf("Updated section '%s'\n", section.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new section name")
	cmd.Flags().StringVar(&description, "description", "", "new description")

	return cmd
}

func newSectionsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete SECTION_ID",
		Short: "Delete a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sectionID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Really delete section %d and its cases? (y/N): ", sectionID)

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

			err = client.Sections().Delete(context.Background(), sectionID)
			if err != nil {
				return fmt.Errorf("failed to delete section: %w", err)
			}

			fmt.Printf("Deleted section %d\n", sectionID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
