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

// NewProjectsCommand creates the projects command group
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List and manage TestRail projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsUpdateCommand())
	cmd.AddCommand(newProjectsDeleteCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		allPages  bool
		limit     int
		offset    int
		completed bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List all projects visible to the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			opts := &testrail.ProjectListOptions{}

			if cmd.Flags().Changed("limit") {
				opts.Limit = testrail.Int(limit)
			}

			if cmd.Flags().Changed("offset") {
				opts.Offset = testrail.Int(offset)
			}

			if cmd.Flags().Changed("completed") {
				opts.IsCompleted = testrail.Bool(completed)
			}

			var (
				projects []testrail.Project
				page     *testrail.ProjectPage
			)

			if allPages {
				projects, err = client.Projects().Iterate(ctx, opts).All()
			} else {
				page, err = client.Projects().List(ctx, opts)
				if page != nil {
					projects = page.Projects
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(projects)
			case OutputFormatYAML:
				return renderYAML(projects)
			default:
				if len(projects) == 0 {
					fmt.Println("No projects found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Completed", "Suite Mode")

				for _, project := range projects {
					_ = table.Append(
						strconv.FormatInt(project.ID, 10),
						project.Name,
						yesNo(project.IsCompleted),
						strconv.Itoa(project.SuiteMode),
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
	cmd.Flags().BoolVar(&completed, "completed", false, "filter by completed state")

	return cmd
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Get project details",
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

			project, err := client.Projects().Get(context.Background(), projectID)
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(project)
			case OutputFormatYAML:
				return renderYAML(project)
			default:
				fmt.Printf("Project: %s\n", project.Name)
				fmt.Printf("  ID:         %d\n", project.ID)
				fmt.Printf("  Completed:  %t\n", project.IsCompleted)
				fmt.Printf("  Suite Mode: %d\n", project.SuiteMode)

				if project.Announcement != "" {
					fmt.Printf("  Announcement: %s\n", project.Announcement)
				}

				if project.URL != "" {
					fmt.Printf("  URL:        %s\n", project.URL)
				}
			}

			return nil
		},
	}
}

func newProjectsCreateCommand() *cobra.Command {
	var (
		name         string
		announcement string
		suiteMode    int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &testrail.ProjectRequest{
				Name: testrail.String(name),
			}

			if announcement != "" {
				request.Announcement = testrail.String(announcement)
				request.ShowAnnouncement = testrail.Bool(true)
			}

			if cmd.Flags().Changed("suite-mode") {
				request.SuiteMode = testrail.Int(suiteMode)
			}

			project, err := client.Projects().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			fmt.Printf("Created project '%s' with ID %d\n", project.Name, project.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name (required)")
	cmd.Flags().StringVar(&announcement, "announcement", "", "project announcement")
	cmd.Flags().IntVar(&suiteMode, "suite-mode", 0, "suite mode (1 single, 2 baselines, 3 multiple)")

	return cmd
}

func newProjectsUpdateCommand() *cobra.Command {
	var (
		name         string
		announcement string
		completed    bool
	)

	cmd := &cobra.Command{
		Use:   "update PROJECT_ID",
		Short: "Update a project",
		Long:  "Update a project. Only the supplied fields are sent.",
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

			request := &testrail.ProjectRequest{}

			if cmd.Flags().Changed("name") {
				request.Name = testrail.String(name)
			}

			if cmd.Flags().Changed("announcement") {
				request.Announcement = testrail.String(announcement)
			}

			if cmd.Flags().Changed("completed") {
				request.IsCompleted = testrail.Bool(completed)
			}

			project, err := client.Projects().Update(context.Background(), projectID, request)
			if err != nil {
				return fmt.Errorf("failed to update project: %w", err)
			}

			fmt.Printf("Updated project '%s'\n", project.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new project name")
	cmd.Flags().StringVar(&announcement, "announcement", "", "new announcement")
	cmd.Flags().BoolVar(&completed, "completed", false, "mark project as completed")

	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Really delete project %d and everything in it? (y/N): ", projectID)

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

			err = client.Projects().Delete(context.Background(), projectID)
			if err != nil {
				return fmt.Errorf("failed to delete project: %w", err)
			}

			fmt.Printf("Deleted project %d\n", projectID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
