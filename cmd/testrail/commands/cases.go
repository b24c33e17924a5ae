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

// NewCasesCommand creates the cases command group
func NewCasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cases",
		Aliases: []string{"case"},
		Short:   "Manage test cases",
		Long:    "List and manage test cases within a project",
	}

	cmd.AddCommand(newCasesListCommand())
	cmd.AddCommand(newCasesGetCommand())
	cmd.AddCommand(newCasesCreateCommand())
	cmd.AddCommand(newCasesUpdateCommand())
	cmd.AddCommand(newCasesDeleteCommand())

	return cmd
}

func newCasesListCommand() *cobra.Command {
	var (
		allPages  bool
		limit     int
		offset    int
		suiteID   int64
		sectionID int64
	)

	cmd := &cobra.Command{
		Use:   "list PROJECT_ID",
		Short: "List test cases",
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
			opts := &testrail.CaseListOptions{}

			if cmd.Flags().Changed("limit") {
				opts.Limit = testrail.Int(limit)
			}

			if cmd.Flags().Changed("offset") {
				opts.Offset = testrail.Int(offset)
			}

			if cmd.Flags().Changed("suite") {
				opts.SuiteID = testrail.Int64(suiteID)
			}

			if cmd.Flags().Changed("section") {
				opts.SectionID = testrail.Int64(sectionID)
			}

			var (
				cases []testrail.Case
				page  *testrail.CasePage
			)

			if allPages {
				cases, err = client.Cases().Iterate(ctx, projectID, opts).All()
			} else {
				page, err = client.Cases().List(ctx, projectID, opts)
				if page != nil {
					cases = page.Cases
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list cases: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(cases)
			case OutputFormatYAML:
				return renderYAML(cases)
			default:
				if len(cases) == 0 {
					fmt.Println("No cases found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Title", "Section", "Priority", "Estimate")

				for _, testCase := range cases {
					_ = table.Append(
						"C"+strconv.FormatInt(testCase.ID, 10),
						testCase.Title,
						strconv.FormatInt(testCase.SectionID, 10),
						strconv.FormatInt(testCase.PriorityID, 10),
						testCase.Estimate,
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
	cmd.Flags().Int64Var(&sectionID, "section", 0, "filter by section id")

	return cmd
}

func newCasesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CASE_ID",
		Short: "Get test case details",
		Long:  "Display a test case including its custom fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			testCase, err := client.Cases().Get(context.Background(), caseID)
			if err != nil {
				return fmt.Errorf("failed to get case: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(testCase)
			case OutputFormatYAML:
				return renderYAML(testCase)
			default:
				fmt.Printf("Case: C%d %s\n", testCase.ID, testCase.Title)
				fmt.Printf("  Section:  %d\n", testCase.SectionID)
				fmt.Printf("  Suite:    %d\n", testCase.SuiteID)
				fmt.Printf("  Type:     %d\n", testCase.TypeID)
				fmt.Printf("  Priority: %d\n", testCase.PriorityID)

				if testCase.Refs != "" {
					fmt.Printf("  Refs:     %s\n", testCase.Refs)
				}

				if testCase.Estimate != "" {
					fmt.Printf("  Estimate: %s\n", testCase.Estimate)
				}

				for key, value := range testCase.Custom {
					fmt.Printf("  custom_%s: %v\n", key, value)
				}
			}

			return nil
		},
	}
}

func newCasesCreateCommand() *cobra.Command {
	var (
		title      string
		typeID     int64
		priorityID int64
		refs       string
		estimate   string
	)

	cmd := &cobra.Command{
		Use:   "create SECTION_ID",
		Short: "Create a test case",
		Long:  "Create a test case under a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sectionID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if title == "" {
				return ErrTitleRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &testrail.CaseRequest{
				Title: testrail.String(title),
			}

			if cmd.Flags().Changed("type") {
				request.TypeID = testrail.Int64(typeID)
			}

			if cmd.Flags().Changed("priority") {
				request.PriorityID = testrail.Int64(priorityID)
			}

			if refs != "" {
				request.Refs = testrail.String(refs)
			}

			if estimate != "" {
				request.Estimate = testrail.String(estimate)
			}

			testCase, err := client.Cases().Create(context.Background(), sectionID, request)
			if err != nil {
				return fmt.Errorf("failed to create case: %w", err)
			}

			fmt.Printf("Created case C%d '%s'\n", testCase.ID, testCase.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "case title (required)")
	cmd.Flags().Int64Var(&typeID, "type", 0, "case type id")
	cmd.Flags().Int64Var(&priorityID, "priority", 0, "priority id")
	cmd.Flags().StringVar(&refs, "refs", "", "comma-separated references")
	cmd.Flags().StringVar(&estimate, "estimate", "", "estimate (e.g. 30s, 2m, 1h)")

	return cmd
}

func newCasesUpdateCommand() *cobra.Command {
	var (
		title      string
		typeID     int64
		priorityID int64
		refs       string
		estimate   string
	)

	cmd := &cobra.Command{
		Use:   "update CASE_ID",
		Short: "Update a test case",
		Long:  "Update a test case. Only the supplied fields are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &testrail.CaseRequest{}

			if cmd.Flags().Changed("title") {
				request.Title = testrail.String(title)
			}

			if cmd.Flags().Changed("type") {
				request.TypeID = testrail.Int64(typeID)
			}

			if cmd.Flags().Changed("priority") {
				request.PriorityID = testrail.Int64(priorityID)
			}

			if cmd.Flags().Changed("refs") {
				request.Refs = testrail.String(refs)
			}

			if cmd.Flags().Changed("estimate") {
				request.Estimate = testrail.String(estimate)
			}

			testCase, err := client.Cases().Update(context.Background(), caseID, request)
			if err != nil {
				return fmt.Errorf("failed to update case: %w", err)
			}

			fmt.Printf("Updated case C%d '%s'\n", testCase.ID, testCase.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new case title")
	cmd.Flags().Int64Var(&typeID, "type", 0, "new case type id")
	cmd.Flags().Int64Var(&priorityID, "priority", 0, "new priority id")
	cmd.Flags().StringVar(&refs, "refs", "", "new references")
	cmd.Flags().StringVar(&estimate, "estimate", "", "new estimate")

	return cmd
}

func newCasesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete CASE_ID",
		Short: "Delete a test case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Really delete case C%d? (y/N): ", caseID)

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

			err = client.Cases().Delete(context.Background(), caseID)
			if err != nil {
				return fmt.Errorf("failed to delete case: %w", err)
			}

			fmt.Printf("Deleted case C%d\n", caseID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
