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

// NewGroupsCommand creates the groups command group
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group"},
		Short:   "Manage user groups",
		Long:    "List and manage user groups (administrator only)",
	}

	cmd.AddCommand(newGroupsListCommand())
	cmd.AddCommand(newGroupsGetCommand())
	cmd.AddCommand(newGroupsCreateCommand())
	cmd.AddCommand(newGroupsUpdateCommand())
	cmd.AddCommand(newGroupsDeleteCommand())

	return cmd
}

func newGroupsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List user groups",
		RunE: func(cmd *cobra.Command, args []string) error {
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
				groups []testrail.Group
				page   *testrail.GroupPage
			)

			if allPages {
				groups, err = client.Groups().Iterate(ctx, opts).All()
			} else {
				page, err = client.Groups().List(ctx, opts)
				if page != nil {
					groups = page.Groups
				}
			}

			if err != nil {
				if testrail.IsForbidden(err) {
					fmt.Fprintln(os.Stderr, "Listing groups requires administrator access")
				}

				return fmt.Errorf("failed to list groups: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(groups)
			case OutputFormatYAML:
				return renderYAML(groups)
			default:
				if len(groups) == 0 {
					fmt.Println("No groups found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Members")

				for _, group := range groups {
					_ = table.Append(
						strconv.FormatInt(group.ID, 10),
						group.Name,
						strconv.Itoa(len(group.UserIDs)),
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

func newGroupsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get GROUP_ID",
		Short: "Get group details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			group, err := client.Groups().Get(context.Background(), groupID)
			if err != nil {
				return fmt.Errorf("failed to get group: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(group)
			case OutputFormatYAML:
				return renderYAML(group)
			default:
				fmt.Printf("Group: %s (ID: %d)\n", group.Name, group.ID)
				fmt.Printf("  Members: %s\n", formatUserIDs(group.UserIDs))
			}

			return nil
		},
	}
}

func newGroupsCreateCommand() *cobra.Command {
	var (
		name    string
		userIDs []int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user group",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &testrail.GroupRequest{
				Name: testrail.String(name),
			}

			if cmd.Flags().Changed("user") {
				request.UserIDs = userIDs
			}

			group, err := client.Groups().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create group: %w", err)
			}

			fmt.Printf("Created group '%s' (ID: %d)\n", group.Name, group.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "group name (required)")
	cmd.Flags().Int64SliceVar(&userIDs, "user", nil, "member user id (repeatable)")

	return cmd
}

func newGroupsUpdateCommand() *cobra.Command {
	var (
		name    string
		userIDs []int64
	)

	cmd := &cobra.Command{
		Use:   "update GROUP_ID",
		Short: "Update a user group",
		Long:  "Update a user group. Only the supplied fields are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &testrail.GroupRequest{}

			if cmd.Flags().Changed("name") {
				request.Name = testrail.String(name)
			}

			if cmd.Flags().Changed("user") {
				request.UserIDs = userIDs
			}

			group, err := client.Groups().Update(context.Background(), groupID, request)
			if err != nil {
				return fmt.Errorf("failed to update group: %w", err)
			}

			fmt.Printf("Updated group '%s' (ID: %d)\n", group.Name, group.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new group name")
	cmd.Flags().Int64SliceVar(&userIDs, "user", nil, "member user id (repeatable, replaces the member list)")

	return cmd
}

func newGroupsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete GROUP_ID",
		Short: "Delete a user group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Really delete group %d? (y/N): ", groupID)

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

			err = client.Groups().Delete(context.Background(), groupID)
			if err != nil {
				return fmt.Errorf("failed to delete group: %w", err)
			}

			fmt.Printf("Deleted group %d\n", groupID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func formatUserIDs(ids []int64) string {
	if len(ids) == 0 {
		return "(none)"
	}

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}

	return strings.Join(parts, ", ")
}
