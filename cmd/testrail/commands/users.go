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

// NewUsersCommand creates the users command group
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "Look up and list users on the server",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersGetByEmailCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			opts := &testrail.UserListOptions{}

			if cmd.Flags().Changed("project") {
				opts.ProjectID = testrail.Int64(projectID)
			}

			users, err := client.Users().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(users)
			case OutputFormatYAML:
				return renderYAML(users)
			default:
				if len(users) == 0 {
					fmt.Println("No users found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Email", "Active", "Admin")

				for _, user := range users {
					_ = table.Append(
						strconv.FormatInt(user.ID, 10),
						user.Name,
						user.Email,
						yesNo(user.IsActive),
						yesNo(user.IsAdmin),
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "only users with access to this project")

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get user details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(context.Background(), userID)
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return renderUser(user)
		},
	}
}

func newUsersGetByEmailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get-by-email EMAIL",
		Short: "Look up a user by email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			user, err := client.Users().GetByEmail(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return renderUser(user)
		},
	}
}

func renderUser(user *testrail.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(user)
	case OutputFormatYAML:
		return renderYAML(user)
	default:
		fmt.Printf("User: %s (ID: %d)\n", user.Name, user.ID)
		fmt.Printf("  Email:  %s\n", user.Email)
		fmt.Printf("  Active: %s\n", yesNo(user.IsActive))
		fmt.Printf("  Admin:  %s\n", yesNo(user.IsAdmin))

		if user.RoleID != 0 {
			fmt.Printf("  Role:   %s (%d)\n", user.Role, user.RoleID)
		}
	}

	return nil
}
