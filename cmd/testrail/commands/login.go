package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/autoocto/testrail-tools/pkg/trclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Login to a TestRail server",
		Long:  "Store credentials for a TestRail server after verifying them",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			serverURL := viper.GetString("url")
			if serverURL == "" {
				fmt.Print("TestRail URL: ")
				serverURL, _ = reader.ReadString('\n')
				serverURL = strings.TrimSpace(serverURL)
			}

			if serverURL == "" {
				return ErrURLRequired
			}

			email := viper.GetString("email")
			if email == "" {
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if email == "" {
				return ErrEmailRequired
			}

			apiKey := viper.GetString("api-key")
			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = string(byteKey)

				fmt.Println()
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			client, err := trclient.NewWithCredentials(serverURL, email, apiKey)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials with a cheap read-only call.
			user, err := client.Users().GetByEmail(context.Background(), email)
			if err != nil {
				return fmt.Errorf("failed to verify credentials: %w", err)
			}

			viper.Set("url", serverURL)
			viper.Set("email", email)
			viper.Set("api-key", apiKey)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Logged in to %s as %s (ID: %d)\n", serverURL, user.Name, user.ID)

			return nil
		},
	}
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("email", "")
			viper.Set("api-key", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
