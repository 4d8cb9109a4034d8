package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

func newLoginCmd() *cobra.Command {
	var email, password, googleToken string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the chatbot backend",
		Long:  "Authenticate with email and password, or with a Google ID token, and store the session locally.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if googleToken != "" {
				user, err := manager.LoginWithGoogle(cmd.Context(), googleToken)
				if err != nil {
					return err
				}
				fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Role)
				return nil
			}

			if email == "" {
				line, err := prompt("Email: ")
				if err != nil {
					return err
				}
				email = line
			}
			if password == "" {
				line, err := prompt("Password: ")
				if err != nil {
					return err
				}
				password = line
			}

			user, err := manager.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	cmd.Flags().StringVar(&googleToken, "google-token", "", "Google ID token for OAuth login")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager.Logout()
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := manager.User()
			if user == nil {
				fmt.Println("Not logged in.")
				return nil
			}
			fmt.Printf("Username: %s\n", user.Username)
			fmt.Printf("Email:    %s\n", user.Email)
			fmt.Printf("Role:     %s\n", user.Role)
			if user.FullName != "" {
				fmt.Printf("Name:     %s\n", user.FullName)
			}
			return nil
		},
	}
}

func newRegisterCmd() *cobra.Command {
	var username, email, password, fullName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  "Register a new account on the chatbot backend. Registration does not log you in.",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := manager.Register(cmd.Context(), model.RegisterRequest{
				Username: username,
				Email:    email,
				Password: password,
				FullName: fullName,
			})
			if err != nil {
				return err
			}
			fmt.Println(resp.Message)
			fmt.Println("Run 'chatctl login' to sign in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Full name")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
