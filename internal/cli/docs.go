package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

func newDocsCmd() *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "List knowledge-base documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !manager.IsAuthenticated() {
				return fmt.Errorf("not logged in, run 'chatctl login' first")
			}

			page, err := client.Documents(cmd.Context(), skip, limit)
			if err != nil {
				return fmt.Errorf("list documents: %w", err)
			}

			if len(page.Documents) == 0 {
				fmt.Println("No documents found.")
				return nil
			}

			fmt.Printf("%-30s  %-8s  %-10s  %-10s  %s\n", "FILENAME", "TYPE", "SIZE", "PROCESSED", "UPLOADED")
			for _, d := range page.Documents {
				processed := "no"
				if d.IsProcessed {
					processed = "yes"
				}
				fmt.Printf("%-30s  %-8s  %-10s  %-10s  %s\n",
					d.Filename, d.FileType, model.FormatFileSize(d.FileSize),
					processed, model.FormatRelativeTime(d.UploadedAt))
			}

			if page.Total > skip+len(page.Documents) {
				fmt.Printf("\n(%d of %d shown)\n", len(page.Documents), page.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Number of documents to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum documents to list")
	return cmd
}

func newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a document to the knowledge base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !manager.IsAuthenticated() {
				return fmt.Errorf("not logged in, run 'chatctl login' first")
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			resp, err := client.UploadDocument(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return fmt.Errorf("upload: %w", err)
			}

			fmt.Printf("Uploaded %s: %s\n", filepath.Base(args[0]), resp.Message)
			return nil
		},
	}
}

func newQueriesCmd() *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "queries",
		Short: "List recent chatbot queries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !manager.IsAuthenticated() {
				return fmt.Errorf("not logged in, run 'chatctl login' first")
			}

			page, err := client.Queries(cmd.Context(), skip, limit)
			if err != nil {
				return fmt.Errorf("list queries: %w", err)
			}

			if len(page.Queries) == 0 {
				fmt.Println("No queries found.")
				return nil
			}

			for _, q := range page.Queries {
				fmt.Printf("[%s] %s (%s)\n", model.FormatRelativeTime(q.CreatedAt), q.Question, q.ModeUsed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Number of queries to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum queries to list")
	return cmd
}

func newUsersCmd() *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List registered users (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !manager.IsAuthenticated() {
				return fmt.Errorf("not logged in, run 'chatctl login' first")
			}

			page, err := client.Users(cmd.Context(), skip, limit)
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}

			if len(page.Users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			fmt.Printf("%-20s  %-30s  %-10s  %s\n", "USERNAME", "EMAIL", "ROLE", "ACTIVE")
			for _, u := range page.Users {
				active := "no"
				if u.IsActive {
					active = "yes"
				}
				fmt.Printf("%-20s  %-30s  %-10s  %s\n", u.Username, u.Email, u.Role, active)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Number of users to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum users to list")
	return cmd
}
