package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

func newOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the analytics overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !manager.IsAuthenticated() {
				return fmt.Errorf("not logged in, run 'chatctl login' first")
			}

			ov, err := client.AnalyticsOverview(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch overview: %w", err)
			}

			fmt.Printf("Users:     %d total, %d active\n", ov.Users.Total, ov.Users.Active)
			fmt.Printf("Documents: %d total, %d processed\n", ov.Documents.Total, ov.Documents.Processed)
			fmt.Printf("Queries:   %d total, %d via langchain\n", ov.Queries.Total, ov.Queries.Langchain)

			if len(ov.RecentDocuments) > 0 {
				fmt.Println("\nRecent documents:")
				for _, d := range ov.RecentDocuments {
					fmt.Printf("  - %s (%s, %s)\n",
						d.Filename, model.FormatFileSize(d.FileSize), model.FormatRelativeTime(d.UploadedAt))
				}
			}
			if len(ov.RecentQueries) > 0 {
				fmt.Println("\nRecent queries:")
				for _, q := range ov.RecentQueries {
					fmt.Printf("  - %q (%s, %s)\n",
						q.Question, q.ModeUsed, model.FormatRelativeTime(q.CreatedAt))
				}
			}
			return nil
		},
	}
}
