package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

func newChatCmd() *cobra.Command {
	var language, mode string

	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the chatbot a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.ChatRequest{
				Message:  strings.Join(args, " "),
				Language: language,
				Mode:     model.ChatMode(mode),
			}

			resp, err := client.Chat(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("chat: %w", err)
			}

			fmt.Println(resp.Response)
			if flagDebug {
				fmt.Printf("\n[lang=%s mode=%s intent=%s confidence=%.2f]\n",
					resp.Lang, resp.ModeUsed, resp.Intent, resp.Confidence)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Question language hint (en, hi, ta)")
	cmd.Flags().StringVar(&mode, "mode", "", "Answering mode (auto, rasa, langchain)")
	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend health",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("backend unreachable: %w", err)
			}

			status, _ := info["status"].(string)
			if status == "" {
				status = "unknown"
			}
			fmt.Printf("Backend: %s (%s)\n", flagServer, status)
			return nil
		},
	}
}
