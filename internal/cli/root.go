package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/backend"
	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/logging"
	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/session"
)

var (
	flagServer      string
	flagCredentials string
	flagDebug       bool
	flagLogLevel    string
	flagLogFormat   string

	logger  *slog.Logger
	client  *backend.Client
	manager *session.Manager
)

// sessionTokens defers token lookup to the manager, which is built after
// the client during command setup.
type sessionTokens struct{}

func (sessionTokens) Token() string {
	if manager == nil {
		return ""
	}
	return manager.Token()
}

// defaultServer returns the default backend URL, checking BACKEND_URL env var first.
func defaultServer() string {
	if s := os.Getenv("BACKEND_URL"); s != "" {
		return s
	}
	return "http://127.0.0.1:8001"
}

// NewRootCmd creates the root cobra command for the chatctl CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chatctl",
		Short: "chatctl — college chatbot admin CLI",
		Long:  "chatctl manages sessions, documents, and analytics of the college multilingual chatbot backend.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(logging.ParseLevel(flagLogLevel), flagLogFormat)

			store, err := session.NewFileStore(flagCredentials)
			if err != nil {
				return fmt.Errorf("open credential store: %w", err)
			}
			client = backend.New(flagServer, logger, backend.WithTokenSource(sessionTokens{}))
			manager = session.NewManager(client, store, logger)
			manager.Restore()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if client != nil {
				client.Close()
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "Chatbot backend URL (or BACKEND_URL env)")
	root.PersistentFlags().StringVar(&flagCredentials, "credentials", "", "Credentials file (default ~/.chatportal/credentials.json)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newRegisterCmd(),
		newChatCmd(),
		newOverviewCmd(),
		newDocsCmd(),
		newUploadCmd(),
		newQueriesCmd(),
		newUsersCmd(),
		newHealthCmd(),
	)

	return root
}
