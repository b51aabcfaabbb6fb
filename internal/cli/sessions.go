package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modelops/llmadmin/internal/store"
	"github.com/modelops/llmadmin/pkg/api"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Monitor and manage usage sessions",
}

var (
	sessionFilterUser    string
	sessionFilterProject string
	sessionFilterType    string
	sessionFilterStatus  string
)

func sessionFilter() (store.SessionFilter, error) {
	filter := store.SessionFilter{
		UserName:    sessionFilterUser,
		ProjectName: sessionFilterProject,
	}
	if sessionFilterType != "" {
		t, err := api.ParseSessionType(sessionFilterType)
		if err != nil {
			return filter, err
		}
		filter.Type = t
	}
	if sessionFilterStatus != "" {
		st, err := api.ParseSessionStatus(sessionFilterStatus)
		if err != nil {
			return filter, err
		}
		filter.Status = st
	}
	return filter, nil
}

var sessionsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search sessions by user, project, type, or status",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := sessionFilter()
		if err != nil {
			return err
		}
		s := newStore()
		if err := s.FetchSessions(filter); err != nil {
			return err
		}
		renderSessions(s.Sessions())
		return nil
	},
}

var sessionsByProjectCmd = &cobra.Command{
	Use:   "by-project <project-id>",
	Short: "List sessions belonging to a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.FetchSessionsByProject(args[0]); err != nil {
			return err
		}
		renderSessions(s.Sessions())
		return nil
	},
}

func renderSessions(sessions []api.Session) {
	if jsonOutput {
		printJSON(sessions)
		return
	}
	rows := make([][]string, 0, len(sessions))
	for _, sess := range sessions {
		rows = append(rows, []string{
			sess.SessionID,
			string(sess.SessionType),
			string(sess.Status),
			orDash(sess.UserName),
			orDash(sess.ProjectName),
			sess.StartTime,
			orDash(sess.EndTime),
		})
	}
	printTable([]string{"id", "type", "status", "user", "project", "start", "end"}, rows)
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session",
	Long: `Delete a session. The session is removed from the listed results in
place; the current search is not re-run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Delete session " + args[0] + "?") {
			return nil
		}
		s := newStore()
		filter, err := sessionFilter()
		if err != nil {
			return err
		}
		if err := s.FetchSessions(filter); err != nil {
			return err
		}
		if err := s.DeleteSession(args[0]); err != nil {
			return err
		}
		okLabel.Printf("Session %s deleted\n", args[0])
		renderSessions(s.Sessions())
		return nil
	},
}

var sessionsLogsCmd = &cobra.Command{
	Use:   "logs <session-id>",
	Short: "List the request/response logs of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.FetchSessionLogs(args[0]); err != nil {
			return err
		}
		renderSessionLogs(s.SessionLogs())
		return nil
	},
}

// renderSessionLogs prints each log entry as a request/response row pair:
// the user's prompt path with its request time, then the model's response
// path with its response time. Server, config, and token columns apply to
// the exchange as a whole and appear on the request row only.
func renderSessionLogs(logs []api.SessionLog) {
	if jsonOutput {
		printJSON(logs)
		return
	}
	printTable([]string{"seq", "side", "path", "server", "config", "time", "tokens"}, sessionLogRows(logs))
}

func sessionLogRows(logs []api.SessionLog) [][]string {
	rows := make([][]string, 0, 2*len(logs))
	for _, l := range logs {
		rows = append(rows, []string{
			strconv.Itoa(l.LogSequence),
			"user",
			l.RequestPromptS3Path,
			orDash(l.DeploymentServer),
			logConfig(l),
			l.RequestTime,
			strconv.Itoa(l.TokenUsed),
		})
		rows = append(rows, []string{
			"",
			"system",
			l.ResponseS3Path,
			"",
			"",
			l.ResponseTime,
			"",
		})
	}
	return rows
}

// logConfig formats the generation config snapshot, substituting the
// platform defaults for fields the backend left unset.
func logConfig(l api.SessionLog) string {
	temp, maxTokens, topP, topK := 1.0, 4096, 0.8, 50
	if l.ConfigTemperature != nil {
		temp = *l.ConfigTemperature
	}
	if l.ConfigMaxTokens != nil {
		maxTokens = *l.ConfigMaxTokens
	}
	if l.ConfigTopP != nil {
		topP = *l.ConfigTopP
	}
	if l.ConfigTopK != nil {
		topK = *l.ConfigTopK
	}
	return fmt.Sprintf("temp=%g max=%d top_p=%g top_k=%d", temp, maxTokens, topP, topK)
}

var sessionsDeleteLogCmd = &cobra.Command{
	Use:   "delete-log <session-id> <log-sequence>",
	Short: "Delete one log entry of a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("log sequence must be a number: %q", args[1])
		}
		if !confirm(fmt.Sprintf("Delete log %d of session %s?", seq, args[0])) {
			return nil
		}
		s := newStore()
		if err := s.FetchSessionLogs(args[0]); err != nil {
			return err
		}
		if err := s.DeleteSessionLog(args[0], seq); err != nil {
			return err
		}
		okLabel.Printf("Log %d of session %s deleted\n", seq, args[0])
		renderSessionLogs(s.SessionLogs())
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{sessionsSearchCmd, sessionsDeleteCmd} {
		c.Flags().StringVar(&sessionFilterUser, "user", "", "Filter by user name")
		c.Flags().StringVar(&sessionFilterProject, "project", "", "Filter by project name")
		c.Flags().StringVar(&sessionFilterType, "type", "", "Filter by session type")
		c.Flags().StringVar(&sessionFilterStatus, "status", "", "Filter by session status")
	}

	sessionsCmd.AddCommand(sessionsSearchCmd)
	sessionsCmd.AddCommand(sessionsByProjectCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
	sessionsCmd.AddCommand(sessionsLogsCmd)
	sessionsCmd.AddCommand(sessionsDeleteLogCmd)
	rootCmd.AddCommand(sessionsCmd)
}
