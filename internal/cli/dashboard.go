package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modelops/llmadmin/pkg/api"
)

var powerUserMin int

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the operations dashboard",
	Long: `Show the operations dashboard: deployment status, GPU usage by
environment, idle model count, user role distribution, projects per
department, key stakeholders, high-cost sessions, power users, and users
whose sessions are currently in an error or stopped state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.FetchDashboardStats(); err != nil {
			return err
		}
		if powerUserMin > 0 {
			if err := s.RefreshPowerUsers(powerUserMin); err != nil {
				return err
			}
		}
		stats := s.Dashboard()
		if stats == nil {
			return nil
		}
		if jsonOutput {
			printJSON(stats)
			return nil
		}
		renderDashboard(stats)
		return nil
	},
}

func renderDashboard(stats *api.DashboardStats) {
	fmt.Println("Deployment status")
	rows := make([][]string, 0, len(stats.DeploymentStatus))
	for _, r := range stats.DeploymentStatus {
		rows = append(rows, []string{r.Status, strconv.Itoa(r.Count)})
	}
	printTable([]string{"status", "count"}, rows)

	fmt.Println("\nGPU usage by environment")
	rows = rows[:0]
	for _, r := range stats.GPUUsage {
		rows = append(rows, []string{
			r.Environment,
			fmt.Sprintf("%.1f", r.AvgGPU),
			strconv.Itoa(r.DeploymentCount),
		})
	}
	printTable([]string{"environment", "avg gpus", "deployments"}, rows)

	fmt.Printf("\nIdle models: %d\n", stats.IdleModelsCount)

	fmt.Println("\nUser roles")
	rows = rows[:0]
	for _, r := range stats.RoleDistribution {
		rows = append(rows, []string{r.Role, strconv.Itoa(r.Count)})
	}
	printTable([]string{"role", "count"}, rows)

	fmt.Println("\nProjects per department")
	rows = rows[:0]
	for _, r := range stats.ProjectsByDept {
		rows = append(rows, []string{r.DepartmentName, strconv.Itoa(r.ProjectCount)})
	}
	printTable([]string{"department", "projects"}, rows)

	fmt.Println("\nStakeholders")
	rows = rows[:0]
	for _, r := range stats.Stakeholders {
		rows = append(rows, []string{r.UserID, r.UserName, r.Role, orDash(r.DepartmentName)})
	}
	printTable([]string{"user id", "name", "role", "department"}, rows)

	fmt.Println("\nHigh-cost sessions")
	rows = rows[:0]
	for _, r := range stats.HighCostSessions {
		rows = append(rows, []string{
			r.SessionID, orDash(r.UserName), strconv.Itoa(r.TokenUsed), r.RequestTime,
		})
	}
	printTable([]string{"session", "user", "tokens", "requested"}, rows)

	fmt.Println("\nPower users")
	rows = rows[:0]
	for _, r := range stats.PowerUsers {
		rows = append(rows, []string{r.UserID, r.UserName, strconv.Itoa(r.SessionCount)})
	}
	printTable([]string{"user id", "name", "sessions"}, rows)

	fmt.Println("\nLive issues")
	rows = rows[:0]
	for _, r := range stats.LiveIssues {
		rows = append(rows, []string{
			r.UserID, r.UserName, orDash(r.DepartmentName), string(r.Status),
		})
	}
	printTable([]string{"user id", "name", "department", "status"}, rows)

	fmt.Println("\nDrill down:")
	fmt.Println("  llmadmin sessions search --user <name> --status 오류")
	fmt.Println("  llmadmin users list --filter-role <role>")
	fmt.Println("  llmadmin deployments list --model <model-id>")
}

func init() {
	dashboardCmd.Flags().IntVar(&powerUserMin, "power-user-min", 0, "Re-query power users with this minimum session count")
	rootCmd.AddCommand(dashboardCmd)
}
