package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modelops/llmadmin/internal/store"
	"github.com/modelops/llmadmin/pkg/api"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage platform users",
}

var (
	userFilterName string
	userFilterRole string
	userFilterDept string
)

// userFilter assembles the current list filter from the flags. Mutations
// pass the same filter back so the refreshed list keeps the view the
// operator was on.
func userFilter() store.UserFilter {
	return store.UserFilter{
		Name:         userFilterName,
		Role:         userFilterRole,
		DepartmentID: userFilterDept,
	}
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users, optionally filtered by name, role, or department",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.FetchUsers(userFilter()); err != nil {
			return err
		}
		renderUsers(s.Users())
		return nil
	},
}

func renderUsers(users []api.User) {
	if jsonOutput {
		printJSON(users)
		return
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.ID, u.Name, u.Email, u.Role, yesNo(u.IsActive), orDash(u.DepartmentName),
		})
	}
	printTable([]string{"id", "name", "email", "role", "active", "department"}, rows)
}

var (
	userName  string
	userEmail string
	userRole  string
	userDept  string
)

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if userRole != "" && !api.ValidRole(userRole) {
			return fmt.Errorf("unknown role %q", userRole)
		}
		req := api.CreateUserRequest{
			UserName:     userName,
			UserEmail:    userEmail,
			Role:         userRole,
			DepartmentID: userDept,
		}
		s := newStore()
		if err := s.CreateUser(req, userFilter()); err != nil {
			return err
		}
		okLabel.Printf("User %s created\n", userName)
		renderUsers(s.Users())
		return nil
	},
}

var userActive string

var usersUpdateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if userRole != "" && !api.ValidRole(userRole) {
			return fmt.Errorf("unknown role %q", userRole)
		}
		req := api.UpdateUserRequest{
			UserName:     userName,
			UserEmail:    userEmail,
			Role:         userRole,
			IsActive:     userActive,
			DepartmentID: userDept,
		}
		s := newStore()
		if err := s.UpdateUser(args[0], req, userFilter()); err != nil {
			return err
		}
		okLabel.Printf("User %s updated\n", args[0])
		renderUsers(s.Users())
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Delete user " + args[0] + "?") {
			return nil
		}
		s := newStore()
		if err := s.DeleteUser(args[0], userFilter()); err != nil {
			return err
		}
		okLabel.Printf("User %s deleted\n", args[0])
		renderUsers(s.Users())
		return nil
	},
}

var usersStoppedCmd = &cobra.Command{
	Use:   "stopped",
	Short: "List users whose sessions are in the stopped state",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.FetchDashboardStats(); err != nil {
			return err
		}
		stats := s.Dashboard()
		if stats == nil {
			return nil
		}
		issues := make([]api.LiveIssue, 0)
		for _, i := range stats.LiveIssues {
			if i.Status == api.SessionStopped {
				issues = append(issues, i)
			}
		}
		if jsonOutput {
			printJSON(issues)
			return nil
		}
		rows := make([][]string, 0, len(issues))
		for _, i := range issues {
			rows = append(rows, []string{i.UserID, i.UserName, orDash(i.DepartmentName)})
		}
		printTable([]string{"user id", "name", "department"}, rows)
		fmt.Println(strconv.Itoa(len(issues)) + " user(s) with stopped sessions")
		return nil
	},
}

func init() {
	usersCmd.PersistentFlags().StringVar(&userFilterName, "filter-name", "", "Filter users by name")
	usersCmd.PersistentFlags().StringVar(&userFilterRole, "filter-role", "", "Filter users by role")
	usersCmd.PersistentFlags().StringVar(&userFilterDept, "department", "", "Scope to a department ID")

	for _, c := range []*cobra.Command{usersCreateCmd, usersUpdateCmd} {
		c.Flags().StringVar(&userName, "name", "", "User name")
		c.Flags().StringVar(&userEmail, "email", "", "User email")
		c.Flags().StringVar(&userRole, "role", "", "User role")
		c.Flags().StringVar(&userDept, "dept", "", "Department ID")
	}
	usersUpdateCmd.Flags().StringVar(&userActive, "active", "Y", "Active flag (Y or N)")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	usersCmd.AddCommand(usersStoppedCmd)
	rootCmd.AddCommand(usersCmd)
}
