package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modelops/llmadmin/internal/common/httpclient"
	"github.com/modelops/llmadmin/pkg/api"
)

var departmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "Manage departments and their project membership",
}

var departmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List departments with their managers and projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.FetchDepartments(); err != nil {
			return err
		}
		renderDepartments(s.Departments())
		return nil
	},
}

func renderDepartments(departments []api.Department) {
	if jsonOutput {
		printJSON(departments)
		return
	}
	rows := make([][]string, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []string{
			d.ID, d.Name, d.Manager, strconv.Itoa(len(d.Projects)),
		})
	}
	printTable([]string{"id", "name", "manager", "projects"}, rows)
}

var departmentsShowCmd = &cobra.Command{
	Use:   "show <department-id>",
	Short: "Show one department with its members and projects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.FetchDepartments(); err != nil {
			return err
		}
		for _, d := range s.Departments() {
			if d.ID != args[0] {
				continue
			}
			// A missing member list still renders the department.
			_ = s.FetchDepartmentUsers(d.ID)
			members := s.DepartmentUsers()
			if jsonOutput {
				printJSON(map[string]any{
					"department": d,
					"members":    members,
				})
				return nil
			}
			printKV([][2]string{
				{"id", d.ID},
				{"name", d.Name},
				{"manager", d.Manager},
			})
			rows := make([][]string, 0, len(members))
			for _, u := range members {
				rows = append(rows, []string{u.ID, u.Name, u.Role, yesNo(u.IsActive)})
			}
			printTable([]string{"member id", "name", "role", "active"}, rows)
			rows = rows[:0]
			for _, p := range d.Projects {
				rows = append(rows, []string{p.ID, p.Name, orDash(p.Description)})
			}
			printTable([]string{"project id", "name", "description"}, rows)
			return nil
		}
		return errors.New("department not found: " + args[0])
	},
}

var (
	departmentName    string
	departmentManager string
)

var departmentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new department",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.CreateDepartment(api.CreateDepartmentRequest{DepartmentName: departmentName}); err != nil {
			return err
		}
		okLabel.Printf("Department %s created\n", departmentName)
		renderDepartments(s.Departments())
		return nil
	},
}

var departmentsUpdateCmd = &cobra.Command{
	Use:   "update <department-id>",
	Short: "Rename a department",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.UpdateDepartment(args[0], departmentName, departmentManager); err != nil {
			return err
		}
		okLabel.Printf("Department %s updated\n", args[0])
		renderDepartments(s.Departments())
		return nil
	},
}

var departmentsDeleteCmd = &cobra.Command{
	Use:   "delete <department-id>",
	Short: "Delete a department",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Delete department " + args[0] + "?") {
			return nil
		}
		s := newStore()
		if err := s.DeleteDepartment(args[0]); err != nil {
			return err
		}
		okLabel.Printf("Department %s deleted\n", args[0])
		renderDepartments(s.Departments())
		return nil
	},
}

var departmentsSetManagerCmd = &cobra.Command{
	Use:   "set-manager <department-id> <user-id>",
	Short: "Assign a department manager",
	Long: `Assign a department manager. The backend rejects users who are not
members of the department; the rejection reason is printed verbatim.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.AssignDepartmentManager(args[0], args[1]); err != nil {
			var httpErr *httpclient.HTTPError
			if errors.As(err, &httpErr) && httpErr.StatusCode == 400 {
				errorLabel.Printf("Manager assignment rejected: %s\n", httpErr.Message)
				return ErrAlreadyHandled
			}
			return err
		}
		okLabel.Printf("Manager of %s set to %s\n", args[0], args[1])
		renderDepartments(s.Departments())
		return nil
	},
}

func init() {
	departmentsCreateCmd.Flags().StringVar(&departmentName, "name", "", "Department name")
	departmentsUpdateCmd.Flags().StringVar(&departmentName, "name", "", "Department name")
	departmentsUpdateCmd.Flags().StringVar(&departmentManager, "manager", "", "Manager user ID")

	departmentsCmd.AddCommand(departmentsListCmd)
	departmentsCmd.AddCommand(departmentsShowCmd)
	departmentsCmd.AddCommand(departmentsCreateCmd)
	departmentsCmd.AddCommand(departmentsUpdateCmd)
	departmentsCmd.AddCommand(departmentsDeleteCmd)
	departmentsCmd.AddCommand(departmentsSetManagerCmd)
	rootCmd.AddCommand(departmentsCmd)
}
