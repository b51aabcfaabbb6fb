package cli

import (
	"github.com/spf13/cobra"

	"github.com/modelops/llmadmin/internal/store"
	"github.com/modelops/llmadmin/pkg/api"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var (
	projectFilterName    string
	projectFilterCreator string
	projectFilterDept    string
)

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects, optionally filtered by name, creator, or department",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		filter := store.ProjectFilter{
			Name:           projectFilterName,
			CreatorName:    projectFilterCreator,
			DepartmentName: projectFilterDept,
		}
		if err := s.FetchProjects(filter); err != nil {
			return err
		}
		renderProjects(s.Projects())
		return nil
	},
}

func renderProjects(projects []api.Project) {
	if jsonOutput {
		printJSON(projects)
		return
	}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.ID, p.Name, orDash(p.Description), p.CreatorID, p.DepartmentID, orDash(p.CreatedAt),
		})
	}
	printTable([]string{"id", "name", "description", "creator", "department", "created"}, rows)
}

var (
	projectName        string
	projectDescription string
	projectCreator     string
	projectDept        string
)

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := api.CreateProjectRequest{
			ProjectName:   projectName,
			Description:   projectDescription,
			CreatorUserID: projectCreator,
			DepartmentID:  projectDept,
		}
		s := newStore()
		if err := s.CreateProject(req); err != nil {
			return err
		}
		okLabel.Printf("Project %s created\n", projectName)
		renderProjects(s.Projects())
		return nil
	},
}

var projectsUpdateCmd = &cobra.Command{
	Use:   "update <project-id>",
	Short: "Update a project's name and description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := api.UpdateProjectRequest{
			ProjectName: projectName,
			Description: projectDescription,
		}
		s := newStore()
		if err := s.UpdateProject(args[0], req); err != nil {
			return err
		}
		okLabel.Printf("Project %s updated\n", args[0])
		renderProjects(s.Projects())
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Delete project " + args[0] + "?") {
			return nil
		}
		s := newStore()
		if err := s.DeleteProject(args[0]); err != nil {
			return err
		}
		okLabel.Printf("Project %s deleted\n", args[0])
		renderProjects(s.Projects())
		return nil
	},
}

func init() {
	projectsListCmd.Flags().StringVar(&projectFilterName, "name", "", "Filter by project name")
	projectsListCmd.Flags().StringVar(&projectFilterCreator, "creator", "", "Filter by creator user name")
	projectsListCmd.Flags().StringVar(&projectFilterDept, "department", "", "Filter by department name")

	for _, c := range []*cobra.Command{projectsCreateCmd, projectsUpdateCmd} {
		c.Flags().StringVar(&projectName, "name", "", "Project name")
		c.Flags().StringVar(&projectDescription, "description", "", "Project description")
	}
	projectsCreateCmd.Flags().StringVar(&projectCreator, "creator", "", "Creator user ID")
	projectsCreateCmd.Flags().StringVar(&projectDept, "dept", "", "Department ID")

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsUpdateCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
	rootCmd.AddCommand(projectsCmd)
}
