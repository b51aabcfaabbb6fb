package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modelops/llmadmin/internal/store"
	"github.com/modelops/llmadmin/pkg/api"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage prompt templates",
}

var (
	templateFilterName    string
	templateFilterCreator string
)

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompt templates, optionally filtered by name or creator",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := store.TemplateFilter{
			Name:        templateFilterName,
			CreatorName: templateFilterCreator,
		}
		s := newStore()
		if err := s.FetchTemplates(filter); err != nil {
			return err
		}
		renderTemplates(s.Templates())
		return nil
	},
}

func renderTemplates(templates []api.PromptTemplate) {
	if jsonOutput {
		printJSON(templates)
		return
	}
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{
			t.TemplateID,
			t.TemplateName,
			string(t.TaskCategory),
			t.Version,
			orDash(t.CreatorUserName),
			strconv.Itoa(t.UsageCount),
		})
	}
	printTable([]string{"id", "name", "category", "version", "creator", "uses"}, rows)
}

var (
	templateName        string
	templateS3Path      string
	templateDescription string
	templateCategory    string
	templateVariables   string
	templateVersion     string
	templateCreator     string
)

var templatesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new prompt template",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := api.ParseTaskCategory(templateCategory)
		if err != nil {
			return err
		}
		req := api.CreateTemplateRequest{
			TemplateName:  templateName,
			PromptS3Path:  templateS3Path,
			Description:   templateDescription,
			TaskCategory:  cat,
			Variables:     templateVariables,
			Version:       templateVersion,
			CreatorUserID: templateCreator,
		}
		s := newStore()
		if err := s.CreateTemplate(req); err != nil {
			return err
		}
		okLabel.Printf("Template %s registered\n", templateName)
		renderTemplates(s.Templates())
		return nil
	},
}

var templatesDeleteCmd = &cobra.Command{
	Use:   "delete <template-id>",
	Short: "Delete a prompt template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Delete template " + args[0] + "?") {
			return nil
		}
		s := newStore()
		if err := s.DeleteTemplate(args[0]); err != nil {
			return err
		}
		okLabel.Printf("Template %s deleted\n", args[0])
		renderTemplates(s.Templates())
		return nil
	},
}

func init() {
	templatesListCmd.Flags().StringVar(&templateFilterName, "name", "", "Filter by template name")
	templatesListCmd.Flags().StringVar(&templateFilterCreator, "creator", "", "Filter by creator user name")

	templatesCreateCmd.Flags().StringVar(&templateName, "name", "", "Template name")
	templatesCreateCmd.Flags().StringVar(&templateS3Path, "s3-path", "", "S3 path of the prompt body")
	templatesCreateCmd.Flags().StringVar(&templateDescription, "description", "", "Template description")
	templatesCreateCmd.Flags().StringVar(&templateCategory, "category", "", "Task category")
	templatesCreateCmd.Flags().StringVar(&templateVariables, "variables", "", "Comma-separated variable names")
	templatesCreateCmd.Flags().StringVar(&templateVersion, "version", "", "Template version")
	templatesCreateCmd.Flags().StringVar(&templateCreator, "creator", "", "Creator user ID")

	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesCreateCmd)
	templatesCmd.AddCommand(templatesDeleteCmd)
	rootCmd.AddCommand(templatesCmd)
}
