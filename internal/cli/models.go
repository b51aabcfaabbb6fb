package cli

import (
	"github.com/spf13/cobra"

	"github.com/modelops/llmadmin/pkg/api"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Manage registered models",
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered models",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		if err := s.FetchModels(); err != nil {
			return err
		}
		renderModels(s.Models())
		return nil
	},
}

func renderModels(models []api.Model) {
	if jsonOutput {
		printJSON(models)
		return
	}
	rows := make([][]string, 0, len(models))
	for _, m := range models {
		rows = append(rows, []string{m.ModelID, m.ModelName, m.ModelType})
	}
	printTable([]string{"id", "name", "type"}, rows)
}

var (
	modelName string
	modelType string
)

var modelsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		req := api.CreateModelRequest{ModelName: modelName, ModelType: modelType}
		if err := s.CreateModel(req); err != nil {
			return err
		}
		okLabel.Printf("Model %s registered\n", modelName)
		renderModels(s.Models())
		return nil
	},
}

var modelsUpdateCmd = &cobra.Command{
	Use:   "update <model-id>",
	Short: "Update a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStore()
		req := api.UpdateModelRequest{ModelName: modelName, ModelType: modelType}
		if err := s.UpdateModel(args[0], req); err != nil {
			return err
		}
		okLabel.Printf("Model %s updated\n", args[0])
		renderModels(s.Models())
		return nil
	},
}

var modelsDeleteCmd = &cobra.Command{
	Use:   "delete <model-id>",
	Short: "Delete a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Delete model " + args[0] + "?") {
			return nil
		}
		s := newStore()
		if err := s.DeleteModel(args[0]); err != nil {
			return err
		}
		okLabel.Printf("Model %s deleted\n", args[0])
		renderModels(s.Models())
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{modelsCreateCmd, modelsUpdateCmd} {
		c.Flags().StringVar(&modelName, "name", "", "Model name")
		c.Flags().StringVar(&modelType, "type", "", "Model type")
	}

	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsCreateCmd)
	modelsCmd.AddCommand(modelsUpdateCmd)
	modelsCmd.AddCommand(modelsDeleteCmd)
	rootCmd.AddCommand(modelsCmd)
}
