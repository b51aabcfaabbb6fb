package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modelops/llmadmin/pkg/api"
)

var deploymentsCmd = &cobra.Command{
	Use:   "deployments",
	Short: "Manage model deployments",
}

var deploymentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the deployments of a model",
	RunE: func(cmd *cobra.Command, args []string) error {
		if deployModel == "" {
			return cmd.Help()
		}
		s := newStore()
		if err := s.FetchDeploymentsByModel(deployModel); err != nil {
			return err
		}
		renderDeployments(s.Deployments())
		return nil
	},
}

func renderDeployments(deployments []api.Deployment) {
	if jsonOutput {
		printJSON(deployments)
		return
	}
	rows := make([][]string, 0, len(deployments))
	for _, d := range deployments {
		rows = append(rows, []string{
			d.DeploymentID,
			d.ServerName,
			strconv.Itoa(d.GPUCount),
			string(d.Environment),
			string(d.Status),
			orDash(d.DatasetID),
		})
	}
	printTable([]string{"id", "server", "gpus", "environment", "status", "dataset"}, rows)
}

var (
	deployServer   string
	deployGPUCount int
	deployEnv      string
	deployStatus   string
	deployModel    string
	deployDataset  string
)

func parseDeployFields() (api.DeployEnvironment, api.DeployStatus, error) {
	env, err := api.ParseDeployEnvironment(deployEnv)
	if err != nil {
		return "", "", err
	}
	st, err := api.ParseDeployStatus(deployStatus)
	if err != nil {
		return "", "", err
	}
	return env, st, nil
}

var deploymentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Deploy a model to a server",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, st, err := parseDeployFields()
		if err != nil {
			return err
		}
		req := api.CreateDeploymentRequest{
			ServerName:  deployServer,
			GPUCount:    deployGPUCount,
			Environment: env,
			Status:      st,
			ModelID:     deployModel,
			DatasetID:   deployDataset,
		}
		s := newStore()
		if err := s.CreateDeployment(req); err != nil {
			return err
		}
		okLabel.Printf("Deployment on %s created\n", deployServer)
		renderDeployments(s.Deployments())
		return nil
	},
}

var deploymentsUpdateCmd = &cobra.Command{
	Use:   "update <deployment-id>",
	Short: "Update a deployment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, st, err := parseDeployFields()
		if err != nil {
			return err
		}
		req := api.UpdateDeploymentRequest{
			ServerName:  deployServer,
			GPUCount:    deployGPUCount,
			Environment: env,
			Status:      st,
			DatasetID:   deployDataset,
		}
		s := newStore()
		if err := s.UpdateDeployment(args[0], req); err != nil {
			return err
		}
		okLabel.Printf("Deployment %s updated\n", args[0])
		if deployModel != "" {
			if err := s.FetchDeploymentsByModel(deployModel); err != nil {
				return err
			}
			renderDeployments(s.Deployments())
		}
		return nil
	},
}

var deploymentsDeleteCmd = &cobra.Command{
	Use:   "delete <deployment-id>",
	Short: "Delete a deployment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Delete deployment " + args[0] + "?") {
			return nil
		}
		s := newStore()
		if err := s.DeleteDeployment(args[0]); err != nil {
			return err
		}
		okLabel.Printf("Deployment %s deleted\n", args[0])
		if deployModel != "" {
			if err := s.FetchDeploymentsByModel(deployModel); err != nil {
				return err
			}
			renderDeployments(s.Deployments())
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{deploymentsCreateCmd, deploymentsUpdateCmd} {
		c.Flags().StringVar(&deployServer, "server", "", "Server name")
		c.Flags().IntVar(&deployGPUCount, "gpus", 1, "GPU count")
		c.Flags().StringVar(&deployEnv, "environment", "", "Deployment environment")
		c.Flags().StringVar(&deployStatus, "status", "", "Deployment status")
		c.Flags().StringVar(&deployDataset, "dataset", "", "Dataset ID")
	}
	deploymentsListCmd.Flags().StringVar(&deployModel, "model", "", "Model ID")
	deploymentsCreateCmd.Flags().StringVar(&deployModel, "model", "", "Model ID")
	deploymentsUpdateCmd.Flags().StringVar(&deployModel, "model", "", "Model ID to refresh after update")
	deploymentsDeleteCmd.Flags().StringVar(&deployModel, "model", "", "Model ID to refresh after delete")

	deploymentsCmd.AddCommand(deploymentsListCmd)
	deploymentsCmd.AddCommand(deploymentsCreateCmd)
	deploymentsCmd.AddCommand(deploymentsUpdateCmd)
	deploymentsCmd.AddCommand(deploymentsDeleteCmd)
	rootCmd.AddCommand(deploymentsCmd)
}
