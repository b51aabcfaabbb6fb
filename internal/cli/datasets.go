package cli

import (
	"github.com/spf13/cobra"

	"github.com/modelops/llmadmin/internal/store"
	"github.com/modelops/llmadmin/pkg/api"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Manage training datasets",
}

var (
	datasetFilterName string
	datasetFilterType string
)

var datasetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List datasets, optionally filtered by name or learning type",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := store.DatasetFilter{Name: datasetFilterName}
		if datasetFilterType != "" {
			lt, err := api.ParseLearningType(datasetFilterType)
			if err != nil {
				return err
			}
			filter.LearningType = lt
		}
		s := newStore()
		if err := s.FetchDatasets(filter); err != nil {
			return err
		}
		renderDatasets(s.Datasets())
		return nil
	},
}

func renderDatasets(datasets []api.Dataset) {
	if jsonOutput {
		printJSON(datasets)
		return
	}
	rows := make([][]string, 0, len(datasets))
	for _, d := range datasets {
		rows = append(rows, []string{
			d.DatasetID,
			orDash(d.DatasetName),
			string(d.LearningType),
			d.S3Path,
			orDash(d.CreatedAt),
		})
	}
	printTable([]string{"id", "name", "learning type", "s3 path", "created"}, rows)
}

var (
	datasetName        string
	datasetType        string
	datasetDescription string
	datasetS3Path      string
)

var datasetsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		lt, err := api.ParseLearningType(datasetType)
		if err != nil {
			return err
		}
		req := api.CreateDatasetRequest{
			DatasetName:  datasetName,
			LearningType: lt,
			Description:  datasetDescription,
			S3Path:       datasetS3Path,
		}
		s := newStore()
		if err := s.CreateDataset(req); err != nil {
			return err
		}
		okLabel.Println("Dataset registered")
		renderDatasets(s.Datasets())
		return nil
	},
}

var datasetsUpdateCmd = &cobra.Command{
	Use:   "update <dataset-id>",
	Short: "Update a dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lt, err := api.ParseLearningType(datasetType)
		if err != nil {
			return err
		}
		req := api.UpdateDatasetRequest{
			LearningType: lt,
			Description:  datasetDescription,
			S3Path:       datasetS3Path,
		}
		s := newStore()
		if err := s.UpdateDataset(args[0], req); err != nil {
			return err
		}
		okLabel.Printf("Dataset %s updated\n", args[0])
		renderDatasets(s.Datasets())
		return nil
	},
}

var datasetsDeleteCmd = &cobra.Command{
	Use:   "delete <dataset-id>",
	Short: "Delete a dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Delete dataset " + args[0] + "?") {
			return nil
		}
		s := newStore()
		if err := s.DeleteDataset(args[0]); err != nil {
			return err
		}
		okLabel.Printf("Dataset %s deleted\n", args[0])
		renderDatasets(s.Datasets())
		return nil
	},
}

func init() {
	datasetsListCmd.Flags().StringVar(&datasetFilterName, "name", "", "Filter by dataset name")
	datasetsListCmd.Flags().StringVar(&datasetFilterType, "learning-type", "", "Filter by learning type")

	for _, c := range []*cobra.Command{datasetsCreateCmd, datasetsUpdateCmd} {
		c.Flags().StringVar(&datasetType, "learning-type", "", "Learning type")
		c.Flags().StringVar(&datasetDescription, "description", "", "Dataset description")
		c.Flags().StringVar(&datasetS3Path, "s3-path", "", "S3 path of the dataset")
	}
	datasetsCreateCmd.Flags().StringVar(&datasetName, "name", "", "Dataset name")

	datasetsCmd.AddCommand(datasetsListCmd)
	datasetsCmd.AddCommand(datasetsCreateCmd)
	datasetsCmd.AddCommand(datasetsUpdateCmd)
	datasetsCmd.AddCommand(datasetsDeleteCmd)
	rootCmd.AddCommand(datasetsCmd)
}
