package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zbxzc35/tensorfx/pkg/schemastore"
)

func init() {
	schemaCmd.AddCommand(pushCmd)
	schemaCmd.AddCommand(pullCmd)
	pushCmd.Flags().StringVar(&storePath, "store", "", "Schema store path, e.g. s3://bucket/prefix (defaults to tensorfx_schema_store_path)")
	pullCmd.Flags().StringVar(&storePath, "store", "", "Schema store path, e.g. s3://bucket/prefix (defaults to tensorfx_schema_store_path)")
	pullCmd.Flags().StringVarP(&pullOutputPath, "output", "o", "", "File to write the schema to instead of stdout")
}

var (
	storePath      string
	pullOutputPath string
)

func storageClient(cmd *cobra.Command) (*schemastore.StorageClient, error) {
	path := storePath
	if path == "" {
		path = config.SchemaStorePath
	}
	if path == "" {
		return nil, errors.New("no schema store configured, set --store or tensorfx_schema_store_path")
	}
	return schemastore.NewStorageClient(cmd.Context(), path)
}

var pushCmd = &cobra.Command{
	Use:   "push <file> <name> <version>",
	Short: "Publishes a schema specification to the schema store",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := storageClient(cmd)
		cobra.CheckErr(err)

		s, err := loadSchemaFile(args[0])
		cobra.CheckErr(err)

		revision, err := client.PutSchema(cmd.Context(), args[1], args[2], s)
		cobra.CheckErr(err)
		fmt.Printf("Pushed %s %s (revision %s)\n", args[1], args[2], revision)
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull <name> <version>",
	Short: "Retrieves a schema specification from the schema store",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := storageClient(cmd)
		cobra.CheckErr(err)

		s, err := client.GetSchema(cmd.Context(), args[0], args[1])
		cobra.CheckErr(err)

		out, err := s.Format()
		cobra.CheckErr(err)

		if pullOutputPath == "" {
			fmt.Print(out)
			return
		}
		err = os.WriteFile(pullOutputPath, []byte(out), 0o644)
		cobra.CheckErr(err)
		fmt.Printf("Wrote schema with %d field(s) to %s\n", s.Len(), pullOutputPath)
	},
}
