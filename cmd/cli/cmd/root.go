package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type Config struct {
	SchemaStorePath string `mapstructure:"tensorfx_schema_store_path"`
}

var config Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tensorfx",
	Short: "Schemas for TensorFX datasets",
	Long: `TensorFX describes the shape of raw tabular data with typed schemas
before the data is transformed into features for training.

Use this tool to author, validate and publish schema specifications. Schemas
are YAML documents listing the dataset's columns with their name, type
(integer, real or discrete) and length.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	if err := viper.ReadInConfig(); err != nil {
		// The .env file is optional, all settings have flag equivalents
		logrus.WithError(err).Debug("no .env configuration loaded")
		return
	}
	err := viper.Unmarshal(&config)
	if err != nil {
		cobra.CheckErr(fmt.Errorf("error decoding environment into config: %w", err))
	}
}
