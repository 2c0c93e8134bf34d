package cmd

import (
	"career_path_backend/internal/config"
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career-path",
	Short: "Career guidance and adaptive learning backend",
	Long:  "career-path 提供职业选择、诊断测试与自适应学习的 HTTP 服务。",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "configs", "Directory containing config.yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadConfig 读取 --config 指定目录下的 config.yaml
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("load config from %s: %w", dir, err)
	}
	return cfg, nil
}
