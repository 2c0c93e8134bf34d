package cmd

import (
	"career_path_backend/pkg/database"
	"career_path_backend/pkg/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger.InitLogger(cfg)
		defer logger.Log.Sync()

		if _, err := database.InitDB(&cfg.Database, true); err != nil {
			return err
		}
		logger.Log.Info("数据库迁移完成")
		return nil
	},
}
