package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the survey tables",
	Long: `Apply the embedded SQL migrations (postgres) or GORM AutoMigrate
(other drivers). Existing tables are left as they are; run the server with
db.ensure_emoji_id to add the EmojiID column to older answer tables.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.migrate(); err != nil {
			return err
		}
		a.logger.Info("migration finished")
		return nil
	},
}
