package main

import (
	"fmt"

	"github.com/localnerve/contextdb/internal/database"
	"github.com/spf13/cobra"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update the seven tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadToolConfig()
		if err != nil {
			return err
		}

		if flagOffline {
			dialector, err := database.Dialector(cfg)
			if err != nil {
				return err
			}
			stmts, err := database.CreateStatements(dialector)
			if err != nil {
				return err
			}
			for _, stmt := range stmts {
				fmt.Println(stmt)
			}
			return nil
		}

		db, err := database.Connect(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.MigrateUp(db); err != nil {
			return err
		}
		fmt.Println("schema is up to date")
		return nil
	},
}
