package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdant/green-matcher/internal/config"
	"github.com/verdant/green-matcher/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema",
	Long:  `Create the investors, projects, and project_notes tables if they do not exist.`,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Connect(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Setup(cmd.Context()); err != nil {
		return err
	}

	fmt.Println("Schema ready.")
	return nil
}
