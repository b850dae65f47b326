package main

import (
	"context"
	"fmt"
	"os"

	"foodtruck-api/internal/config"
	"foodtruck-api/internal/loader"
	"foodtruck-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var file, configDir string

	cmd := &cobra.Command{
		Use:   "importer",
		Short: "Import a food truck permit export into PostgreSQL",
		Long: `Reads a JSON export of mobile food facility permits and bulk copies it into
the food_trucks table, which the API can then load with DATA_SOURCE=postgres.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd.Context(), cmd, file, configDir)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the JSON export to import")
	cmd.Flags().StringVar(&configDir, "config", "configs", "Directory containing app.env")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(ctx context.Context, cmd *cobra.Command, file, configDir string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Starting import from file: %s\n", file)

	records, err := loader.NewFileSource(file).LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("error parsing export: %w", err)
	}

	fmt.Fprintf(out, "Parsed %d records\n", len(records))

	// Load config
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if cfg.DBSource == "" {
		return fmt.Errorf("DB_SOURCE is not set")
	}

	// Connect to DB
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)

	// Ensure table exists
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	// Insert records
	copied, err := repo.CopyFoodTrucks(ctx, records)
	if err != nil {
		return err
	}

	// Verify data
	count, err := repo.CountFoodTrucks(ctx)
	if err != nil {
		return err
	}
	if count < int(copied) {
		return fmt.Errorf("record count mismatch: copied %d, table holds %d", copied, count)
	}

	fmt.Fprintf(out, "Successfully imported %d records (%d in table)\n", copied, count)
	return nil
}
