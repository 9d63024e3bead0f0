package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/master-racoon/hackathon-last-mile/internal/adapters/oracle"
	"github.com/master-racoon/hackathon-last-mile/internal/adapters/repositories"
	"github.com/master-racoon/hackathon-last-mile/internal/platform/db"
	"github.com/master-racoon/hackathon-last-mile/internal/platform/logging"
	"github.com/master-racoon/hackathon-last-mile/internal/services"
)

var databaseURL string

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "dbtool",
		Short: "Database maintenance for the last-mile order service",
	}

	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection URL")

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(predictCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDB() (*sql.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required (--database-url or DATABASE_URL)")
	}
	return db.Open(databaseURL)
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create tables and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close()

			if err := repositories.InitSchema(database); err != nil {
				return err
			}
			fmt.Println("schema ready")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var vehiclesPath, tracksPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load vehicle type and track reference data",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close()

			if vehiclesPath != "" {
				if err := repositories.SeedVehicleTypesFromJSON(database, vehiclesPath); err != nil {
					return err
				}
				fmt.Printf("vehicle types seeded from %s\n", vehiclesPath)
			}
			if tracksPath != "" {
				if err := repositories.SeedTracksFromJSON(database, tracksPath); err != nil {
					return err
				}
				fmt.Printf("tracks seeded from %s\n", tracksPath)
			}
			if vehiclesPath == "" && tracksPath == "" {
				return fmt.Errorf("nothing to seed: pass --vehicle-types and/or --tracks")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vehiclesPath, "vehicle-types", "data/seeds/vehicle_types.json", "Vehicle type catalog JSON")
	cmd.Flags().StringVar(&tracksPath, "tracks", "data/seeds/tracks.json", "Destination track JSON")
	return cmd
}

func predictCmd() *cobra.Command {
	var artifactPath string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Run one prediction pass over all open orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close()

			model, err := oracle.Load(artifactPath)
			if err != nil {
				return err
			}

			engine, err := services.NewPredictionEngine(
				repositories.NewPostgresOrderRepository(database),
				repositories.NewPostgresVehicleTypeRepository(database),
				repositories.NewPostgresTrackRepository(database),
				repositories.NewPostgresPredictionRepository(database),
				model, nil, logging.New("dbtool"),
			)
			if err != nil {
				return err
			}

			n, err := engine.Run(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("predicted %d orders (model %s)\n", n, model.Version())
			return nil
		},
	}

	cmd.Flags().StringVar(&artifactPath, "model", "data/models/duration_model.json", "Duration model artifact")
	return cmd
}
