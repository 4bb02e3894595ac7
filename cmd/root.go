package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/flavorithm/flavorithm/internal/database"
	"github.com/flavorithm/flavorithm/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "flavorithm",
	Short: "Point-of-sale and loyalty core for the Flavorithm restaurant",
	Long:  `flavorithm manages the restaurant menu, loyalty members, allergies, orders and recommendations backed by PostgreSQL, with operational commands for schema migration, data seeding and sales export.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.json)")

	rootCmd.PersistentFlags().String("restaurant-name", "Flavorithm Restaurant", "Restaurant display name")
	rootCmd.PersistentFlags().Int("recommendation-count", 3, "Number of dishes per recommendation query")
	rootCmd.PersistentFlags().Bool("kafka-enabled", false, "Publish completed orders to Kafka")
	rootCmd.PersistentFlags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.PersistentFlags().String("order-topic", "order_events", "Kafka topic for completed orders")

	viper.BindPFlags(rootCmd.PersistentFlags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfigAndPool is shared setup for every subcommand that touches the
// database.
func loadConfigAndPool(ctx context.Context) (*models.Config, *pgxpool.Pool, error) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	pool, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
