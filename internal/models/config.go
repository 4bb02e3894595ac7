package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type Config struct {
	RestaurantName      string         `mapstructure:"restaurant_name"`
	Database            DatabaseConfig `mapstructure:"database"`
	RecommendationCount int            `mapstructure:"recommendation_count"`
	KafkaEnabled        bool           `mapstructure:"kafka_enabled"`
	KafkaBrokerList     string         `mapstructure:"kafka_broker_list"`
	OrderTopic          string         `mapstructure:"order_topic"`
	SeedMenuItems       int            `mapstructure:"seed_menu_items"`
	SeedMembers         int            `mapstructure:"seed_members"`
	ExportFolder        string         `mapstructure:"export_folder"`
	CloudBucket         string         `mapstructure:"cloud_bucket"`
	CloudRegion         string         `mapstructure:"cloud_region"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("restaurant_name", "Flavorithm Restaurant")
	viper.SetDefault("recommendation_count", 3)
	viper.SetDefault("order_topic", "order_events")
	viper.SetDefault("seed_menu_items", 25)
	viper.SetDefault("seed_members", 10)
	viper.SetDefault("export_folder", "exports")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.dbname", "restaurant")
	viper.SetDefault("database.sslmode", "disable")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
