package models_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flavorithm/flavorithm/internal/models"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	contents := `{
		"restaurant_name": "Test Kitchen",
		"recommendation_count": 5,
		"kafka_enabled": true,
		"kafka_broker_list": "broker-1:9092,broker-2:9092",
		"database": {
			"host": "db.internal",
			"port": "5433",
			"user": "pos",
			"password": "secret",
			"dbname": "kitchen",
			"sslmode": "require"
		}
	}`
	if err := os.WriteFile(cfgPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := models.LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.RestaurantName != "Test Kitchen" {
		t.Fatalf("expected restaurant name Test Kitchen, got %q", cfg.RestaurantName)
	}
	if cfg.RecommendationCount != 5 {
		t.Fatalf("expected recommendation count 5, got %d", cfg.RecommendationCount)
	}
	if !cfg.KafkaEnabled || cfg.KafkaBrokerList != "broker-1:9092,broker-2:9092" {
		t.Fatalf("unexpected kafka settings: %+v", cfg)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != "5433" || cfg.Database.SSLMode != "require" {
		t.Fatalf("unexpected database settings: %+v", cfg.Database)
	}
	// Defaults fill in what the file leaves out.
	if cfg.OrderTopic != "order_events" {
		t.Fatalf("expected default order topic, got %q", cfg.OrderTopic)
	}
	if cfg.ExportFolder != "exports" {
		t.Fatalf("expected default export folder, got %q", cfg.ExportFolder)
	}
}
