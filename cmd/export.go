package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/flavorithm/flavorithm/internal/export"
	"github.com/flavorithm/flavorithm/internal/repositories/postgres"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export order history to a Parquet file, optionally uploading it to S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, pool, err := loadConfigAndPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		records, err := postgres.NewOrderRepository(pool).GetAll(ctx)
		if err != nil {
			return fmt.Errorf("loading orders: %w", err)
		}

		if err := os.MkdirAll(cfg.ExportFolder, 0o755); err != nil {
			return err
		}
		fileName := fmt.Sprintf("sales_%s.parquet", time.Now().Format("20060102"))
		filePath := filepath.Join(cfg.ExportFolder, fileName)
		if err := export.WriteParquet(filePath, records); err != nil {
			return err
		}
		log.Printf("wrote %d orders to %s", len(records), filePath)

		if cfg.CloudBucket == "" {
			return nil
		}
		uploader, err := export.NewS3Uploader(ctx, cfg.CloudRegion)
		if err != nil {
			return err
		}
		file, err := os.Open(filePath)
		if err != nil {
			return err
		}
		defer file.Close()

		if err := uploader.Upload(ctx, cfg.CloudBucket, fileName, file); err != nil {
			return err
		}
		log.Printf("uploaded %s to s3://%s/%s", fileName, cfg.CloudBucket, fileName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
