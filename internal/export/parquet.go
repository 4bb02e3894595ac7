package export

import (
	"fmt"

	"github.com/flavorithm/flavorithm/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
)

// SalesRecord is the Parquet row schema for the end-of-day sales export.
type SalesRecord struct {
	OrderID     string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerID  string  `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	TotalAmount float64 `parquet:"name=total_amount, type=DOUBLE"`
	Status      string  `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	PlacedAt    int64   `parquet:"name=placed_at, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// WriteParquet writes the order records to a local Parquet file.
func WriteParquet(filePath string, records []models.OrderRecord) error {
	fw, err := local.NewLocalFileWriter(filePath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(SalesRecord), 4)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	for _, rec := range records {
		row := SalesRecord{
			OrderID:     rec.OrderID,
			CustomerID:  rec.CustomerID,
			TotalAmount: rec.TotalAmount,
			Status:      rec.Status,
			PlacedAt:    rec.PlacedAt.UnixMilli(),
		}
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
