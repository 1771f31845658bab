package services

import (
	"context"

	"github.com/M-Vasconez/fin/internal/dto"
)

// DataExchangeSvcFacade is the CSV import/export engine surface.
type DataExchangeSvcFacade interface {
	// ExportCSV serializes one data type (accounts, transactions, transfers,
	// goals or templates) to CSV bytes and returns the suggested file name.
	ExportCSV(ctx context.Context, dataType string) (fileName string, data []byte, err error)

	// ImportFiles processes a batch of uploaded CSV files. Each file is routed
	// by name, validated and imported independently so one failure never
	// aborts the rest.
	ImportFiles(ctx context.Context, files []dto.ImportFile) (*dto.ImportSummary, error)
}
