package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/closingdesk/contract-extract/gen/ent"
	"github.com/closingdesk/contract-extract/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	ent           *ent.Client
	contractsRepo repository.ContractRepository
	filesRepo     repository.ContractFileRepository
	logger        *slog.Logger
}

func NewService(entc *ent.Client, contracts repository.ContractRepository, filesRepo repository.ContractFileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ent: entc, contractsRepo: contracts, filesRepo: filesRepo, logger: logger}
}

// ExportContractsXLSX returns an XLSX workbook (as bytes) for the given family and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all contracts for family.
func (s *Service) ExportContractsXLSX(ctx context.Context, family string, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	recs, err := s.contractsRepo.ListContracts(ctx, family, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query contracts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Contracts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Template Family",
		"Property Address",
		"Buyers",
		"Sellers",
		"Purchase Price",
		"Close of Escrow",
		"Completeness",
		"Needs Review",
		"Source File",
		"Created At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		filePath := ""
		if fileRow, err := s.filesRepo.GetByContractID(ctx, r.ID); err == nil && fileRow != nil {
			filePath = fileRow.SourcePath
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.TemplateFamily)
		write(2, r.PropertyAddress)
		write(3, r.BuyerNames)
		write(4, r.SellerNames)
		if r.PurchasePrice != nil {
			write(5, fmt.Sprintf("%.2f", *r.PurchasePrice))
		} else {
			write(5, "")
		}
		if r.CloseOfEscrow != nil {
			write(6, r.CloseOfEscrow.Format("2006-01-02"))
		} else {
			write(6, "")
		}
		write(7, fmt.Sprintf("%.2f", r.Completeness))
		if r.NeedsReview {
			write(8, "YES")
		} else {
			write(8, "")
		}
		write(9, filePath)
		write(10, r.CreatedAt.UTC().Format("2006-01-02"))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // family
	_ = f.SetColWidth(sheet, "B", "B", 42) // address
	_ = f.SetColWidth(sheet, "C", "D", 32) // parties
	_ = f.SetColWidth(sheet, "E", "F", 16) // price, escrow
	_ = f.SetColWidth(sheet, "I", "I", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"family", family,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
