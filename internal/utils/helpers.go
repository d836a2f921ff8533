package utils

import (
	"fmt"
	"time"

	"github.com/closingdesk/contract-extract/gen/ent"
	contractspb "github.com/closingdesk/contract-extract/gen/proto/contracts/v1"
	"github.com/closingdesk/contract-extract/internal/entity"
)

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToContract(e *ent.Contract) *entity.Contract {
	return &entity.Contract{
		ID:              e.ID,
		TemplateFamily:  e.TemplateFamily,
		PropertyAddress: e.PropertyAddress,
		BuyerNames:      e.BuyerNames,
		SellerNames:     e.SellerNames,
		PurchasePrice:   e.PurchasePrice,
		CloseOfEscrow:   e.CloseOfEscrow,
		Completeness:    e.Completeness,
		NeedsReview:     e.NeedsReview,
		FieldsJSON:      e.FieldsJSON,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToContractFile(e *ent.ContractFile) *entity.ContractFile {
	return &entity.ContractFile{
		ID:             e.ID,
		SourcePath:     e.SourcePath,
		FileExt:        e.FileExt,
		ContentHash:    e.ContentHash,
		TemplateFamily: e.TemplateFamily,
		ContractID:     e.ContractID,
		UploadedAt:     e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:              e.ID,
		FileID:          e.FileID,
		ContractID:      e.ContractID,
		Format:          e.Format,
		StartedAt:       e.StartedAt,
		FinishedAt:      e.FinishedAt,
		Status:          e.Status,
		ErrorMessage:    e.ErrorMessage,
		Completeness:    e.Completeness,
		NeedsReview:     e.NeedsReview,
		RecordJSON:      e.RecordJSON,
		MissingRequired: e.MissingRequired,
		ModelName:       e.ModelName,
		ModelParams:     e.ModelParams,
	}
}

func ToPBContract(c *entity.Contract) *contractspb.Contract {
	price := ""
	if c.PurchasePrice != nil {
		price = fmt.Sprintf("%.2f", *c.PurchasePrice)
	}
	coe := ""
	if c.CloseOfEscrow != nil {
		coe = c.CloseOfEscrow.Format("2006-01-02")
	}
	return &contractspb.Contract{
		Id:              c.ID.String(),
		TemplateFamily:  c.TemplateFamily,
		PropertyAddress: c.PropertyAddress,
		BuyerNames:      c.BuyerNames,
		SellerNames:     c.SellerNames,
		PurchasePrice:   price,
		CloseOfEscrow:   coe,
		Completeness:    c.Completeness,
		NeedsReview:     c.NeedsReview,
		FieldsJson:      string(c.FieldsJSON),
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
