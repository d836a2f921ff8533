package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/closingdesk/contract-extract/gen/ent"
	entcontract "github.com/closingdesk/contract-extract/gen/ent/contract"
	"github.com/closingdesk/contract-extract/internal/entity"
	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/utils"
)

// UpsertContractRequest wraps parameters for persisting a merged record.
type UpsertContractRequest struct {
	File        *ent.ContractFile
	JobID       uuid.UUID
	Record      *extract.ContractRecord
	NeedsReview bool
}

type ContractRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	ListContracts(ctx context.Context, family string, fromDate, toDate *time.Time) ([]*entity.Contract, error)
	UpsertFromRecord(ctx context.Context, request *UpsertContractRequest) (*entity.Contract, error)
}

type contractRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	return &contractRepository{
		client: client,
		logger: logger,
	}
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	row, err := r.client.Contract.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get contract", "contract_id", id, "error", err)
		return nil, err
	}
	return utils.ToContract(row), nil
}

func (r *contractRepository) ListContracts(ctx context.Context, family string, fromDate, toDate *time.Time) ([]*entity.Contract, error) {
	q := r.client.Contract.Query()
	if family != "" {
		q = q.Where(entcontract.TemplateFamily(family))
	}
	if fromDate != nil {
		q = q.Where(entcontract.CreatedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entcontract.CreatedAtLTE(*toDate))
	}
	rows, err := q.Order(entcontract.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list contracts", "family", family, "error", err)
		return nil, err
	}

	result := make([]*entity.Contract, len(rows))
	for i, row := range rows {
		result[i] = utils.ToContract(row)
	}
	return result, nil
}

func (r *contractRepository) UpsertFromRecord(ctx context.Context, request *UpsertContractRequest) (*entity.Contract, error) {
	rec := request.Record
	file := request.File

	fieldsJSON, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}

	builder := r.client.Contract.Create().
		SetTemplateFamily(file.TemplateFamily).
		SetPropertyAddress(stringField(rec, "property_address")).
		SetBuyerNames(joinedField(rec, "buyer_names")).
		SetSellerNames(joinedField(rec, "seller_names")).
		SetCompleteness(float32(rec.Completeness)).
		SetNeedsReview(request.NeedsReview).
		SetFieldsJSON(fieldsJSON).
		SetRecordText(string(fieldsJSON))

	if price, ok := rec.Value("purchase_price").(float64); ok {
		builder = builder.SetPurchasePrice(price)
	}
	if coe, ok := rec.Value("close_of_escrow_date").(string); ok {
		if t, err := utils.ParseYMD(coe); err == nil {
			builder = builder.SetCloseOfEscrow(t)
		}
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create contract", "file_id", file.ID, "error", err)
		return nil, err
	}

	// link the source file to the persisted contract
	if err := r.client.ContractFile.UpdateOneID(file.ID).SetContractID(row.ID).Exec(ctx); err != nil {
		r.logger.Error("failed to link file to contract", "file_id", file.ID, "contract_id", row.ID, "error", err)
		return nil, err
	}

	return utils.ToContract(row), nil
}

func stringField(rec *extract.ContractRecord, name string) string {
	if s, ok := rec.Value(name).(string); ok {
		return s
	}
	return ""
}

// joinedField flattens an array field into a comma-joined column value.
func joinedField(rec *extract.ContractRecord, name string) string {
	switch v := rec.Value(name).(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}
