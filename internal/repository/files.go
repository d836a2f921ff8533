package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/closingdesk/contract-extract/gen/ent"
	entfile "github.com/closingdesk/contract-extract/gen/ent/contractfile"
)

type ContractFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ContractFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.ContractFile, error)
	GetByContractID(ctx context.Context, contractID uuid.UUID) (*ent.ContractFile, error)
	Create(ctx context.Context, sourcePath, ext, family string, hash []byte, uploadedAt time.Time) (*ent.ContractFile, error)
	UpsertByHash(ctx context.Context, sourcePath, ext, family string, hash []byte, uploadedAt time.Time) (*ent.ContractFile, bool, error)
	SetContractID(ctx context.Context, fileID, contractID uuid.UUID) error
}

type contractFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewContractFileRepository(entc *ent.Client, logger *slog.Logger) ContractFileRepository {
	return &contractFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *contractFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ContractFile, error) {
	return r.ent.ContractFile.Get(ctx, id)
}

func (r *contractFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.ContractFile, error) {
	row, err := r.ent.ContractFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to get contract file by hash", "error", err)
		return nil, err
	}
	return row, nil
}

func (r *contractFileRepo) GetByContractID(ctx context.Context, contractID uuid.UUID) (*ent.ContractFile, error) {
	row, err := r.ent.ContractFile.Query().
		Where(entfile.ContractID(contractID)).
		First(ctx)
	if err != nil {
		r.logger.Error("failed to get contract file by contract", "contract_id", contractID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *contractFileRepo) Create(ctx context.Context, sourcePath, ext, family string, hash []byte, uploadedAt time.Time) (*ent.ContractFile, error) {
	row, err := r.ent.ContractFile.Create().
		SetSourcePath(sourcePath).
		SetFileExt(ext).
		SetTemplateFamily(family).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create contract file", "source_path", sourcePath, "family", family, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *contractFileRepo) UpsertByHash(ctx context.Context, sourcePath, ext, family string, hash []byte, uploadedAt time.Time) (*ent.ContractFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, ext, family, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert contract file by hash", "source_path", sourcePath, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

func (r *contractFileRepo) SetContractID(ctx context.Context, fileID, contractID uuid.UUID) error {
	err := r.ent.ContractFile.UpdateOneID(fileID).
		SetContractID(contractID).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to link contract file", "file_id", fileID, "contract_id", contractID, "error", err)
	}
	return err
}
