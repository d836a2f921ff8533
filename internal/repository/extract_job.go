package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/closingdesk/contract-extract/constants"
	"github.com/closingdesk/contract-extract/gen/ent"
	entjob "github.com/closingdesk/contract-extract/gen/ent/extractjob"
)

// JobResult carries the outcome of a finished pipeline run.
type JobResult struct {
	RecordJSON      json.RawMessage
	MissingRequired []string
	Completeness    float32
	NeedsReview     bool
	ModelName       string
	ModelParams     map[string]any
}

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error)
	FinishSuccess(ctx context.Context, jobID uuid.UUID, result *JobResult) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	SetContractID(ctx context.Context, jobID, contractID uuid.UUID) error
	GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error)
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *extractJobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, result *JobResult) error {
	var missing []byte
	if len(result.MissingRequired) > 0 {
		if b, err := json.Marshal(result.MissingRequired); err == nil {
			missing = b
		}
	}
	var params []byte
	if result.ModelParams != nil {
		if b, err := json.Marshal(result.ModelParams); err == nil {
			params = b
		}
	}
	upd := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetRecordJSON(result.RecordJSON).
		SetCompleteness(result.Completeness).
		SetNeedsReview(result.NeedsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusExtractOK))
	if missing != nil {
		upd = upd.SetMissingRequired(missing)
	}
	if result.ModelName != "" {
		upd = upd.SetModelName(result.ModelName)
	}
	if params != nil {
		upd = upd.SetModelParams(params)
	}
	_, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (EXTRACT_OK)", "job_id", jobID, "completeness", result.Completeness, "needs_review", result.NeedsReview)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *extractJobRepo) SetContractID(ctx context.Context, jobID, contractID uuid.UUID) error {
	err := r.ent.ExtractJob.UpdateOneID(jobID).
		SetContractID(contractID).
		Exec(ctx)
	if err != nil {
		r.log.Error("extract_job link contract failed", "job_id", jobID, "contract_id", contractID, "err", err)
	}
	return err
}

func (r *extractJobRepo) GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.Query().
		Where(entjob.ID(jobID)).
		WithFile().
		Only(ctx)
	if err != nil {
		r.log.Error("extract_job get failed", "job_id", jobID, "err", err)
		return nil, err
	}
	return job, nil
}
