package pipeline

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/closingdesk/contract-extract/constants"
	"github.com/closingdesk/contract-extract/internal/entity"
	"github.com/closingdesk/contract-extract/internal/extract"
	"github.com/closingdesk/contract-extract/internal/repository"
)

// Processor drives one file through the pipeline and persists the outcome:
// job row lifecycle, merged record, the contract row and the file linkage.
type Processor struct {
	Logger          *slog.Logger
	Pipeline        *Pipeline
	FilesRepo       repository.ContractFileRepository
	JobsRepo        repository.ExtractJobRepository
	ContractRepo    repository.ContractRepository
	ModelName       string
	ReviewThreshold float64
}

func NewProcessor(
	logger *slog.Logger,
	pl *Pipeline,
	files repository.ContractFileRepository,
	jobs repository.ExtractJobRepository,
	contracts repository.ContractRepository,
	modelName string,
	reviewThreshold float64,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if reviewThreshold <= 0 {
		reviewThreshold = 0.85
	}
	return &Processor{
		Logger:          logger,
		Pipeline:        pl,
		FilesRepo:       files,
		JobsRepo:        jobs,
		ContractRepo:    contracts,
		ModelName:       modelName,
		ReviewThreshold: reviewThreshold,
	}
}

// ProcessFile runs extraction for a fileID (creating/advancing extract_job)
// and upserts the contract. Returns the jobID and the persisted contract.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, *entity.Contract, error) {
	file, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		p.Logger.Error("processor.file.missing", "file_id", fileID, "err", err)
		return uuid.Nil, nil, err
	}

	job, err := p.JobsRepo.Start(ctx, file.ID, constants.MapExtToFormat(file.FileExt))
	if err != nil {
		return uuid.Nil, nil, err
	}

	res, err := p.Pipeline.Extract(ctx, file.SourcePath, hex.EncodeToString(file.ContentHash), file.TemplateFamily)
	if err != nil {
		p.Logger.Error("processor.extract.failed", "file_id", fileID, "job_id", job.ID, "err", err)
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, nil, err
	}

	needsReview := p.needsReview(res)
	recJSON, err := json.Marshal(res.Record)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, nil, err
	}

	if err := p.JobsRepo.FinishSuccess(ctx, job.ID, &repository.JobResult{
		RecordJSON:      recJSON,
		MissingRequired: res.MissingRequired,
		Completeness:    float32(res.Record.Completeness),
		NeedsReview:     needsReview,
		ModelName:       p.ModelName,
	}); err != nil {
		return job.ID, nil, err
	}

	contract, err := p.ContractRepo.UpsertFromRecord(ctx, &repository.UpsertContractRequest{
		File:        file,
		JobID:       job.ID,
		Record:      res.Record,
		NeedsReview: needsReview,
	})
	if err != nil {
		p.Logger.Error("processor.contract.upsert_failed", "job_id", job.ID, "err", err)
		return job.ID, nil, err
	}
	if err := p.JobsRepo.SetContractID(ctx, job.ID, contract.ID); err != nil {
		return job.ID, contract, err
	}

	p.Logger.Info("processor.done",
		"file_id", fileID,
		"job_id", job.ID,
		"contract_id", contract.ID,
		"completeness", res.Record.Completeness,
		"needs_review", needsReview,
	)
	return job.ID, contract, nil
}

// needsReview flags records a human should look at: low completeness, a
// missing required field, or any chosen value that came from the weakest
// strategy tier.
func (p *Processor) needsReview(res *Result) bool {
	if res.Record.Completeness < p.ReviewThreshold {
		return true
	}
	if len(res.MissingRequired) > 0 {
		return true
	}
	for _, att := range res.Record.Provenance {
		if att.Strategy == extract.StrategyContextual {
			return true
		}
	}
	return false
}
