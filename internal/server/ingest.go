package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/closingdesk/contract-extract/constants"
	v1 "github.com/closingdesk/contract-extract/gen/proto/contracts/v1"
	"github.com/closingdesk/contract-extract/internal/ingest"
	"github.com/closingdesk/contract-extract/internal/pipeline"
	"github.com/closingdesk/contract-extract/internal/repository"
	"github.com/closingdesk/contract-extract/internal/utils"
)

type ExtractionService struct {
	v1.UnimplementedExtractionServiceServer
	ingestor     ingest.Ingestor
	processor    *pipeline.Processor
	contractRepo repository.ContractRepository
	logger       *slog.Logger
}

func NewExtractionService(ing ingest.Ingestor, proc *pipeline.Processor, contracts repository.ContractRepository, logger *slog.Logger) *ExtractionService {
	return &ExtractionService{
		ingestor:     ing,
		processor:    proc,
		contractRepo: contracts,
		logger:       logger,
	}
}

// IngestFile implements v1.ExtractionServiceServer
func (s *ExtractionService) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	family := strings.TrimSpace(req.GetTemplateFamily())
	if family == "" {
		s.logger.Error("ingest request missing template_family")
		return nil, status.Error(codes.InvalidArgument, "template_family is required")
	}
	if !constants.IsKnownFamily(family) {
		s.logger.Error("unknown template family for ingest", "family", family)
		return nil, status.Errorf(codes.InvalidArgument, "unknown template family %q", family)
	}

	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path", "family", family)
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "family", family, "path", path)
	r, err := s.ingestor.IngestPath(ctx, family, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "family", family, "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := &v1.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          "",
	}

	if r.Deduplicated {
		// extraction already ran (or is running) for this content
		return resp, nil
	}

	fileUUID, _ := uuid.Parse(r.FileID)
	s.logger.Info("starting file processing", "file_id", r.FileID)
	if _, _, err := s.processor.ProcessFile(ctx, fileUUID); err != nil {
		s.logger.Error("pipeline.failed", "file_id", r.FileID, "err", err)
		resp.Error = err.Error()
	}
	return resp, nil
}

func (s *ExtractionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	family := strings.TrimSpace(req.GetTemplateFamily())
	if family == "" {
		s.logger.Error("ingest directory request missing template_family")
		return nil, status.Error(codes.InvalidArgument, "template_family is required")
	}
	if !constants.IsKnownFamily(family) {
		s.logger.Error("unknown template family for ingest directory", "family", family)
		return nil, status.Errorf(codes.InvalidArgument, "unknown template family %q", family)
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "family", family)
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	skipHidden := req.GetSkipHidden()

	s.logger.Info("starting directory ingest", "family", family, "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, family, root, skipHidden)
	if err != nil {
		// DB and file errors are already logged in repository/ingest layers
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "family", family, "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &v1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*v1.IngestResponse, 0, len(results)),
	}

	s.logger.Info("starting processing of ingested files", "family", family, "file_count", len(results))
	for _, r := range results {
		item := &v1.IngestResponse{
			FileId:         r.FileID,
			Deduplicated:   r.Deduplicated,
			ContentHashHex: r.HashHex,
			FileExt:        r.FileExt,
			UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
			SourcePath:     r.SourcePath,
			Error:          r.Err,
		}

		if r.Err == "" && r.FileID != "" && !r.Deduplicated {
			if fileUUID, err := uuid.Parse(r.FileID); err == nil {
				if _, _, pErr := s.processor.ProcessFile(ctx, fileUUID); pErr != nil {
					s.logger.Error("pipeline.failed", "file_id", r.FileID, "err", pErr)
					item.Error = pErr.Error()
				}
			}
		}

		out.Results = append(out.Results, item)
	}
	return out, nil
}

// ExtractContract re-runs extraction for an already-ingested file.
func (s *ExtractionService) ExtractContract(ctx context.Context, req *v1.ExtractContractRequest) (*v1.ExtractContractResponse, error) {
	fid := strings.TrimSpace(req.GetFileId())
	if fid == "" {
		s.logger.Error("extract request missing file_id")
		return nil, status.Error(codes.InvalidArgument, "file_id is required")
	}
	fileID, err := uuid.Parse(fid)
	if err != nil {
		s.logger.Error("invalid file_id format for extract", "file_id", fid, "error", err)
		return nil, status.Error(codes.InvalidArgument, "file_id must be a UUID")
	}

	jobID, contract, err := s.processor.ProcessFile(ctx, fileID)
	if err != nil {
		s.logger.Error("extract failed", "file_id", fileID, "job_id", jobID, "error", err)
		return nil, status.Errorf(codes.Internal, "extract: %v", err)
	}

	return &v1.ExtractContractResponse{
		JobId:    jobID.String(),
		Contract: utils.ToPBContract(contract),
	}, nil
}
