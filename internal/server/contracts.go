package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/closingdesk/contract-extract/constants"
	contractspb "github.com/closingdesk/contract-extract/gen/proto/contracts/v1"
	"github.com/closingdesk/contract-extract/internal/utils"
)

func (s *ExtractionService) GetContract(ctx context.Context, req *contractspb.GetContractRequest) (*contractspb.GetContractResponse, error) {
	cid := strings.TrimSpace(req.GetContractId())
	if cid == "" {
		s.logger.Error("get contract request missing contract_id")
		return nil, status.Error(codes.InvalidArgument, "contract_id is required")
	}
	contractID, err := uuid.Parse(cid)
	if err != nil {
		s.logger.Error("invalid contract_id format", "contract_id", cid, "error", err)
		return nil, status.Error(codes.InvalidArgument, "contract_id must be a UUID")
	}

	c, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		s.logger.Error("failed to get contract", "contract_id", contractID, "error", err)
		return nil, status.Errorf(codes.NotFound, "contract %s not found", contractID)
	}
	return &contractspb.GetContractResponse{Contract: utils.ToPBContract(c)}, nil
}

func (s *ExtractionService) ListContracts(ctx context.Context, req *contractspb.ListContractsRequest) (*contractspb.ListContractsResponse, error) {
	family := strings.TrimSpace(req.GetTemplateFamily())
	if family != "" && !constants.IsKnownFamily(family) {
		s.logger.Error("unknown template family for list", "family", family)
		return nil, status.Errorf(codes.InvalidArgument, "unknown template family %q", family)
	}

	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		s.logger.Error("invalid date window for list contracts", "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.logger.Info("listing contracts", "family", family, "from_date", fromDate, "to_date", toDate)
	recs, err := s.contractRepo.ListContracts(ctx, family, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list contracts", "family", family, "error", err)
		return nil, status.Errorf(codes.Internal, "list contracts: %v", err)
	}
	s.logger.Info("contracts listed successfully", "family", family, "count", len(recs))

	out := make([]*contractspb.Contract, 0, len(recs))
	for _, c := range recs {
		out = append(out, utils.ToPBContract(c))
	}
	return &contractspb.ListContractsResponse{Contracts: out}, nil
}

// parseDateWindow parses optional inclusive YYYY-MM-DD bounds.
func parseDateWindow(from, to string) (*time.Time, *time.Time, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(from); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, nil, err
		}
		fromDate = &t
	}
	if td := strings.TrimSpace(to); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, nil, err
		}
		toDate = &t
	}
	return fromDate, toDate, nil
}
