package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/closingdesk/contract-extract/constants"
	v1 "github.com/closingdesk/contract-extract/gen/proto/contracts/v1"
	"github.com/closingdesk/contract-extract/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportContracts(ctx context.Context, req *v1.ExportContractsRequest) (*v1.ExportContractsResponse, error) {
	family := strings.TrimSpace(req.GetTemplateFamily())
	if family != "" && !constants.IsKnownFamily(family) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown template family %q", family)
	}

	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "date window invalid (YYYY-MM-DD): %v", err)
	}

	xlsx, err := s.svc.ExportContractsXLSX(ctx, family, fromDate, toDate)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "family", family, "err", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}

	return &v1.ExportContractsResponse{Xlsx: xlsx}, nil
}
