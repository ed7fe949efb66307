package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/xpenseai/expense-tracker/constants"
	xpensepb "github.com/xpenseai/expense-tracker/gen/proto/xpense/v1"
	"github.com/xpenseai/expense-tracker/internal/scan"
	"github.com/xpenseai/expense-tracker/internal/utils"
)

type ScanServiceServer struct {
	xpensepb.UnimplementedScanServiceServer
	session *scan.Session
	logger  *slog.Logger
}

func NewScanService(session *scan.Session, logger *slog.Logger) *ScanServiceServer {
	return &ScanServiceServer{session: session, logger: logger}
}

// ScanReceipt streams stage/percent updates while the pipeline runs and ends
// the stream with the review-ready result.
func (s *ScanServiceServer) ScanReceipt(req *xpensepb.ScanReceiptRequest, stream xpensepb.ScanService_ScanReceiptServer) error {
	if len(req.GetImage()) == 0 {
		return status.Error(codes.InvalidArgument, "image is required")
	}

	// progress callbacks arrive from pipeline goroutines; sends must not race
	var mu sync.Mutex
	onProgress := func(stage constants.ScanStage, pct int) {
		mu.Lock()
		defer mu.Unlock()
		err := stream.Send(&xpensepb.ScanReceiptResponse{
			Payload: &xpensepb.ScanReceiptResponse_Progress{
				Progress: &xpensepb.ScanProgress{
					Stage:   string(stage),
					Percent: int32(pct),
				},
			},
		})
		if err != nil {
			s.logger.Debug("scan progress send failed", "error", err)
		}
	}

	res, err := s.session.Start(stream.Context(), scan.Upload{
		Data:        req.GetImage(),
		Filename:    req.GetFilename(),
		ContentType: req.GetContentType(),
	}, onProgress)
	if err != nil {
		s.logger.Error("scan failed", "error", err)
		if _, ok := status.FromError(err); ok {
			return err
		}
		return status.Errorf(codes.Internal, "scan: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	return stream.Send(&xpensepb.ScanReceiptResponse{
		Payload: &xpensepb.ScanReceiptResponse_Result{
			Result: utils.ToPBScanResult(res),
		},
	})
}

func (s *ScanServiceServer) CommitItem(ctx context.Context, req *xpensepb.CommitItemRequest) (*xpensepb.CommitItemResponse, error) {
	itemID, err := uuid.Parse(req.GetItemId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "item_id must be a UUID")
	}
	res, err := s.session.Commit(ctx, req.GetSessionId(), itemID)
	if err != nil {
		return nil, asStatus(err, "commit item")
	}
	return &xpensepb.CommitItemResponse{Result: utils.ToPBScanResult(res)}, nil
}

func (s *ScanServiceServer) CommitAll(ctx context.Context, req *xpensepb.CommitAllRequest) (*xpensepb.CommitAllResponse, error) {
	res, err := s.session.CommitAll(ctx, req.GetSessionId())
	if err != nil {
		return nil, asStatus(err, "commit all")
	}
	return &xpensepb.CommitAllResponse{Result: utils.ToPBScanResult(res)}, nil
}

func (s *ScanServiceServer) ResetSession(_ context.Context, req *xpensepb.ResetSessionRequest) (*xpensepb.ResetSessionResponse, error) {
	if err := s.session.Reset(req.GetSessionId()); err != nil {
		return nil, asStatus(err, "reset session")
	}
	return &xpensepb.ResetSessionResponse{}, nil
}

func (s *ScanServiceServer) ResumeSession(_ context.Context, req *xpensepb.ResumeSessionRequest) (*xpensepb.ResumeSessionResponse, error) {
	res, found, err := s.session.Resume(req.GetSessionId())
	if err != nil {
		return nil, asStatus(err, "resume session")
	}
	if !found {
		return &xpensepb.ResumeSessionResponse{Found: false}, nil
	}
	return &xpensepb.ResumeSessionResponse{
		Found:  true,
		Result: utils.ToPBScanResult(res),
	}, nil
}

// asStatus passes through errors that already carry a gRPC code.
func asStatus(err error, op string) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Errorf(codes.Internal, "%s: %v", op, err)
}
