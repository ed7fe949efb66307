package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/xpenseai/expense-tracker/constants"
	xpensepb "github.com/xpenseai/expense-tracker/gen/proto/xpense/v1"
	"github.com/xpenseai/expense-tracker/internal/repository"
	"github.com/xpenseai/expense-tracker/internal/utils"
)

type BudgetsService struct {
	xpensepb.UnimplementedBudgetsServiceServer
	budgetRepo repository.BudgetRepository
	logger     *slog.Logger
}

func NewBudgetsService(budgetRepo repository.BudgetRepository, logger *slog.Logger) *BudgetsService {
	return &BudgetsService{budgetRepo: budgetRepo, logger: logger}
}

func (s *BudgetsService) UpsertBudget(ctx context.Context, req *xpensepb.UpsertBudgetRequest) (*xpensepb.UpsertBudgetResponse, error) {
	category, known := constants.Canonicalize(req.GetCategory())
	if !known {
		return nil, status.Errorf(codes.InvalidArgument, "unknown category: %q", req.GetCategory())
	}
	if req.GetAmount() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}

	b, err := s.budgetRepo.Upsert(ctx, repository.UpsertBudgetRequest{
		Category:   string(category),
		Amount:     req.GetAmount(),
		PeriodType: strings.TrimSpace(req.GetPeriodType()),
		AutoReset:  req.GetAutoReset(),
	})
	if err != nil {
		s.logger.Error("failed to upsert budget", "category", category, "error", err)
		return nil, status.Errorf(codes.Internal, "upsert budget: %v", err)
	}
	return &xpensepb.UpsertBudgetResponse{Budget: utils.ToPBBudget(b)}, nil
}

func (s *BudgetsService) ListBudgets(ctx context.Context, _ *xpensepb.ListBudgetsRequest) (*xpensepb.ListBudgetsResponse, error) {
	budgets, err := s.budgetRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list budgets", "error", err)
		return nil, status.Errorf(codes.Internal, "list budgets: %v", err)
	}

	out := make([]*xpensepb.Budget, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, utils.ToPBBudget(b))
	}
	return &xpensepb.ListBudgetsResponse{Budgets: out}, nil
}

func (s *BudgetsService) DeleteBudget(ctx context.Context, req *xpensepb.DeleteBudgetRequest) (*xpensepb.DeleteBudgetResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.budgetRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete budget", "id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "delete budget: %v", err)
	}
	return &xpensepb.DeleteBudgetResponse{}, nil
}
