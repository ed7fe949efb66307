package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/xpenseai/expense-tracker/constants"
	xpensepb "github.com/xpenseai/expense-tracker/gen/proto/xpense/v1"
	"github.com/xpenseai/expense-tracker/internal/entity"
	"github.com/xpenseai/expense-tracker/internal/export"
	"github.com/xpenseai/expense-tracker/internal/repository"
	"github.com/xpenseai/expense-tracker/internal/utils"
)

// DescriptionClassifier fills in a category for manual entries that arrive
// without one, using the same model path as scanned items.
type DescriptionClassifier interface {
	ClassifyDescription(ctx context.Context, description string) constants.Category
}

type ExpensesService struct {
	xpensepb.UnimplementedExpensesServiceServer
	expenseRepo repository.ExpenseRepository
	exporter    *export.Service
	classifier  DescriptionClassifier
	logger      *slog.Logger
}

func NewExpensesService(expenseRepo repository.ExpenseRepository, exporter *export.Service, classifier DescriptionClassifier, logger *slog.Logger) *ExpensesService {
	return &ExpensesService{
		expenseRepo: expenseRepo,
		exporter:    exporter,
		classifier:  classifier,
		logger:      logger,
	}
}

func (s *ExpensesService) AddExpense(ctx context.Context, req *xpensepb.AddExpenseRequest) (*xpensepb.AddExpenseResponse, error) {
	if strings.TrimSpace(req.GetDescription()) == "" {
		return nil, status.Error(codes.InvalidArgument, "description is required")
	}
	if req.GetAmount() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}
	category, _ := constants.Canonicalize(req.GetCategory())
	if strings.TrimSpace(req.GetCategory()) == "" && s.classifier != nil {
		category = s.classifier.ClassifyDescription(ctx, strings.TrimSpace(req.GetDescription()))
	}

	// dates are day-granular; midnight keeps today's entries inside the
	// midnight-anchored period bounds
	now := time.Now()
	y, m, d := now.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if d := strings.TrimSpace(req.GetDate()); d != "" {
		parsed, err := utils.ParseYMD(d)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "date invalid (YYYY-MM-DD): %v", err)
		}
		date = parsed
	}

	exp, err := s.expenseRepo.Create(ctx, entity.Expense{
		Description: strings.TrimSpace(req.GetDescription()),
		Amount:      req.GetAmount(),
		Date:        date,
		Category:    string(category),
	})
	if err != nil {
		s.logger.Error("failed to add expense", "error", err)
		return nil, status.Errorf(codes.Internal, "add expense: %v", err)
	}
	return &xpensepb.AddExpenseResponse{Expense: utils.ToPBExpense(exp)}, nil
}

func (s *ExpensesService) ListExpenses(ctx context.Context, req *xpensepb.ListExpensesRequest) (*xpensepb.ListExpensesResponse, error) {
	filter, err := s.buildFilter(req.GetPeriod(), req.GetFromDate(), req.GetToDate(), req.GetCategory())
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err)
		return nil, status.Errorf(codes.Internal, "list expenses: %v", err)
	}

	out := make([]*xpensepb.Expense, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, utils.ToPBExpense(e))
	}
	return &xpensepb.ListExpensesResponse{Expenses: out}, nil
}

func (s *ExpensesService) DeleteExpense(ctx context.Context, req *xpensepb.DeleteExpenseRequest) (*xpensepb.DeleteExpenseResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete expense", "id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "delete expense: %v", err)
	}
	return &xpensepb.DeleteExpenseResponse{}, nil
}

func (s *ExpensesService) ExportExpenses(ctx context.Context, req *xpensepb.ExportExpensesRequest) (*xpensepb.ExportExpensesResponse, error) {
	filter, err := s.buildFilter("", req.GetFromDate(), req.GetToDate(), req.GetCategory())
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.ExportExpensesXLSX(ctx, filter.From, filter.To, filter.Category)
	if err != nil {
		s.logger.Error("failed to export expenses", "error", err)
		return nil, status.Errorf(codes.Internal, "export expenses: %v", err)
	}
	return &xpensepb.ExportExpensesResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("expenses-%s.xlsx", time.Now().Format("2006-01-02")),
	}, nil
}

// buildFilter merges the named period with explicit bounds; explicit bounds
// win.
func (s *ExpensesService) buildFilter(period, fromDate, toDate, category string) (repository.ListFilter, error) {
	from, to, err := repository.PeriodRange(period, time.Now())
	if err != nil {
		return repository.ListFilter{}, status.Error(codes.InvalidArgument, err.Error())
	}

	if fd := strings.TrimSpace(fromDate); fd != "" {
		parsed, err := utils.ParseYMD(fd)
		if err != nil {
			return repository.ListFilter{}, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		from = &parsed
	}
	if td := strings.TrimSpace(toDate); td != "" {
		parsed, err := utils.ParseYMD(td)
		if err != nil {
			return repository.ListFilter{}, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		to = &parsed
	}

	return repository.ListFilter{From: from, To: to, Category: strings.TrimSpace(category)}, nil
}
