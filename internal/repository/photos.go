package repository

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/xpenseai/expense-tracker/constants"
	"github.com/xpenseai/expense-tracker/gen/ent"
	"github.com/xpenseai/expense-tracker/gen/ent/receiptphoto"
	"github.com/xpenseai/expense-tracker/internal/entity"
	"github.com/xpenseai/expense-tracker/internal/utils"
)

type PhotoRepository interface {
	ArchivePhoto(ctx context.Context, data []byte, ext string, summary entity.ReceiptSummary, itemCount int) (string, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.ReceiptPhoto, error)
	List(ctx context.Context) ([]*entity.ReceiptPhoto, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type photoRepository struct {
	client *ent.Client
	dir    string
	logger *slog.Logger
}

func NewPhotoRepository(client *ent.Client, dir string, logger *slog.Logger) PhotoRepository {
	return &photoRepository{client: client, dir: dir, logger: logger}
}

// ArchivePhoto writes the original image to the photo directory and records
// it. The returned id is what drafts carry as their receipt reference.
func (r *photoRepository) ArchivePhoto(ctx context.Context, data []byte, ext string, summary entity.ReceiptSummary, itemCount int) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty photo")
	}
	ext = constants.NormalizeExt(ext)
	if ext == "" {
		ext = "png"
	}

	id := uuid.New()
	if err := os.MkdirAll(r.dir, 0o750); err != nil {
		return "", fmt.Errorf("photo dir: %w", err)
	}
	path := filepath.Join(r.dir, id.String()+"."+ext)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}

	builder := r.client.ReceiptPhoto.Create().
		SetID(id).
		SetStore(summary.Store).
		SetDate(time.Now()).
		SetItemCount(itemCount).
		SetPath(path)
	if total, err := strconv.ParseFloat(summary.Total, 64); err == nil && total > 0 {
		builder = builder.SetTotal(total)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		// keep disk and database consistent
		if rmErr := os.Remove(path); rmErr != nil {
			r.logger.Warn("orphan photo file left behind", "path", path, "error", rmErr)
		}
		r.logger.Error("failed to record receipt photo", "error", err)
		return "", err
	}

	r.logger.Info("archived receipt photo", "id", row.ID, "store", summary.Store, "items", itemCount)
	return row.ID.String(), nil
}

func (r *photoRepository) Get(ctx context.Context, id uuid.UUID) (*entity.ReceiptPhoto, error) {
	row, err := r.client.ReceiptPhoto.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToReceiptPhoto(row), nil
}

func (r *photoRepository) List(ctx context.Context) ([]*entity.ReceiptPhoto, error) {
	rows, err := r.client.ReceiptPhoto.Query().
		Order(ent.Desc(receiptphoto.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipt photos", "error", err)
		return nil, err
	}
	result := make([]*entity.ReceiptPhoto, len(rows))
	for i, row := range rows {
		result[i] = utils.ToReceiptPhoto(row)
	}
	return result, nil
}

// Delete removes the record and the image file. A missing file is not an
// error; the record is authoritative.
func (r *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	row, err := r.client.ReceiptPhoto.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := r.client.ReceiptPhoto.DeleteOneID(id).Exec(ctx); err != nil {
		return err
	}
	if err := os.Remove(row.Path); err != nil && !os.IsNotExist(err) {
		r.logger.Warn("failed to remove photo file", "path", row.Path, "error", err)
	}
	return nil
}
