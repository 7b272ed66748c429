package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/internal/model"
)

func (r *implRepository) GetPayConfig(ctx context.Context) (model.PayConfig, error) {
	var row payConfigRow
	err := r.db.WithContext(ctx).First(&row, payConfigID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PayConfig{}, repository.ErrNotFound
	}
	if err != nil {
		return model.PayConfig{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return model.PayConfig{
		Frequency:  model.PayFrequency(row.Frequency),
		NextPayday: row.NextPayday,
	}, nil
}

func (r *implRepository) SavePayConfig(ctx context.Context, cfg model.PayConfig) error {
	row := payConfigRow{
		ID:         payConfigID,
		Frequency:  string(cfg.Frequency),
		NextPayday: cfg.NextPayday,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"frequency", "next_payday", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		r.l.Errorf(ctx, "sqlstore.SavePayConfig: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	return nil
}
