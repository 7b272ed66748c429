package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/internal/model"
)

func preloadShifts(db *gorm.DB) *gorm.DB {
	return db.Preload("Shifts", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("date ASC, start_time ASC, id ASC")
	})
}

func (r *implRepository) GetEmployee(ctx context.Context, id string) (model.Employee, error) {
	var row employeeRow
	err := preloadShifts(r.db.WithContext(ctx)).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Employee{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "sqlstore.GetEmployee: %v", err)
		return model.Employee{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return row.toModel(), nil
}

func (r *implRepository) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	var rows []employeeRow
	if err := preloadShifts(r.db.WithContext(ctx)).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "sqlstore.ListEmployees: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	out := make([]model.Employee, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

func (r *implRepository) UpsertEmployee(ctx context.Context, opt repository.UpsertEmployeeOptions) (model.Employee, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing employeeRow
		err := tx.First(&existing, "id = ?", opt.ID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := employeeRow{ID: opt.ID, Name: opt.Name, HourlyRate: opt.HourlyRate}
			if err := tx.Omit("Shifts").Create(&row).Error; err != nil {
				return err
			}
			return insertShifts(tx, opt.ID, opt.Shifts)
		case err != nil:
			return err
		}

		if err := tx.Model(&existing).Updates(map[string]any{
			"name":        opt.Name,
			"hourly_rate": opt.HourlyRate,
		}).Error; err != nil {
			return err
		}
		if !opt.ReplaceShifts {
			return nil
		}
		if err := tx.Where("employee_id = ?", opt.ID).Delete(&shiftRow{}).Error; err != nil {
			return err
		}
		return insertShifts(tx, opt.ID, opt.Shifts)
	})
	if err != nil {
		r.l.Errorf(ctx, "sqlstore.UpsertEmployee: %v", err)
		return model.Employee{}, fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}

	return r.GetEmployee(ctx, opt.ID)
}

func insertShifts(tx *gorm.DB, employeeID string, shifts []model.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	rows := toShiftRows(employeeID, shifts)
	return tx.Create(&rows).Error
}

func (r *implRepository) CountEmployees(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&employeeRow{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return int(n), nil
}
