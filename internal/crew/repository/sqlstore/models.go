package sqlstore

import (
	"time"

	"mccrew-ai/internal/model"
)

type employeeRow struct {
	ID         string     `gorm:"primaryKey;size:32"`
	Name       string     `gorm:"size:128;not null"`
	HourlyRate float64    `gorm:"not null"`
	Shifts     []shiftRow `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (employeeRow) TableName() string { return "employees" }

type shiftRow struct {
	ID         uint   `gorm:"primaryKey"`
	EmployeeID string `gorm:"size:32;index;not null"`
	Date       string `gorm:"size:10;not null"`
	Start      string `gorm:"column:start_time;size:5;not null"`
	End        string `gorm:"column:end_time;size:5;not null"`
}

func (shiftRow) TableName() string { return "planned_shifts" }

// payConfigRow is a singleton keyed by payConfigID.
type payConfigRow struct {
	ID         uint   `gorm:"primaryKey"`
	Frequency  string `gorm:"size:16;not null"`
	NextPayday string `gorm:"size:10;not null"`
	UpdatedAt  time.Time
}

func (payConfigRow) TableName() string { return "pay_config" }

const payConfigID = 1

type swapRow struct {
	ID         string    `gorm:"primaryKey;size:36"`
	EmployeeID string    `gorm:"size:32;index"`
	Date       string    `gorm:"size:10;not null"`
	Start      string    `gorm:"column:start_time;size:5;not null"`
	End        string    `gorm:"column:end_time;size:5;not null"`
	Note       string    `gorm:"size:500"`
	CreatedAt  time.Time `gorm:"index"`
}

func (swapRow) TableName() string { return "swap_requests" }

func (r employeeRow) toModel() model.Employee {
	shifts := make([]model.Shift, len(r.Shifts))
	for i, s := range r.Shifts {
		shifts[i] = model.Shift{Date: s.Date, Start: s.Start, End: s.End}
	}
	return model.Employee{
		ID:            r.ID,
		Name:          r.Name,
		HourlyRate:    r.HourlyRate,
		PlannedShifts: shifts,
	}
}

func toShiftRows(employeeID string, shifts []model.Shift) []shiftRow {
	rows := make([]shiftRow, len(shifts))
	for i, s := range shifts {
		rows[i] = shiftRow{EmployeeID: employeeID, Date: s.Date, Start: s.Start, End: s.End}
	}
	return rows
}

func (r swapRow) toModel() model.SwapRequest {
	return model.SwapRequest{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		Start:      r.Start,
		End:        r.End,
		Note:       r.Note,
		CreatedAt:  r.CreatedAt,
	}
}
