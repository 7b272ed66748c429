package http

import (
	"mccrew-ai/internal/crew"
	"mccrew-ai/internal/model"
	"mccrew-ai/pkg/response"
)

// --- Request DTOs ---

type shiftReq struct {
	Date  string `json:"date"  binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end"   binding:"required"`
}

type upsertEmployeeReq struct {
	ID         string     `json:"-"` // populated from URI param
	Name       string     `json:"name"        binding:"max=128"`
	HourlyRate float64    `json:"hourly_rate"`
	Shifts     []shiftReq `json:"shifts"      binding:"omitempty,dive"`
}

func (r upsertEmployeeReq) toInput() crew.UpsertEmployeeInput {
	in := crew.UpsertEmployeeInput{
		ID:         r.ID,
		Name:       r.Name,
		HourlyRate: r.HourlyRate,
	}
	if r.Shifts != nil {
		in.Shifts = make([]model.Shift, len(r.Shifts))
		for i, s := range r.Shifts {
			in.Shifts[i] = model.Shift{Date: s.Date, Start: s.Start, End: s.End}
		}
	}
	return in
}

type savePayConfigReq struct {
	Frequency  string `json:"frequency"   binding:"required"`
	NextPayday string `json:"next_payday"`
}

func (r savePayConfigReq) toInput() crew.SavePayConfigInput {
	return crew.SavePayConfigInput{
		Frequency:  model.PayFrequency(r.Frequency),
		NextPayday: r.NextPayday,
	}
}

type listSwapsReq struct {
	EmployeeID string `form:"employee_id"`
	Limit      int    `form:"limit"`
}

func (r listSwapsReq) toInput() crew.ListSwapsInput {
	limit := r.Limit
	if limit < 0 || limit > 100 {
		limit = 0
	}
	return crew.ListSwapsInput{EmployeeID: r.EmployeeID, Limit: limit}
}

type createSwapReq struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"  binding:"required"`
	Start      string `json:"start" binding:"required"`
	End        string `json:"end"   binding:"required"`
	Note       string `json:"note"  binding:"max=500"`
}

func (r createSwapReq) toInput() crew.CreateSwapInput {
	return crew.CreateSwapInput{
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		Start:      r.Start,
		End:        r.End,
		Note:       r.Note,
	}
}

// --- Response DTOs ---

type shiftResp struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type employeeResp struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	HourlyRate float64     `json:"hourly_rate"`
	Shifts     []shiftResp `json:"shifts"`
}

func newEmployeeResp(e model.Employee) employeeResp {
	shifts := make([]shiftResp, len(e.PlannedShifts))
	for i, s := range e.PlannedShifts {
		shifts[i] = shiftResp{Date: s.Date, Start: s.Start, End: s.End}
	}
	return employeeResp{
		ID:         e.ID,
		Name:       e.Name,
		HourlyRate: e.HourlyRate,
		Shifts:     shifts,
	}
}

type listEmployeesResp struct {
	Employees []employeeResp `json:"employees"`
}

func (h *handler) newListEmployeesResp(emps []model.Employee) listEmployeesResp {
	out := make([]employeeResp, len(emps))
	for i, e := range emps {
		out[i] = newEmployeeResp(e)
	}
	return listEmployeesResp{Employees: out}
}

type payConfigResp struct {
	Frequency  string `json:"frequency"`
	NextPayday string `json:"next_payday"`
}

func newPayConfigResp(cfg model.PayConfig) payConfigResp {
	return payConfigResp{Frequency: string(cfg.Frequency), NextPayday: cfg.NextPayday}
}

type nextPaydayResp struct {
	Frequency     string `json:"frequency"`
	NextPayday    string `json:"next_payday"`
	Following     string `json:"following_payday"`
	RolledForward bool   `json:"rolled_forward"`
}

func (h *handler) newNextPaydayResp(out crew.NextPaydayOutput) nextPaydayResp {
	return nextPaydayResp{
		Frequency:     string(out.Frequency),
		NextPayday:    out.NextPayday,
		Following:     out.Following,
		RolledForward: out.RolledForward,
	}
}

type swapResp struct {
	ID         string            `json:"id"`
	EmployeeID string            `json:"employee_id,omitempty"`
	Date       string            `json:"date"`
	Start      string            `json:"start"`
	End        string            `json:"end"`
	Note       string            `json:"note,omitempty"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newSwapResp(s model.SwapRequest) swapResp {
	return swapResp{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Date:       s.Date,
		Start:      s.Start,
		End:        s.End,
		Note:       s.Note,
		CreatedAt:  response.DateTime(s.CreatedAt),
	}
}

type listSwapsResp struct {
	Swaps []swapResp `json:"swaps"`
}

func (h *handler) newListSwapsResp(swaps []model.SwapRequest) listSwapsResp {
	out := make([]swapResp, len(swaps))
	for i, s := range swaps {
		out[i] = newSwapResp(s)
	}
	return listSwapsResp{Swaps: out}
}
