package http

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"mccrew-ai/internal/crew"
	"mccrew-ai/internal/model"
	"mccrew-ai/pkg/datemath"
)

const (
	rotaSheet       = "Rota"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportRota godoc
// @Summary     Download an employee's rota
// @Description Planned shifts with hours and the demo pay estimate, as an Excel workbook.
// @Tags        Crew
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       id path string true "Employee ID"
// @Success     200 {file} file
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/employees/{id}/rota.xlsx [GET]
func (h *handler) ExportRota(c *gin.Context) {
	ctx := c.Request.Context()

	emp, err := h.uc.GetEmployee(ctx, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	data, err := buildRotaWorkbook(emp)
	if err != nil {
		h.writeError(c, fmt.Errorf("build rota workbook: %w", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="rota-%s.xlsx"`, emp.ID))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// buildRotaWorkbook renders one row per planned shift plus a totals row.
func buildRotaWorkbook(emp model.Employee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(rotaSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	f.SetCellValue(rotaSheet, "A1", fmt.Sprintf("%s (%s) - £%.2f/hr", emp.Name, emp.ID, emp.HourlyRate))
	f.MergeCell(rotaSheet, "A1", "F1")
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err == nil {
		f.SetCellStyle(rotaSheet, "A1", "A1", titleStyle)
	}

	headers := []string{"Date", "Day", "Start", "End", "Hours", "Est. Pay (£)"}
	for i, hdr := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(rotaSheet, cell, hdr)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DA291C"}, Pattern: 1},
	})
	if err == nil {
		f.SetCellStyle(rotaSheet, "A3", "F3", headerStyle)
	}

	shifts := append([]model.Shift(nil), emp.PlannedShifts...)
	sort.SliceStable(shifts, func(i, j int) bool {
		if shifts[i].Date != shifts[j].Date {
			return shifts[i].Date < shifts[j].Date
		}
		return shifts[i].Start < shifts[j].Start
	})

	row := 4
	var totalHours, totalPay float64
	for _, s := range shifts {
		est := crew.EstimateShiftPay(s, emp.HourlyRate)
		day := ""
		if t, err := time.Parse(datemath.DateLayout, s.Date); err == nil {
			day = t.Weekday().String()[:3]
		}
		f.SetSheetRow(rotaSheet, fmt.Sprintf("A%d", row), &[]any{
			s.Date, day, s.Start, s.End, round2(est.Hours), round2(est.Total),
		})
		totalHours += est.Hours
		totalPay += est.Total
		row++
	}

	f.SetSheetRow(rotaSheet, fmt.Sprintf("A%d", row), &[]any{"Total", "", "", "", round2(totalHours), round2(totalPay)})
	f.SetColWidth(rotaSheet, "A", "A", 12)
	f.SetColWidth(rotaSheet, "F", "F", 14)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
