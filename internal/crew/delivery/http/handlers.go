package http

import (
	"github.com/gin-gonic/gin"

	"mccrew-ai/pkg/response"
)

// ListEmployees godoc
// @Summary     List employees
// @Description Returns every employee with their planned shifts.
// @Tags        Crew
// @Produce     json
// @Success     200 {object} listEmployeesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/employees [GET]
func (h *handler) ListEmployees(c *gin.Context) {
	ctx := c.Request.Context()

	emps, err := h.uc.ListEmployees(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newListEmployeesResp(emps))
}

// DetailEmployee godoc
// @Summary     Get employee
// @Tags        Crew
// @Produce     json
// @Param       id path string true "Employee ID"
// @Success     200 {object} employeeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/employees/{id} [GET]
func (h *handler) DetailEmployee(c *gin.Context) {
	ctx := c.Request.Context()

	emp, err := h.uc.GetEmployee(ctx, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, newEmployeeResp(emp))
}

// UpsertEmployee godoc
// @Summary     Create or overwrite an employee
// @Description Name defaults to "Crew <id>" and rate to 11.44 when omitted. Passing shifts replaces the rota.
// @Tags        Crew
// @Accept      json
// @Produce     json
// @Param       id   path string            true "Employee ID"
// @Param       body body upsertEmployeeReq true "Employee data"
// @Success     200 {object} employeeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/employees/{id} [PUT]
func (h *handler) UpsertEmployee(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpsertEmployeeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	emp, err := h.uc.UpsertEmployee(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, newEmployeeResp(emp))
}

// GetPayConfig godoc
// @Summary     Get pay calendar
// @Tags        Pay
// @Produce     json
// @Success     200 {object} payConfigResp
// @Router      /api/v1/pay-config [GET]
func (h *handler) GetPayConfig(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.uc.GetPayConfig(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, newPayConfigResp(cfg))
}

// SavePayConfig godoc
// @Summary     Save pay calendar
// @Description Frequency is weekly, biweekly or monthly. An empty next_payday keeps the current one.
// @Tags        Pay
// @Accept      json
// @Produce     json
// @Param       body body savePayConfigReq true "Pay calendar"
// @Success     200 {object} payConfigResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/pay-config [PUT]
func (h *handler) SavePayConfig(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSavePayConfigReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cfg, err := h.uc.SavePayConfig(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.l.Infof(ctx, "crew.delivery.http.SavePayConfig: %s, next payday %s", cfg.Frequency, cfg.NextPayday)
	response.OK(c, newPayConfigResp(cfg))
}

// NextPayday godoc
// @Summary     Next payday
// @Description Rolls a lapsed payday forward and returns the next and following paydays.
// @Tags        Pay
// @Produce     json
// @Success     200 {object} nextPaydayResp
// @Router      /api/v1/pay-config/next [GET]
func (h *handler) NextPayday(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.NextPayday(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newNextPaydayResp(out))
}

// ListSwaps godoc
// @Summary     List swap requests
// @Description Newest first. Defaults to the latest 5.
// @Tags        Swaps
// @Produce     json
// @Param       employee_id query string false "Filter by employee"
// @Param       limit       query int    false "Max results (default 5)"
// @Success     200 {object} listSwapsResp
// @Router      /api/v1/swaps [GET]
func (h *handler) ListSwaps(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListSwapsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	swaps, err := h.uc.ListSwaps(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newListSwapsResp(swaps))
}

// CreateSwap godoc
// @Summary     Request a shift swap
// @Tags        Swaps
// @Accept      json
// @Produce     json
// @Param       body body createSwapReq true "Swap request"
// @Success     200 {object} swapResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/swaps [POST]
func (h *handler) CreateSwap(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSwapReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	swap, err := h.uc.CreateSwap(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, newSwapResp(swap))
}
