package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"mccrew-ai/internal/crew"
)

// processUpsertEmployeeReq binds the body and takes the ID from the URI.
func (h *handler) processUpsertEmployeeReq(c *gin.Context) (upsertEmployeeReq, error) {
	var req upsertEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = strings.TrimSpace(c.Param("id"))
	if req.ID == "" {
		return req, crew.ErrEmployeeIDRequired
	}
	return req, nil
}

func (h *handler) processSavePayConfigReq(c *gin.Context) (savePayConfigReq, error) {
	var req savePayConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListSwapsReq(c *gin.Context) (listSwapsReq, error) {
	var req listSwapsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateSwapReq(c *gin.Context) (createSwapReq, error) {
	var req createSwapReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
