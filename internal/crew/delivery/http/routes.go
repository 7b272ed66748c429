package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the crew admin API onto rg (normally /api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	employees := rg.Group("/employees")
	{
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.DetailEmployee)
		employees.PUT("/:id", h.UpsertEmployee)
		employees.GET("/:id/rota.xlsx", h.ExportRota)
	}

	pay := rg.Group("/pay-config")
	{
		pay.GET("", h.GetPayConfig)
		pay.PUT("", h.SavePayConfig)
		pay.GET("/next", h.NextPayday)
	}

	swaps := rg.Group("/swaps")
	{
		swaps.GET("", h.ListSwaps)
		swaps.POST("", h.CreateSwap)
	}
}
