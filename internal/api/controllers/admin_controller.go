package controllers

import (
	"github.com/gin-gonic/gin"
	"templify/internal/services"
	"templify/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

func (a *AdminController) GetStats(c *gin.Context) {
	stats, err := a.adminService.GetStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}

func (a *AdminController) RecentOrders(c *gin.Context) {
	orders, err := a.adminService.RecentOrders(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Recent orders fetched successfully")
}
