// api/controller/dashboard_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopora/api/service"
	"github.com/shopora/api/util"
)

type DashboardController struct {
	statsService service.IStatsService
}

func NewDashboardController(statsService service.IStatsService) *DashboardController {
	return &DashboardController{
		statsService: statsService,
	}
}

// RegisterRoutes registers the API routes
func (dc *DashboardController) RegisterRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/stats", adminOnly, dc.Stats)
		dashboard.GET("/pie", adminOnly, dc.Pie)
		dashboard.GET("/bar", adminOnly, dc.Bar)
		dashboard.GET("/line", adminOnly, dc.Line)
	}
}

// Stats endpoint
func (dc *DashboardController) Stats(c *gin.Context) {
	stats, err := dc.statsService.DashboardStats(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to compute dashboard stats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// Pie endpoint
func (dc *DashboardController) Pie(c *gin.Context) {
	charts, err := dc.statsService.PieCharts(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to compute pie charts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "charts": charts})
}

// Bar endpoint
func (dc *DashboardController) Bar(c *gin.Context) {
	charts, err := dc.statsService.BarCharts(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to compute bar charts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "charts": charts})
}

// Line endpoint
func (dc *DashboardController) Line(c *gin.Context) {
	charts, err := dc.statsService.LineCharts(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to compute line charts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "charts": charts})
}
