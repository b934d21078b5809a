// api/controller/audit_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopora/api/audit"
	shopora_errors "github.com/shopora/api/errors"
	"github.com/shopora/api/util"
	helper_util "github.com/shopora/api/util/helper"
)

type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	logs := r.Group("/audit")
	{
		logs.GET("/logs", adminOnly, ac.QueryLogs)
	}
}

// QueryLogs endpoint. Defaults to the trailing 24 hours when no time
// frame is given.
func (ac *AuditController) QueryLogs(c *gin.Context) {
	to := time.Now()
	from := to.Add(-24 * time.Hour)

	if s := c.Query("from"); s != "" {
		t, err := helper_util.ParseTime(s)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid 'from' timestamp", err)
			return
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := helper_util.ParseTime(s)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid 'to' timestamp", err)
			return
		}
		to = t
	}

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", shopora_errors.ErrInvalidRequest)
		return
	}

	logs, err := ac.auditService.QueryLogs(c, from, to, c.Query("user"), c.Query("resource"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit logs", err)
		return
	}

	if offset > len(logs) {
		offset = len(logs)
	}
	end := offset + limit
	if end > len(logs) {
		end = len(logs)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "logs": logs[offset:end], "total": len(logs)})
}
