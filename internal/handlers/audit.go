package handlers

import (
	"net/http"

	"staff-admin/internal/database"
	"staff-admin/internal/models"

	"github.com/gin-gonic/gin"
)

// общий журнал по всем сущностям, свежие записи сверху
func ListAuditEntries(c *gin.Context) {
	var entries []models.AuditEntry
	database.DB.
		Preload("Actor").
		Order("recorded_at desc, id desc").
		Limit(200).
		Find(&entries)

	render(c, http.StatusOK, "audit_list.html", gin.H{
		"entries": entries,
	})
}
