package handlers

import (
	"net/http"
	"strconv"

	"staff-admin/internal/audit"
	"staff-admin/internal/database"
	"staff-admin/internal/models"

	"github.com/gin-gonic/gin"
)

// история изменений карточки сотрудника
func ShowWorkerHistory(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID сотрудника")
		return
	}

	var worker models.Worker
	if err := database.DB.First(&worker, id).Error; err != nil {
		c.String(http.StatusNotFound, "Сотрудник не найден")
		return
	}

	rows, err := audit.GetHistory(database.DB, audit.EntityWorker, worker.ID, audit.WorkerFields)
	if err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки истории")
		return
	}

	render(c, http.StatusOK, "worker_history.html", gin.H{
		"worker": worker,
		"rows":   rows,
	})
}
