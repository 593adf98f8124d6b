package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"staff-admin/internal/database"
	"staff-admin/internal/models"

	"github.com/gin-gonic/gin"
)

func ListExpenses(c *gin.Context) {
	var expenses []models.Expense
	database.DB.
		Preload("Provider").
		Order("spent_at desc").
		Find(&expenses)

	render(c, http.StatusOK, "expenses_list.html", gin.H{
		"expenses": expenses,
	})
}

func ShowNewExpense(c *gin.Context) {
	var providers []models.Provider
	database.DB.Order("name asc").Find(&providers)

	render(c, http.StatusOK, "expenses_new.html", gin.H{
		"providers": providers,
		"error":     "",
	})
}

func CreateExpense(c *gin.Context) {
	amountStr := strings.TrimSpace(c.PostForm("amount"))
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || amount <= 0 {
		renderExpenseError(c, "Сумма должна быть положительным числом")
		return
	}

	spentAt, msg := parseFormDate(c.PostForm("spent_at"))
	if msg != "" {
		renderExpenseError(c, "Дата расхода: "+msg)
		return
	}

	providerID, msg := parseFormID(c.PostForm("provider_id"))
	if msg != "" {
		renderExpenseError(c, "Поставщик: "+msg)
		return
	}

	expense := models.Expense{
		ProviderID:  providerID,
		Amount:      amount,
		SpentAt:     spentAt,
		Description: strings.TrimSpace(c.PostForm("description")),
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		renderExpenseError(c, "Ошибка сохранения расхода в БД")
		return
	}

	c.Redirect(http.StatusFound, "/expenses")
}

func renderExpenseError(c *gin.Context, msg string) {
	var providers []models.Provider
	database.DB.Order("name asc").Find(&providers)

	render(c, http.StatusBadRequest, "expenses_new.html", gin.H{
		"providers": providers,
		"error":     msg,
	})
}
