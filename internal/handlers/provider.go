package handlers

import (
	"net/http"
	"strings"

	"staff-admin/internal/database"
	"staff-admin/internal/models"

	"github.com/gin-gonic/gin"
)

func ListProviders(c *gin.Context) {
	var providers []models.Provider
	database.DB.Order("name asc").Find(&providers)

	render(c, http.StatusOK, "providers_list.html", gin.H{
		"providers": providers,
	})
}

func ShowNewProvider(c *gin.Context) {
	render(c, http.StatusOK, "providers_new.html", gin.H{"error": ""})
}

func CreateProvider(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	inn := strings.TrimSpace(c.PostForm("inn"))
	phone := strings.TrimSpace(c.PostForm("phone"))
	email := strings.TrimSpace(c.PostForm("email"))
	notes := strings.TrimSpace(c.PostForm("notes"))

	if len(name) < 3 {
		render(c, http.StatusBadRequest, "providers_new.html", gin.H{
			"error": "Название поставщика должно быть не короче 3 символов",
		})
		return
	}

	// --- ПРОВЕРКА УНИКАЛЬНОСТИ ИНН ---
	if inn != "" {
		var count int64
		database.DB.Model(&models.Provider{}).
			Where("inn = ?", inn).
			Count(&count)

		if count > 0 {
			render(c, http.StatusBadRequest, "providers_new.html", gin.H{
				"error": "Поставщик с таким ИНН уже существует",
			})
			return
		}
	}

	provider := models.Provider{
		Name:  name,
		INN:   inn,
		Phone: phone,
		Email: email,
		Notes: notes,
	}

	if err := database.DB.Create(&provider).Error; err != nil {
		render(c, http.StatusInternalServerError, "providers_new.html", gin.H{
			"error": "Ошибка сохранения поставщика в БД",
		})
		return
	}

	c.Redirect(http.StatusFound, "/providers")
}
