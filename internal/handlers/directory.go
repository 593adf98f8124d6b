package handlers

import (
	"net/http"
	"strings"

	"staff-admin/internal/database"
	"staff-admin/internal/models"

	"github.com/gin-gonic/gin"
)

// справочники: должности, отделы, территории — одна страница со всеми тремя

func ShowDirectories(c *gin.Context) {
	var (
		jobRoles    []models.JobRole
		departments []models.Department
		territories []models.Territory
	)
	database.DB.Order("name asc").Find(&jobRoles)
	database.DB.Order("name asc").Find(&departments)
	database.DB.Order("name asc").Find(&territories)

	render(c, http.StatusOK, "directories.html", gin.H{
		"jobRoles":    jobRoles,
		"departments": departments,
		"territories": territories,
	})
}

func CreateJobRole(c *gin.Context) {
	createDirectoryEntry(c, func(name string) error {
		return database.DB.Create(&models.JobRole{Name: name}).Error
	})
}

func CreateDepartment(c *gin.Context) {
	createDirectoryEntry(c, func(name string) error {
		return database.DB.Create(&models.Department{Name: name}).Error
	})
}

func CreateTerritory(c *gin.Context) {
	createDirectoryEntry(c, func(name string) error {
		return database.DB.Create(&models.Territory{Name: name}).Error
	})
}

func createDirectoryEntry(c *gin.Context, create func(name string) error) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		c.String(http.StatusBadRequest, "Название не может быть пустым")
		return
	}

	if err := create(name); err != nil {
		c.String(http.StatusInternalServerError, "Ошибка сохранения справочника")
		return
	}

	c.Redirect(http.StatusFound, "/directories")
}
