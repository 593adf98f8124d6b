package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"staff-admin/internal/database"
	"staff-admin/internal/models"

	"github.com/gin-gonic/gin"
)

//
// ОБЪЕКТЫ
//

func ListSites(c *gin.Context) {
	var sites []models.Site
	database.DB.Order("name asc").Find(&sites)

	render(c, http.StatusOK, "sites_list.html", gin.H{
		"sites": sites,
	})
}

func ShowNewSite(c *gin.Context) {
	render(c, http.StatusOK, "sites_new.html", gin.H{"error": ""})
}

func CreateSite(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	address := strings.TrimSpace(c.PostForm("address"))
	notes := strings.TrimSpace(c.PostForm("notes"))

	if len(name) < 3 {
		render(c, http.StatusBadRequest, "sites_new.html", gin.H{
			"error": "Название объекта должно быть не короче 3 символов",
		})
		return
	}

	var count int64
	database.DB.Model(&models.Site{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count)
	if count > 0 {
		render(c, http.StatusBadRequest, "sites_new.html", gin.H{
			"error": "Объект с таким названием уже существует",
		})
		return
	}

	site := models.Site{Name: name, Address: address, Notes: notes}
	if err := database.DB.Create(&site).Error; err != nil {
		render(c, http.StatusInternalServerError, "sites_new.html", gin.H{
			"error": "Ошибка сохранения объекта в БД",
		})
		return
	}

	c.Redirect(http.StatusFound, "/sites")
}

func ShowEditSite(c *gin.Context) {
	site, ok := loadSiteParam(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "sites_edit.html", gin.H{
		"site":  site,
		"error": "",
	})
}

func UpdateSite(c *gin.Context) {
	site, ok := loadSiteParam(c)
	if !ok {
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if len(name) < 3 {
		render(c, http.StatusBadRequest, "sites_edit.html", gin.H{
			"site":  site,
			"error": "Название объекта должно быть не короче 3 символов",
		})
		return
	}

	site.Name = name
	site.Address = strings.TrimSpace(c.PostForm("address"))
	site.Notes = strings.TrimSpace(c.PostForm("notes"))

	if err := database.DB.Save(site).Error; err != nil {
		render(c, http.StatusInternalServerError, "sites_edit.html", gin.H{
			"site":  site,
			"error": "Ошибка сохранения объекта",
		})
		return
	}

	c.Redirect(http.StatusFound, "/sites")
}

func loadSiteParam(c *gin.Context) (*models.Site, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID объекта")
		return nil, false
	}

	var site models.Site
	if err := database.DB.First(&site, id).Error; err != nil {
		c.String(http.StatusNotFound, "Объект не найден")
		return nil, false
	}
	return &site, true
}

//
// ЦЕНТРЫ
//

func ListCenters(c *gin.Context) {
	var centers []models.Center
	database.DB.Order("name asc").Find(&centers)

	render(c, http.StatusOK, "centers_list.html", gin.H{
		"centers": centers,
	})
}

func CreateCenter(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	address := strings.TrimSpace(c.PostForm("address"))

	if len(name) < 3 {
		render(c, http.StatusBadRequest, "centers_list.html", gin.H{
			"error": "Название центра должно быть не короче 3 символов",
		})
		return
	}

	center := models.Center{Name: name, Address: address}
	if err := database.DB.Create(&center).Error; err != nil {
		render(c, http.StatusInternalServerError, "centers_list.html", gin.H{
			"error": "Ошибка сохранения центра в БД",
		})
		return
	}

	c.Redirect(http.StatusFound, "/centers")
}
