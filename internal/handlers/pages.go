package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	render(c, http.StatusOK, "index.html", gin.H{})
}
