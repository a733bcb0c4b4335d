package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outreach-dev/outreach/db"
)

// CheckDBConnection answers in plain text so the frontend banner can display
// it verbatim.
func CheckDBConnection(c *gin.Context) {
	if err := db.Ping(c.Request.Context()); err != nil {
		c.String(http.StatusOK, "Unable to connect to database ❌")
		return
	}

	c.String(http.StatusOK, "Connected to database ✅")
}
