package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outreach-dev/outreach/db"
)

// ReloadDatabase drops and recreates the whole schema from the bundled setup
// script, restoring the seed data.
func ReloadDatabase(ctx *gin.Context) {
	script, err := db.LoadSetupScript()

	if err != nil {
		log.Printf("Failed to read setup script: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Reload failed."})
		return
	}

	if err := db.RunScript(db.DB, script); err != nil {
		log.Printf("Failed to run setup script: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Reload failed."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Database reloaded!"})
}
