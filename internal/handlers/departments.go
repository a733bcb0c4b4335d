package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outreach-dev/outreach/db"
	"github.com/outreach-dev/outreach/internal/store"
)

// ListDepartments feeds the department dropdown on the office worker form.
func ListDepartments(ctx *gin.Context) {
	rows, err := store.ListDepartments(db.DB)

	if err != nil {
		log.Printf("Failed to list departments: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": []interface{}{}, "message": "Server error."})
		return
	}

	data := make([][]interface{}, 0, len(rows))

	for _, d := range rows {
		data = append(data, []interface{}{d.DeptID, d.Name})
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data})
}
