package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outreach-dev/outreach/db"
	"github.com/outreach-dev/outreach/internal/store"
)

type ReportRequest struct {
	Table   string   `json:"table" binding:"required"`
	Columns []string `json:"columns" binding:"required"`
}

func GetTables(ctx *gin.Context) {
	tables, err := store.Tables(db.DB)

	if err != nil {
		log.Printf("Failed to list tables: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"tables": []interface{}{}})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"tables": tables})
}

func GetColumns(ctx *gin.Context) {
	columns, err := store.ColumnsForTable(db.DB, ctx.Param("table"))

	if err != nil {
		if errors.Is(err, store.ErrInvalidRequest) {
			ctx.JSON(http.StatusBadRequest, gin.H{"columns": []interface{}{}, "message": "Unknown table."})
			return
		}

		log.Printf("Failed to list columns: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"columns": []interface{}{}})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"columns": columns})
}

// GetReport runs the projection. Table and column identifiers are resolved
// against the live catalog in the store; anything unknown comes back as
// InvalidRequest here.
func GetReport(ctx *gin.Context) {
	var req ReportRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"rows": []interface{}{}, "message": "table and columns are required."})
		return
	}

	rows, err := store.Projection(db.DB, req.Table, req.Columns)

	if err != nil {
		if errors.Is(err, store.ErrInvalidRequest) {
			ctx.JSON(http.StatusBadRequest, gin.H{"rows": []interface{}{}, "message": "Unknown table or column."})
			return
		}

		log.Printf("Failed to run report: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"rows": []interface{}{}})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rows": rows})
}
