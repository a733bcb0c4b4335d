package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/outreach-dev/outreach/db"
	"github.com/outreach-dev/outreach/internal/models"
	"github.com/outreach-dev/outreach/internal/store"
)

type AddProjectRequest struct {
	ProjectID    string `json:"projectId"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	GoalAmount   string `json:"goalAmount"`
	SupervisorID string `json:"supervisorID"`
}

func projectRows(rows []models.Project) [][]interface{} {
	data := make([][]interface{}, 0, len(rows))

	for _, p := range rows {
		data = append(data, []interface{}{
			p.ProjectID, p.Name, p.Description, p.GoalAmount, p.SupervisorMemberID,
		})
	}

	return data
}

func ListProjects(ctx *gin.Context) {
	rows, err := store.ListProjects(db.DB)

	if err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": []interface{}{}, "message": "Server error."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": projectRows(rows)})
}

// ProjectsModal feeds the project dropdown in the add-donation modal.
func ProjectsModal(ctx *gin.Context) {
	rows, err := store.ListProjectOptions(db.DB)

	if err != nil {
		log.Printf("Failed to list project options: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": []interface{}{}})
		return
	}

	data := make([][]interface{}, 0, len(rows))

	for _, r := range rows {
		data = append(data, []interface{}{r.ProjectID, r.Name})
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data})
}

func FilterProjects(ctx *gin.Context) {
	amountType := ctx.Query("amountType")
	amountValue := ctx.Query("amountValue")

	if amountType == "" || amountValue == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"data": []interface{}{}, "message": "Missing filter parameters."})
		return
	}

	amount, err := strconv.ParseFloat(amountValue, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"data": []interface{}{}, "message": "Invalid filter amount."})
		return
	}

	rows, err := store.FilterProjectsByGoal(db.DB, amountType, amount)

	if err != nil {
		log.Printf("Failed to filter projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": []interface{}{}, "message": "Server error while filtering projects."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": projectRows(rows)})
}

func AddProject(ctx *gin.Context) {
	var req AddProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body."})
		return
	}

	err := store.AddProject(db.DB, store.ProjectInsert{
		ProjectID:    req.ProjectID,
		Name:         req.Name,
		Description:  req.Description,
		GoalAmount:   req.GoalAmount,
		SupervisorID: req.SupervisorID,
	})

	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Project added successfully"})
	case errors.Is(err, store.ErrInvalidRequest):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid project fields."})
	case errors.Is(err, store.ErrConflict), errors.Is(err, store.ErrConstraint):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Database constraint violation or server error."})
	default:
		log.Printf("Failed to add project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
	}
}

func ValidateSupervisor(ctx *gin.Context) {
	memberID, err := strconv.ParseUint(ctx.Param("memberID"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"isValid": false, "message": "MemberID must be a number."})
		return
	}

	valid, err := store.ValidateSupervisor(db.DB, uint(memberID))

	if err != nil {
		log.Printf("Failed to validate supervisor %d: %v", memberID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"isValid": false, "message": "Server error during validation."})
		return
	}

	if !valid {
		ctx.JSON(http.StatusOK, gin.H{
			"isValid": false,
			"message": fmt.Sprintf("MemberID %d is not a registered supervisor.", memberID),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"isValid": true,
		"message": fmt.Sprintf("Supervisor ID %d validated.", memberID),
	})
}
