package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/outreach-dev/outreach/db"
	"github.com/outreach-dev/outreach/internal/store"
)

// UpdateOfficeWorkerRequest fields are all optional text; blank means "keep the
// stored value". Salary and deptId arrive as strings straight from the form.
type UpdateOfficeWorkerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	DateJoined string `json:"dateJoined"`
	Location   string `json:"location"`
	Salary     string `json:"salary"`
	DeptID     string `json:"deptId"`
}

func ListOfficeWorkers(ctx *gin.Context) {
	rows, err := store.ListOfficeWorkers(db.DB)

	if err != nil {
		log.Printf("Failed to list office workers: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch office workers"})
		return
	}

	data := make([][]interface{}, 0, len(rows))

	for _, r := range rows {
		data = append(data, []interface{}{
			r.MemberID, r.Name, r.Email, r.Phone, r.DateJoined.Format(store.DateLayout),
			r.Location, r.Salary, r.DeptID,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data})
}

func UpdateOfficeWorker(ctx *gin.Context) {
	memberID, err := strconv.ParseUint(ctx.Param("memberID"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid member ID."})
		return
	}

	var req UpdateOfficeWorkerRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body."})
		return
	}

	err = store.UpdateOfficeWorker(db.DB, uint(memberID), store.OfficeWorkerUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		DateJoined: req.DateJoined,
		Location:   req.Location,
		Salary:     req.Salary,
		DeptID:     req.DeptID,
	})

	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Office worker updated successfully."})
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Office worker not found."})
	case errors.Is(err, store.ErrConflict):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already exists for another member."})
	case errors.Is(err, store.ErrConstraint):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Department ID does not exist."})
	case errors.Is(err, store.ErrInvalidRequest):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid field value."})
	case errors.Is(err, store.ErrNoRowsUpdated):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No rows updated."})
	default:
		log.Printf("Failed to update office worker %d: %v", memberID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error."})
	}
}
