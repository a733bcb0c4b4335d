package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/outreach-dev/outreach/db"
	"github.com/outreach-dev/outreach/internal/store"
)

type AddDonationRequest struct {
	DonationID   string `json:"donationID"`
	Amount       string `json:"amount"`
	DonationDate string `json:"donationDate"`
	Method       string `json:"method"`
	DonorSSN     string `json:"donorSSN"`
	ProjectID    string `json:"projectID"`
}

func donationRows(rows []store.DonationRow) [][]interface{} {
	data := make([][]interface{}, 0, len(rows))

	for _, r := range rows {
		data = append(data, []interface{}{
			r.DonationID, r.Amount, r.DonationDate.Format(store.DateLayout), r.Method,
			nullable(r.DonorName), nullable(r.DonorEmail), nullable(r.DonorSSN),
			nullable(r.ProjectName),
		})
	}

	return data
}

func nullable(s sql.NullString) interface{} {
	if !s.Valid {
		return nil
	}

	return s.String
}

func ListDonations(ctx *gin.Context) {
	rows, err := store.ListDonations(db.DB)

	if err != nil {
		log.Printf("Failed to list donations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": []interface{}{}, "message": "Server error."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": donationRows(rows)})
}

func AddDonation(ctx *gin.Context) {
	var req AddDonationRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body."})
		return
	}

	if strings.TrimSpace(req.DonorSSN) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Donor is required for a donation."})
		return
	}

	err := store.AddDonation(db.DB, store.DonationInsert{
		DonationID:   req.DonationID,
		Amount:       req.Amount,
		DonationDate: req.DonationDate,
		Method:       req.Method,
		DonorSSN:     req.DonorSSN,
		ProjectID:    req.ProjectID,
	})

	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Donation added successfully"})
	case errors.Is(err, store.ErrInvalidRequest):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid donation fields."})
	case errors.Is(err, store.ErrConflict), errors.Is(err, store.ErrConstraint):
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to add donation"})
	default:
		log.Printf("Failed to add donation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
	}
}

// DonorDonations lists donations for donors whose name contains the query
// string, case-insensitively.
func DonorDonations(ctx *gin.Context) {
	name := strings.TrimSpace(ctx.Query("name"))

	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required"})
		return
	}

	rows, err := store.DonationsForDonorName(db.DB, name)

	if err != nil {
		log.Printf("Failed to search donor donations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "data": []interface{}{}, "message": "Server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": donationRows(rows)})
}

func FilterDonors(ctx *gin.Context) {
	minAmount, err := strconv.ParseFloat(ctx.Query("minAmount"), 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"donors": []interface{}{}, "message": "minAmount is required."})
		return
	}

	rows, err := store.FilterDonorsByTotal(db.DB, minAmount)

	if err != nil {
		log.Printf("Failed to filter donors: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"donors": []interface{}{}})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"donors": donationRows(rows)})
}

func DonationSummary(ctx *gin.Context) {
	rows, err := store.DonationSummary(db.DB)

	if err != nil {
		log.Printf("Failed to summarize donations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": []interface{}{}, "message": "Server error."})
		return
	}

	data := make([][]interface{}, 0, len(rows))

	for _, r := range rows {
		data = append(data, []interface{}{r.Method, r.TotalAmount})
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data})
}

// DonorsModal feeds the donor dropdown in the add-donation modal.
func DonorsModal(ctx *gin.Context) {
	rows, err := store.ListDonors(db.DB)

	if err != nil {
		log.Printf("Failed to list donors: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": []interface{}{}})
		return
	}

	data := make([][]interface{}, 0, len(rows))

	for _, r := range rows {
		data = append(data, []interface{}{r.SSN, r.Name})
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data})
}
