package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/outreach-dev/outreach/db"
	"github.com/outreach-dev/outreach/internal/store"
)

func ListCampaigns(ctx *gin.Context) {
	rows, err := store.ListCampaigns(db.DB)

	if err != nil {
		log.Printf("Failed to list campaigns: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": []interface{}{}, "message": "Server error."})
		return
	}

	data := make([][]interface{}, 0, len(rows))

	for _, r := range rows {
		data = append(data, []interface{}{
			r.CampaignID, r.Name, r.CampaignDate.Format(store.DateLayout), r.Type,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data})
}

func CampaignTypes(ctx *gin.Context) {
	types, err := store.CampaignTypes(db.DB)

	if err != nil {
		log.Printf("Failed to list campaign types: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"types": []interface{}{}, "message": "Server error."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"types": types})
}

func CampaignParticipation(ctx *gin.Context) {
	rows, err := store.CampaignParticipation(db.DB)

	if err != nil {
		log.Printf("Failed to list campaign participation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": []interface{}{}, "message": "Server error."})
		return
	}

	data := make([][]interface{}, 0, len(rows))

	for _, r := range rows {
		data = append(data, []interface{}{
			r.MemberID, r.VolunteerName, r.CampaignID, r.CampaignName, r.Type, r.Hours,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data})
}

// VolunteersDivision answers the division query: volunteers who participated
// in every campaign of the requested type. A type with no campaigns returns
// every volunteer.
func VolunteersDivision(ctx *gin.Context) {
	campaignType := strings.TrimSpace(ctx.Query("type"))

	if campaignType == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"data":    []interface{}{},
			"message": "Campaign type is required.",
		})
		return
	}

	rows, err := store.VolunteersForAllCampaignsOfType(db.DB, campaignType)

	if err != nil {
		log.Printf("Failed to run division query: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"data":    []interface{}{},
			"message": "Server error.",
		})
		return
	}

	data := make([][]interface{}, 0, len(rows))

	for _, r := range rows {
		data = append(data, []interface{}{r.MemberID, r.Name, r.Email, r.Phone})
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// VolunteerMVP lists volunteers whose total hours beat the average of
// per-volunteer totals.
func VolunteerMVP(ctx *gin.Context) {
	rows, err := store.VolunteerMVP(db.DB)

	if err != nil {
		log.Printf("Failed to compute MVP volunteers: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": []interface{}{}, "message": "Server error."})
		return
	}

	data := make([][]interface{}, 0, len(rows))

	for _, r := range rows {
		data = append(data, []interface{}{r.MemberID, r.Name, r.TotalHours})
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data})
}
