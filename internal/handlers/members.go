package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outreach-dev/outreach/db"
	"github.com/outreach-dev/outreach/internal/store"
)

type DeleteCommunityMemberRequest struct {
	MemberID uint   `json:"memberID" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// ListCommunityMembers returns one positional row per (member, role) pair:
// [MemberID, Name, Role, Email, Phone, DateJoined].
func ListCommunityMembers(ctx *gin.Context) {
	rows, err := store.ListCommunityMembers(db.DB)

	if err != nil {
		log.Printf("Failed to list community members: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": []interface{}{}, "message": "Server error."})
		return
	}

	data := make([][]interface{}, 0, len(rows))

	for _, r := range rows {
		data = append(data, []interface{}{
			r.MemberID, r.Name, r.Role, r.Email, r.Phone, r.DateJoined.Format(store.DateLayout),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"data": data})
}

// DeleteCommunityMember removes one role from a member; the base row goes too
// when it was the last role. Unknown roles are rejected before storage is
// touched.
func DeleteCommunityMember(ctx *gin.Context) {
	var req DeleteCommunityMemberRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "memberID and role are required",
		})
		return
	}

	fullDelete, err := store.DeleteCommunityMember(db.DB, req.MemberID, req.Role)

	if err != nil {
		if errors.Is(err, store.ErrInvalidRequest) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": fmt.Sprintf("Invalid or missing role: %s", req.Role),
			})
			return
		}

		log.Printf("Failed to delete community member %d: %v", req.MemberID, err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error deleting member."})
		return
	}

	message := fmt.Sprintf("Member %d deleted from %s only (still has other roles).", req.MemberID, req.Role)

	if fullDelete {
		message = fmt.Sprintf("Member %d deleted from %s and CommunityMember.", req.MemberID, req.Role)
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
