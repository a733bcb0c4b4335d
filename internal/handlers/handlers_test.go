package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/outreach-dev/outreach/db"
	"github.com/outreach-dev/outreach/internal/models"
	"github.com/outreach-dev/outreach/internal/router"
)

// setupAPI swaps the package-level connection for an in-memory database and
// returns the fully wired engine, so tests exercise the real routes.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.Department{},
		&models.CommunityMember{},
		&models.Supervisor{},
		&models.Volunteer{},
		&models.OfficeWorker{},
		&models.Donor{},
		&models.Donation{},
		&models.Donates{},
		&models.Project{},
		&models.Funds{},
		&models.Campaign{},
		&models.Participates{},
	))

	previous := db.DB
	db.DB = gdb

	t.Cleanup(func() { db.DB = previous })

	return router.NewRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func seedSupervisor(t *testing.T, memberID uint, name, email string) {
	t.Helper()

	require.NoError(t, db.DB.Create(&models.CommunityMember{
		MemberID:   memberID,
		Name:       name,
		Email:      email,
		DateJoined: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error)
	require.NoError(t, db.DB.Create(&models.Supervisor{MemberID: memberID}).Error)
}

func TestDeleteCommunityMemberRejectsUnknownRole(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodDelete, "/delete-community-member",
		`{"memberID": 1, "role": "Janitor"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or missing role: Janitor")
}

func TestDeleteCommunityMemberRequiresBothFields(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodDelete, "/delete-community-member",
		`{"memberID": 1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "memberID and role are required")
}

func TestDeleteCommunityMemberLastRoleRemovesBase(t *testing.T) {
	r := setupAPI(t)
	seedSupervisor(t, 7, "Grace", "grace@example.com")

	w := doJSON(t, r, http.MethodDelete, "/delete-community-member",
		`{"memberID": 7, "role": "Supervisor"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted from Supervisor and CommunityMember.")

	var count int64
	require.NoError(t, db.DB.Model(&models.CommunityMember{}).Where("member_id = ?", 7).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpdateOfficeWorkerBadMemberIDParam(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPut, "/officeworkers/abc", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid member ID.")
}

func TestUpdateOfficeWorkerNotFound(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPut, "/officeworkers/42", `{"name": "Nobody"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Office worker not found.")
}

func TestListCommunityMembersReturnsPositionalRows(t *testing.T) {
	r := setupAPI(t)
	seedSupervisor(t, 1, "Grace", "grace@example.com")

	w := doJSON(t, r, http.MethodGet, "/community-members", "")

	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `"data":[[1,"Grace","Supervisor","grace@example.com","","2022-01-01"]]`)
}

func TestValidateSupervisorEndpoint(t *testing.T) {
	r := setupAPI(t)
	seedSupervisor(t, 3, "Grace", "grace@example.com")

	w := doJSON(t, r, http.MethodGet, "/validate-supervisor/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isValid":true`)

	w = doJSON(t, r, http.MethodGet, "/validate-supervisor/9", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isValid":false`)
	assert.Contains(t, w.Body.String(), "MemberID 9 is not a registered supervisor.")
}

func TestGetReportRejectsUnknownTable(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/get-report",
		`{"table": "payroll", "columns": ["name"]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown table or column.")
}

func TestGetReportRequiresTableAndColumns(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/get-report", `{"table": "donors"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "table and columns are required.")
}

func TestGetColumnsUnknownTable(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodGet, "/get-columns/payroll", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown table.")
}

func TestAddDonationRequiresDonor(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodPost, "/add-donation",
		`{"donationID": "1", "amount": "50", "donationDate": "2024-01-01", "method": "Cash"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodGet, "/community-members", "")

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
