package store

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/outreach-dev/outreach/internal/models"
	"gorm.io/gorm"
)

// DonationRow is one donation joined with its (optional) donor and project.
type DonationRow struct {
	DonationID   uint
	Amount       float64
	DonationDate time.Time
	Method       string
	DonorName    sql.NullString
	DonorEmail   sql.NullString
	DonorSSN     sql.NullString
	ProjectName  sql.NullString
}

// DonationInsert carries caller input as text; numeric fields are parsed here.
type DonationInsert struct {
	DonationID   string
	Amount       string
	DonationDate string
	Method       string
	DonorSSN     string
	ProjectID    string
}

type DonationSummaryRow struct {
	Method      string
	TotalAmount float64
}

type DonorOption struct {
	SSN  string
	Name string
}

const donationJoins = `LEFT JOIN donates dn ON dn.donation_id = d.donation_id
	LEFT JOIN donors dr ON dr.ssn = dn.ssn
	LEFT JOIN funds f ON f.donation_id = d.donation_id
	LEFT JOIN projects p ON p.project_id = f.project_id`

const donationColumns = `d.donation_id, d.amount, d.donation_date, d.method,
	dr.name AS donor_name, dr.email AS donor_email, dr.ssn AS donor_ssn,
	p.name AS project_name`

func ListDonations(gdb *gorm.DB) ([]DonationRow, error) {
	var rows []DonationRow

	err := gdb.Table("donations d").
		Joins(donationJoins).
		Select(donationColumns).
		Order("d.donation_id").
		Scan(&rows).Error

	return rows, err
}

// DonationsForDonorName matches case-insensitively on any substring of the
// donor's name.
func DonationsForDonorName(gdb *gorm.DB, name string) ([]DonationRow, error) {
	var rows []DonationRow

	err := gdb.Table("donations d").
		Joins(donationJoins).
		Select(donationColumns).
		Where("LOWER(dr.name) LIKE '%' || LOWER(?) || '%'", name).
		Order("d.donation_id").
		Scan(&rows).Error

	return rows, err
}

// FilterDonorsByTotal returns the donations of donors whose summed giving
// reaches minAmount.
func FilterDonorsByTotal(gdb *gorm.DB, minAmount float64) ([]DonationRow, error) {
	var rows []DonationRow

	err := gdb.Table("donations d").
		Joins(donationJoins).
		Select(donationColumns).
		Where(`dr.ssn IN (
			SELECT dn2.ssn FROM donates dn2
			JOIN donations d2 ON d2.donation_id = dn2.donation_id
			GROUP BY dn2.ssn
			HAVING SUM(d2.amount) >= ?)`, minAmount).
		Order("d.donation_id").
		Scan(&rows).Error

	return rows, err
}

func DonationSummary(gdb *gorm.DB) ([]DonationSummaryRow, error) {
	var rows []DonationSummaryRow

	err := gdb.Model(&models.Donation{}).
		Select("method, SUM(amount) AS total_amount").
		Group("method").
		Order("method").
		Scan(&rows).Error

	return rows, err
}

// AddDonation inserts the donation, its mandatory donor link, and, when a
// project is named, the funding link. All three commit together.
func AddDonation(gdb *gorm.DB, in DonationInsert) error {
	donationID, err := strconv.ParseUint(strings.TrimSpace(in.DonationID), 10, 32)

	if err != nil {
		return ErrInvalidRequest
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)

	if err != nil {
		return ErrInvalidRequest
	}

	donationDate, err := time.Parse(DateLayout, strings.TrimSpace(in.DonationDate))

	if err != nil {
		return ErrInvalidRequest
	}

	var projectID uint64

	hasProject := strings.TrimSpace(in.ProjectID) != ""

	if hasProject {
		projectID, err = strconv.ParseUint(strings.TrimSpace(in.ProjectID), 10, 32)

		if err != nil {
			return ErrInvalidRequest
		}
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		donation := models.Donation{
			DonationID:   uint(donationID),
			Amount:       amount,
			DonationDate: donationDate,
			Method:       in.Method,
		}

		if err := tx.Create(&donation).Error; err != nil {
			return translateWrite(err)
		}

		donates := models.Donates{
			DonationID: donation.DonationID,
			SSN:        in.DonorSSN,
		}

		if err := tx.Create(&donates).Error; err != nil {
			return translateWrite(err)
		}

		if hasProject {
			funds := models.Funds{
				ProjectID:  uint(projectID),
				DonationID: donation.DonationID,
			}

			if err := tx.Create(&funds).Error; err != nil {
				return translateWrite(err)
			}
		}

		return nil
	})
}

func ListDonors(gdb *gorm.DB) ([]DonorOption, error) {
	var rows []DonorOption

	err := gdb.Model(&models.Donor{}).
		Select("ssn, name").
		Order("name").
		Scan(&rows).Error

	return rows, err
}
