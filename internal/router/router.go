package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/outreach-dev/outreach/internal/handlers"
	"github.com/outreach-dev/outreach/internal/middleware"
	"github.com/outreach-dev/outreach/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/check-db-connection", handlers.CheckDBConnection)
	r.POST("/reload-database", handlers.ReloadDatabase)

	r.GET("/community-members", handlers.ListCommunityMembers)
	r.DELETE("/delete-community-member", handlers.DeleteCommunityMember)

	r.GET("/officeworkers", handlers.ListOfficeWorkers)
	r.PUT("/officeworkers/:memberID", handlers.UpdateOfficeWorker)
	r.GET("/departments", handlers.ListDepartments)

	r.GET("/donation", handlers.ListDonations)
	r.POST("/add-donation", handlers.AddDonation)
	r.GET("/donor-donations", handlers.DonorDonations)
	r.GET("/filter-donors", handlers.FilterDonors)
	r.GET("/donation-summary", handlers.DonationSummary)
	r.GET("/donors-modal", handlers.DonorsModal)

	r.GET("/projects", handlers.ListProjects)
	r.GET("/projects/filter", handlers.FilterProjects)
	r.GET("/projects-modal", handlers.ProjectsModal)
	r.POST("/add-project", handlers.AddProject)
	r.GET("/validate-supervisor/:memberID", handlers.ValidateSupervisor)

	r.GET("/campaigns", handlers.ListCampaigns)
	r.GET("/campaign-types", handlers.CampaignTypes)
	r.GET("/campaign-participation", handlers.CampaignParticipation)
	r.GET("/volunteers-division", handlers.VolunteersDivision)
	r.GET("/volunteer-mvp", handlers.VolunteerMVP)

	r.GET("/get-tables", handlers.GetTables)
	r.GET("/get-columns/:table", handlers.GetColumns)
	r.POST("/get-report", handlers.GetReport)

	return r
}
