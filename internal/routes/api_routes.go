package routes

import (
	"fluxcrm/internal/handlers"
	"fluxcrm/internal/middleware"
	"fluxcrm/models"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registers every route that requires authentication.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	api.GET("/auth/me", handlers.MeHandler)

	// --- TEAM (admin only) ---
	team := api.Group("/team")
	team.Use(middleware.RequireRole(models.RoleAdmin))
	{
		team.GET("", handlers.ListTeamHandler)
		team.POST("/invite", handlers.InviteTeamMemberHandler)
	}

	// --- LABEL REGISTRIES ---
	orgTypes := api.Group("/org-types")
	{
		orgTypes.GET("", handlers.ListOrgTypesHandler)
		orgTypes.POST("", handlers.CreateOrgTypeHandler)
		orgTypes.DELETE("/:id", handlers.DeleteOrgTypeHandler)
	}
	leadStages := api.Group("/lead-stages")
	{
		leadStages.GET("", handlers.ListLeadStagesHandler)
		leadStages.POST("", handlers.CreateLeadStageHandler)
		leadStages.DELETE("/:id", handlers.DeleteLeadStageHandler)
	}

	// --- ORGANIZATIONS ---
	organizations := api.Group("/organizations")
	{
		organizations.GET("", handlers.ListOrganizationsHandler)
		organizations.POST("", handlers.CreateOrganizationHandler)
		organizations.GET("/:id", handlers.GetOrganizationHandler)
		organizations.PUT("/:id", handlers.UpdateOrganizationHandler)
		organizations.DELETE("/:id", handlers.DeleteOrganizationHandler)
	}

	// --- LEADS ---
	leads := api.Group("/leads")
	{
		leads.GET("", handlers.ListLeadsHandler)
		leads.POST("", handlers.CreateLeadHandler)
		leads.GET("/export", handlers.ExportLeadsHandler)
		leads.GET("/:id", handlers.GetLeadHandler)
		leads.PUT("/:id", handlers.UpdateLeadHandler)
		leads.DELETE("/:id", handlers.DeleteLeadHandler)
	}

	// --- LEAD ACTIVITY ---
	leadNotes := api.Group("/lead-notes")
	{
		leadNotes.GET("", handlers.ListLeadNotesHandler)
		leadNotes.POST("", handlers.CreateLeadNoteHandler)
		leadNotes.DELETE("/:id", handlers.DeleteLeadNoteHandler)
	}
	milestones := api.Group("/milestones")
	{
		milestones.GET("", handlers.ListMilestonesHandler)
		milestones.POST("", handlers.CreateMilestoneHandler)
		milestones.PUT("/:id", handlers.UpdateMilestoneHandler)
		milestones.DELETE("/:id", handlers.DeleteMilestoneHandler)
	}
	documents := api.Group("/documents")
	{
		documents.GET("", handlers.ListDocumentsHandler)
		documents.POST("", handlers.CreateDocumentHandler)
		documents.PUT("/:id", handlers.UpdateDocumentHandler)
		documents.DELETE("/:id", handlers.DeleteDocumentHandler)
	}

	// --- SALES FLOW ---
	salesFlow := api.Group("/sales-flow")
	{
		salesFlow.GET("", handlers.ListSalesFlowHandler)
		salesFlow.POST("", handlers.CreateSalesFlowHandler)
		salesFlow.PUT("/:id", handlers.UpdateSalesFlowHandler)
		salesFlow.DELETE("/:id", handlers.DeleteSalesFlowHandler)
	}

	// --- ANALYTICS ---
	analytics := api.Group("/analytics")
	{
		analytics.GET("/dashboard", handlers.DashboardAnalyticsHandler)
		analytics.GET("/geography", handlers.GeographyAnalyticsHandler)
	}

	// --- REFERENCE DATA ---
	api.GET("/indian-states", handlers.ListIndianStatesHandler)
}
