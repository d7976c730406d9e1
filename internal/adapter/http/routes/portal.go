package routes

import (
	"verkstad_portal/internal/adapter/http/handlers"
	"verkstad_portal/internal/adapter/http/middleware"
	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/sessions"
	PathCustomer = "/customer"
	PathWorkshop = "/workshop"
	PathAdmin    = "/admin"
)

func addSessionRoutes(rg *gin.RouterGroup, sessions usecase.ISessionUseCase, h *handlers.SessionHandler) {
	rg.POST(PathSessions, h.OpenSession)

	authed := rg.Group(PathSessions, middleware.Session(sessions))
	{
		authed.GET("/me", h.CurrentSession)
		authed.DELETE("", h.CloseSession)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, sessions usecase.ISessionUseCase, h *handlers.CustomerHandler) {
	customer := rg.Group(PathCustomer, middleware.Session(sessions), middleware.RequireRole(entities.RoleCustomer))
	{
		customer.GET("/cases", h.ListCases)
		customer.GET("/cases/summary", h.CasesSummary)
		customer.POST("/requests", h.CreateRequest)
		customer.GET("/requests/:request_id/offers", h.ListOffers)

		customer.POST("/offers/:offer_id/accept", h.AcceptOffer)
		customer.PATCH("/bookings/:booking_id/cancel", h.CancelBooking)
		customer.PATCH("/bookings/:booking_id/reschedule", h.RescheduleBooking)
		customer.PATCH("/bookings/:booking_id/complete", h.CompleteBooking)
	}
}

func addWorkshopRoutes(rg *gin.RouterGroup, sessions usecase.ISessionUseCase, h *handlers.WorkshopHandler) {
	workshop := rg.Group(PathWorkshop, middleware.Session(sessions), middleware.RequireRole(entities.RoleWorkshop))
	{
		workshop.GET("/requests", h.AvailableRequests)
		workshop.PUT("/requests/:request_id/offer", h.SubmitOffer)
		workshop.GET("/proposals", h.Proposals)
		workshop.GET("/contracts", h.Contracts)
		workshop.PATCH("/contracts/:offer_id/cancel", h.CancelContract)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, sessions usecase.ISessionUseCase, h *handlers.AdminHandler) {
	admin := rg.Group(PathAdmin, middleware.Session(sessions), middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/workshops", h.ListWorkshops)
		admin.PATCH("/workshops/:workshop_id/verification", h.SetVerification)
		admin.PATCH("/workshops/:workshop_id/active", h.SetActive)

		admin.GET("/payouts", h.ListPayouts)
		admin.POST("/payouts", h.GeneratePayouts)
		admin.PATCH("/payouts/:payout_id/mark-paid", h.MarkPayoutPaid)
	}
}
