package handlers

import (
	"net/http"
	"strconv"

	request "verkstad_portal/internal/adapter/http/dto/request"
	response "verkstad_portal/internal/adapter/http/dto/response"
	"verkstad_portal/internal/adapter/http/middleware"
	"verkstad_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// ListWorkshops godoc
// @Summary  All workshops with their moderation flags
// @Tags     admin
// @Produce  json
// @Param    X-Session-ID  header  string  true  "Session id"
// @Success  200  {array}  response.WorkshopResponse
// @Router   /admin/workshops [get]
func (h *AdminHandler) ListWorkshops(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	ws, err := h.usecase.ListWorkshops(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkshops(ws))
}

// SetVerification godoc
// @Summary  Verify or unverify a workshop
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    X-Session-ID  header  string                       true  "Session id"
// @Param    workshop_id   path    string                       true  "Workshop id"
// @Param    body          body    request.VerificationRequest  true  "Flag"
// @Success  200  {object}  response.WorkshopResponse
// @Router   /admin/workshops/{workshop_id}/verification [patch]
func (h *AdminHandler) SetVerification(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	var payload request.VerificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.SetWorkshopVerification(c.Request.Context(), sess, c.Param("workshop_id"), *payload.IsVerified)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkshop(w))
}

// SetActive godoc
// @Summary  Block or unblock a workshop
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    X-Session-ID  header  string                 true  "Session id"
// @Param    workshop_id   path    string                 true  "Workshop id"
// @Param    body          body    request.ActiveRequest  true  "Flag"
// @Success  200  {object}  response.WorkshopResponse
// @Router   /admin/workshops/{workshop_id}/active [patch]
func (h *AdminHandler) SetActive(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	var payload request.ActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.SetWorkshopActive(c.Request.Context(), sess, c.Param("workshop_id"), *payload.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkshop(w))
}

// ListPayouts godoc
// @Summary  Payout reports of a month
// @Tags     admin
// @Produce  json
// @Param    X-Session-ID  header  string   true  "Session id"
// @Param    month         query   integer  true  "Month (1-12)"
// @Param    year          query   integer  true  "Year"
// @Success  200  {array}   response.PayoutResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /admin/payouts [get]
func (h *AdminHandler) ListPayouts(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	month, err1 := strconv.Atoi(c.Query("month"))
	year, err2 := strconv.Atoi(c.Query("year"))
	if err1 != nil || err2 != nil {
		c.JSON(errInvalidPeriod.HTTPStatus, errInvalidPeriod.ToHTTPError())
		return
	}

	reports, err := h.usecase.ListPayouts(c.Request.Context(), sess, month, year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayouts(reports))
}

// GeneratePayouts godoc
// @Summary      Generate payout reports for a month
// @Description  Idempotent per workshop and month: running it again does not double-count.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string                       true  "Session id"
// @Param        body          body    request.PayoutPeriodRequest  true  "Period"
// @Success      200  {array}   response.PayoutResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /admin/payouts [post]
func (h *AdminHandler) GeneratePayouts(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	var payload request.PayoutPeriodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	reports, err := h.usecase.GeneratePayouts(c.Request.Context(), sess, payload.Month, payload.Year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayouts(reports))
}

// MarkPayoutPaid godoc
// @Summary  Mark a payout as paid
// @Tags     admin
// @Produce  json
// @Param    X-Session-ID  header  string  true  "Session id"
// @Param    payout_id     path    string  true  "Payout id"
// @Success  200  {object}  response.PayoutResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /admin/payouts/{payout_id}/mark-paid [patch]
func (h *AdminHandler) MarkPayoutPaid(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	p, err := h.usecase.MarkPayoutPaid(c.Request.Context(), sess, c.Param("payout_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayout(p))
}
