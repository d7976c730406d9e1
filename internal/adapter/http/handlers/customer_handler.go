package handlers

import (
	"log"
	"net/http"

	request "verkstad_portal/internal/adapter/http/dto/request"
	response "verkstad_portal/internal/adapter/http/dto/response"
	"verkstad_portal/internal/adapter/http/middleware"
	"verkstad_portal/internal/domain/classifier"
	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the customer's cases, offers and booking lifecycle.
type CustomerHandler struct {
	cases    usecase.ICaseUseCase
	bookings usecase.IBookingUseCase
}

func NewCustomerHandler(cases usecase.ICaseUseCase, bookings usecase.IBookingUseCase) *CustomerHandler {
	return &CustomerHandler{cases: cases, bookings: bookings}
}

// ListCases godoc
// @Summary      List cases of a tab
// @Description  Requests in the tab, newest first, each annotated with every tab it matches.
// @Tags         customer
// @Produce      json
// @Param        X-Session-ID  header  string  true   "Session id"
// @Param        tab           query   string  false  "my_cases | booked_cases | completed_cases | cancelled_cases | rescheduled_cases"
// @Success      200  {array}   response.CaseResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /customer/cases [get]
func (h *CustomerHandler) ListCases(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	tab, ok := classifier.ParseCustomerTab(c.Query("tab"))
	if !ok {
		respondError(c, errInvalidTab)
		return
	}

	views, err := h.cases.ListCases(c.Request.Context(), sess, tab)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCaseViews(views))
}

// CasesSummary godoc
// @Summary  Count of cases per tab
// @Tags     customer
// @Produce  json
// @Param    X-Session-ID  header  string  true  "Session id"
// @Success  200  {object}  map[string]int
// @Router   /customer/cases/summary [get]
func (h *CustomerHandler) CasesSummary(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	counts, err := h.cases.Summary(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(counts))
}

// CreateRequest godoc
// @Summary  Post a repair request
// @Tags     customer
// @Accept   json
// @Produce  json
// @Param    X-Session-ID  header  string                        true  "Session id"
// @Param    body          body    request.CreateRequestRequest  true  "Request"
// @Success  201  {object}  response.RequestResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /customer/requests [post]
func (h *CustomerHandler) CreateRequest(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	var payload request.CreateRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.cases.CreateRequest(c.Request.Context(), sess, payload.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRequest(created))
}

// ListOffers godoc
// @Summary  Offers received on a request
// @Tags     customer
// @Produce  json
// @Param    X-Session-ID  header  string  true   "Session id"
// @Param    request_id    path    string  true   "Request id"
// @Param    sort_by       query   string  false  "price | rating | distance"
// @Success  200  {array}   response.OfferResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /customer/requests/{request_id}/offers [get]
func (h *CustomerHandler) ListOffers(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	offers, err := h.cases.ListOffers(c.Request.Context(), sess, c.Param("request_id"), entities.OfferSort(c.Query("sort_by")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffers(offers))
}

// AcceptOffer godoc
// @Summary      Accept an offer
// @Description  Books the offer at one of its available dates. Responds with the booking and the refreshed cases.
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string                      true   "Session id"
// @Param        offer_id      path    string                      true   "Offer id"
// @Param        tab           query   string                      false  "Tab to return after the change"
// @Param        body          body    request.AcceptOfferRequest  true   "Slot"
// @Success      201  {object}  response.LifecycleResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /customer/offers/{offer_id}/accept [post]
func (h *CustomerHandler) AcceptOffer(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	var payload request.AcceptOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	booking, err := h.bookings.AcceptOffer(c.Request.Context(), sess, c.Param("offer_id"), payload.ScheduledAt, payload.ResolveNotes())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.afterLifecycle(c, sess, response.NewLifecycleResponse(booking)))
}

// CancelBooking godoc
// @Summary  Cancel a booking
// @Tags     customer
// @Produce  json
// @Param    X-Session-ID  header  string  true   "Session id"
// @Param    booking_id    path    string  true   "Booking id"
// @Param    tab           query   string  false  "Tab to return after the change"
// @Success  200  {object}  response.LifecycleResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /customer/bookings/{booking_id}/cancel [patch]
func (h *CustomerHandler) CancelBooking(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	booking, err := h.bookings.CancelBooking(c.Request.Context(), sess, c.Param("booking_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.afterLifecycle(c, sess, response.NewLifecycleResponse(booking)))
}

// RescheduleBooking godoc
// @Summary  Reschedule a booking
// @Tags     customer
// @Accept   json
// @Produce  json
// @Param    X-Session-ID  header  string                            true   "Session id"
// @Param    booking_id    path    string                            true   "Booking id"
// @Param    tab           query   string                            false  "Tab to return after the change"
// @Param    body          body    request.RescheduleBookingRequest  true   "New slot"
// @Success  200  {object}  response.LifecycleResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /customer/bookings/{booking_id}/reschedule [patch]
func (h *CustomerHandler) RescheduleBooking(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	var payload request.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	booking, err := h.bookings.RescheduleBooking(c.Request.Context(), sess, c.Param("booking_id"), payload.ScheduledAt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.afterLifecycle(c, sess, response.NewLifecycleResponse(booking)))
}

// CompleteBooking godoc
// @Summary      Mark a booking done and review it
// @Description  The booking is completed even when the review cannot be saved; review_error then explains why.
// @Tags         customer
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string                          true   "Session id"
// @Param        booking_id    path    string                          true   "Booking id"
// @Param        tab           query   string                          false  "Tab to return after the change"
// @Param        body          body    request.CompleteBookingRequest  true   "Review"
// @Success      200  {object}  response.LifecycleResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /customer/bookings/{booking_id}/complete [patch]
func (h *CustomerHandler) CompleteBooking(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	var payload request.CompleteBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.bookings.CompleteBooking(c.Request.Context(), sess, c.Param("booking_id"), payload.Rating, payload.ResolveReview())
	if err != nil {
		respondError(c, err)
		return
	}

	out := response.NewLifecycleResponse(res.Booking)
	if res.Review != nil {
		rv := response.FromReview(*res.Review)
		out.Review = &rv
	}
	if res.ReviewErr != nil {
		out.ReviewError = mapError(res.ReviewErr).Message
		// Still recorded so a backend 401 during the review clears the session.
		_ = c.Error(res.ReviewErr)
	}
	c.JSON(http.StatusOK, h.afterLifecycle(c, sess, out))
}

// afterLifecycle re-fetches and re-classifies the cases. The operation already
// succeeded, so a refresh failure is reported in the body instead of failing the call.
func (h *CustomerHandler) afterLifecycle(c *gin.Context, sess entities.Session, out response.LifecycleResponse) response.LifecycleResponse {
	tab, ok := classifier.ParseCustomerTab(c.Query("tab"))
	if !ok {
		tab = classifier.TabMyCases
	}

	ctx := c.Request.Context()
	views, err := h.cases.ListCases(ctx, sess, tab)
	if err == nil {
		var counts map[classifier.CustomerTab]int
		counts, err = h.cases.Summary(ctx, sess)
		if err == nil {
			out.Cases = response.FromCaseViews(views)
			out.Summary = response.FromSummary(counts)
			return out
		}
	}

	log.Printf("[customer][handler] refresh after lifecycle failed actor_id=%s err=%v", sess.ActorID, err)
	_ = c.Error(err)
	out.RefreshError = mapError(err).Message
	return out
}
