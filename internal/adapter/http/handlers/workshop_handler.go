package handlers

import (
	"net/http"
	"strconv"

	request "verkstad_portal/internal/adapter/http/dto/request"
	response "verkstad_portal/internal/adapter/http/dto/response"
	"verkstad_portal/internal/adapter/http/middleware"
	"verkstad_portal/internal/domain/classifier"
	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkshopHandler serves the workshop's available requests, proposals and contracts.
type WorkshopHandler struct {
	usecase       usecase.IWorkshopUseCase
	defaultRadius float64
}

func NewWorkshopHandler(uc usecase.IWorkshopUseCase, defaultRadiusKM float64) *WorkshopHandler {
	return &WorkshopHandler{usecase: uc, defaultRadius: defaultRadiusKM}
}

// AvailableRequests godoc
// @Summary      Requests open for bidding nearby
// @Description  Expired requests are hidden. action is "apply" or "edit" when the workshop already sent an offer.
// @Tags         workshop
// @Produce      json
// @Param        X-Session-ID  header  string  true   "Session id"
// @Param        latitude      query   number  true   "Latitude"
// @Param        longitude     query   number  true   "Longitude"
// @Param        radius        query   number  false  "Radius in km"
// @Success      200  {array}   response.AvailableRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /workshop/requests [get]
func (h *WorkshopHandler) AvailableRequests(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	q, ok := h.parseArea(c)
	if !ok {
		c.JSON(errInvalidArea.HTTPStatus, errInvalidArea.ToHTTPError())
		return
	}

	items, err := h.usecase.AvailableRequests(c.Request.Context(), sess, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAvailableRequests(items))
}

func (h *WorkshopHandler) parseArea(c *gin.Context) (entities.AreaQuery, bool) {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return entities.AreaQuery{}, false
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return entities.AreaQuery{}, false
	}
	radius := h.defaultRadius
	if v := c.Query("radius"); v != "" {
		if radius, err = strconv.ParseFloat(v, 64); err != nil {
			return entities.AreaQuery{}, false
		}
	}
	return entities.AreaQuery{Latitude: lat, Longitude: lng, RadiusKM: radius}, true
}

// Proposals godoc
// @Summary  Offers sent by the workshop
// @Tags     workshop
// @Produce  json
// @Param    X-Session-ID  header  string  true   "Session id"
// @Param    tab           query   string  false  "all | sent | accepted | declined | expired"
// @Success  200  {array}   response.OfferResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /workshop/proposals [get]
func (h *WorkshopHandler) Proposals(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	tab, ok := classifier.ParseProposalTab(c.Query("tab"))
	if !ok {
		respondError(c, errInvalidTab)
		return
	}

	offers, err := h.usecase.Proposals(c.Request.Context(), sess, tab)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffers(offers))
}

// Contracts godoc
// @Summary  Accepted offers of the workshop
// @Tags     workshop
// @Produce  json
// @Param    X-Session-ID  header  string  true   "Session id"
// @Param    tab           query   string  false  "current | completed"
// @Success  200  {array}   response.OfferResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /workshop/contracts [get]
func (h *WorkshopHandler) Contracts(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	tab, ok := classifier.ParseContractTab(c.Query("tab"))
	if !ok {
		respondError(c, errInvalidTab)
		return
	}

	offers, err := h.usecase.Contracts(c.Request.Context(), sess, tab)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffers(offers))
}

// SubmitOffer godoc
// @Summary      Send or edit the workshop's offer on a request
// @Description  Creates the offer (201) or updates the existing one in place (200).
// @Tags         workshop
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string                true  "Session id"
// @Param        request_id    path    string                true  "Request id"
// @Param        body          body    request.OfferRequest  true  "Offer"
// @Success      200  {object}  response.OfferSubmissionResponse
// @Success      201  {object}  response.OfferSubmissionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /workshop/requests/{request_id}/offer [put]
func (h *WorkshopHandler) SubmitOffer(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	var payload request.OfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.SubmitOffer(c.Request.Context(), sess, payload.ToDraft(c.Param("request_id")))
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromOfferSubmission(res))
}

// CancelContract godoc
// @Summary  Withdraw from an accepted contract
// @Tags     workshop
// @Produce  json
// @Param    X-Session-ID  header  string  true  "Session id"
// @Param    offer_id      path    string  true  "Offer id"
// @Success  200  {object}  response.OfferResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /workshop/contracts/{offer_id}/cancel [patch]
func (h *WorkshopHandler) CancelContract(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}
	offer, err := h.usecase.CancelContract(c.Request.Context(), sess, c.Param("offer_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}
