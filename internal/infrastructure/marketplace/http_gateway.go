package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/usecase/interfaces"
)

var ErrMissingBaseURL = errors.New("missing MARKETPLACE_BASE_URL")

const (
	DefaultTimeout = 30 * time.Second

	maxErrorBody = 4 << 10
)

// HTTPGateway talks to the marketplace REST backend. Calls are never retried.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IMarketplaceGateway = (*HTTPGateway)(nil)

func NewHTTPGateway(baseURL string, timeout time.Duration) (*HTTPGateway, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[marketplace][gateway] missing MARKETPLACE_BASE_URL")
		return nil, ErrMissingBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid MARKETPLACE_BASE_URL: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	log.Printf("[marketplace][gateway] http client initialized base_url=%s timeout=%s", baseURL, timeout)
	return &HTTPGateway{baseURL: baseURL, client: &http.Client{Timeout: timeout}}, nil
}

func (g *HTTPGateway) ListCustomerRequests(ctx context.Context, sess entities.Session, customerID string) ([]entities.Request, error) {
	var out []entities.Request
	err := g.doJSON(ctx, sess, http.MethodGet, "/api/requests/customer/"+url.PathEscape(customerID), nil, nil, &out)
	return out, err
}

func (g *HTTPGateway) ListAvailableRequests(ctx context.Context, sess entities.Session, q entities.AreaQuery) ([]entities.Request, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(q.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	query.Set("radius", strconv.FormatFloat(q.RadiusKM, 'f', -1, 64))

	var out []entities.Request
	err := g.doJSON(ctx, sess, http.MethodGet, "/api/requests/available", query, nil, &out)
	return out, err
}

func (g *HTTPGateway) CreateRequest(ctx context.Context, sess entities.Session, in entities.NewRequest) (entities.Request, error) {
	var out entities.Request
	err := g.doJSON(ctx, sess, http.MethodPost, "/api/requests", nil, in, &out)
	return out, err
}

func (g *HTTPGateway) ListOffersForRequest(ctx context.Context, sess entities.Session, requestID string, sortBy entities.OfferSort) ([]entities.Offer, error) {
	query := url.Values{}
	if sortBy != "" {
		query.Set("sortBy", string(sortBy))
	}
	var out []entities.Offer
	err := g.doJSON(ctx, sess, http.MethodGet, "/api/offers/request/"+url.PathEscape(requestID), query, nil, &out)
	return out, err
}

func (g *HTTPGateway) ListWorkshopOffers(ctx context.Context, sess entities.Session) ([]entities.Offer, error) {
	var out []entities.Offer
	err := g.doJSON(ctx, sess, http.MethodGet, "/api/offers/workshop/me", nil, nil, &out)
	return out, err
}

func (g *HTTPGateway) CreateOffer(ctx context.Context, sess entities.Session, in entities.OfferDraft) (entities.Offer, error) {
	var out entities.Offer
	err := g.doJSON(ctx, sess, http.MethodPost, "/api/offers", nil, newOfferBody(in), &out)
	return out, err
}

func (g *HTTPGateway) UpdateOffer(ctx context.Context, sess entities.Session, offerID string, patch entities.OfferPatch) (entities.Offer, error) {
	var out entities.Offer
	err := g.doJSON(ctx, sess, http.MethodPatch, "/api/offers/"+url.PathEscape(offerID), nil, newOfferPatchBody(patch), &out)
	return out, err
}

func (g *HTTPGateway) CreateBooking(ctx context.Context, sess entities.Session, in entities.NewBooking) (entities.Booking, error) {
	var out entities.Booking
	err := g.doJSON(ctx, sess, http.MethodPost, "/api/bookings", nil, bookingBody{
		OfferID:     in.OfferID,
		ScheduledAt: in.ScheduledAt.UTC(),
		Notes:       in.Notes,
	}, &out)
	return out, err
}

func (g *HTTPGateway) UpdateBooking(ctx context.Context, sess entities.Session, bookingID string, patch entities.BookingPatch) (entities.Booking, error) {
	body := bookingPatchBody{Status: patch.Status}
	if patch.ScheduledAt != nil {
		at := patch.ScheduledAt.UTC()
		body.ScheduledAt = &at
	}
	var out entities.Booking
	err := g.doJSON(ctx, sess, http.MethodPatch, "/api/bookings/"+url.PathEscape(bookingID), nil, body, &out)
	return out, err
}

func (g *HTTPGateway) CreateReview(ctx context.Context, sess entities.Session, in entities.Review) (entities.Review, error) {
	var out entities.Review
	err := g.doJSON(ctx, sess, http.MethodPost, "/api/reviews", nil, reviewBody{
		BookingID:  in.BookingID,
		WorkshopID: in.WorkshopID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}, &out)
	return out, err
}

func (g *HTTPGateway) ListWorkshops(ctx context.Context, sess entities.Session) ([]entities.Workshop, error) {
	var out []entities.Workshop
	err := g.doJSON(ctx, sess, http.MethodGet, "/api/admin/workshops", nil, nil, &out)
	return out, err
}

func (g *HTTPGateway) UpdateWorkshopFlags(ctx context.Context, sess entities.Session, patch entities.WorkshopFlagsPatch) (entities.Workshop, error) {
	var out entities.Workshop
	err := g.doJSON(ctx, sess, http.MethodPatch, "/api/admin/workshops", nil, patch, &out)
	return out, err
}

func (g *HTTPGateway) ListPayouts(ctx context.Context, sess entities.Session, month, year int) ([]entities.PayoutReport, error) {
	query := url.Values{}
	query.Set("month", strconv.Itoa(month))
	query.Set("year", strconv.Itoa(year))
	var out []entities.PayoutReport
	err := g.doJSON(ctx, sess, http.MethodGet, "/api/admin/payouts", query, nil, &out)
	return out, err
}

func (g *HTTPGateway) GeneratePayouts(ctx context.Context, sess entities.Session, month, year int) ([]entities.PayoutReport, error) {
	var out []entities.PayoutReport
	err := g.doJSON(ctx, sess, http.MethodPost, "/api/admin/payouts", nil, payoutPeriodBody{Month: month, Year: year}, &out)
	return out, err
}

func (g *HTTPGateway) MarkPayoutPaid(ctx context.Context, sess entities.Session, payoutID string) (entities.PayoutReport, error) {
	var out entities.PayoutReport
	err := g.doJSON(ctx, sess, http.MethodPatch, "/api/admin/payouts/"+url.PathEscape(payoutID)+"/mark-paid", nil, nil, &out)
	return out, err
}

func (g *HTTPGateway) doJSON(ctx context.Context, sess entities.Session, method, path string, query url.Values, in any, out any) error {
	endpoint := g.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		kind := transportErrorKind(ctx, err)
		log.Printf("[marketplace][gateway] %s %s failed elapsed=%s err=%v", method, path, time.Since(start), err)
		if kind == nil {
			return err
		}
		return fmt.Errorf("%w: %s %s: %v", kind, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Printf("[marketplace][gateway] %s %s rejected status=%d elapsed=%s", method, path, resp.StatusCode, time.Since(start))
		return fmt.Errorf("%w: %s %s status=%d body=%s", statusErrorKind(resp.StatusCode), method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	log.Printf("[marketplace][gateway] %s %s ok status=%d elapsed=%s", method, path, resp.StatusCode, time.Since(start))
	return nil
}

func statusErrorKind(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return interfaces.ErrBackendUnauthorized
	case status == http.StatusForbidden:
		return interfaces.ErrBackendForbidden
	case status == http.StatusNotFound:
		return interfaces.ErrBackendNotFound
	case status == http.StatusConflict:
		return interfaces.ErrBackendConflict
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return interfaces.ErrBackendTimeout
	case status >= 500:
		return interfaces.ErrBackendUnavailable
	default:
		return interfaces.ErrBackendBadRequest
	}
}

// transportErrorKind returns nil when the caller cancelled the context itself.
func transportErrorKind(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return interfaces.ErrBackendTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return interfaces.ErrBackendTimeout
	}
	return interfaces.ErrBackendUnavailable
}
