package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mysterybox-storefront/internal/domain/promotion"
	"mysterybox-storefront/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

type flashOfferPayload struct {
	IsActive        bool       `json:"isActive"`
	MaxClaims       int        `json:"maxClaims"`
	ClaimedCount    int        `json:"claimedCount"`
	DurationSeconds int        `json:"durationSeconds"`
	StartedAt       *time.Time `json:"startedAt"`
	EndsAt          *time.Time `json:"endsAt"`
	BannerText      string     `json:"bannerText"`
	ServerTime      time.Time  `json:"serverTime"`
}

func (p *flashOfferPayload) toDomain() *promotion.FlashOffer {
	if p == nil {
		return nil
	}
	return promotion.ReconstructFlashOffer(
		p.IsActive, p.MaxClaims, p.ClaimedCount, p.DurationSeconds,
		p.StartedAt, p.EndsAt, p.BannerText, p.ServerTime,
	)
}

type checkoutDiscountPayload struct {
	DiscountPercent int       `json:"discountPercent"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type timeChallengePayload struct {
	Name            string    `json:"name"`
	IsActive        bool      `json:"isActive"`
	DurationSeconds int       `json:"durationSeconds"`
	DiscountPercent int       `json:"discountPercent"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client is the resty-backed API implementation.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "mysterybox-storefront/1")
	return &Client{http: c}
}

func (c *Client) GetFlashOffer(ctx context.Context) (*promotion.FlashOffer, error) {
	var out *flashOfferPayload
	if _, err := c.get(ctx, "/api/promotions/flash-offer", &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// GetCheckoutDiscount returns nil when the server has no discount row.
func (c *Client) GetCheckoutDiscount(ctx context.Context) (*promotion.CheckoutDiscount, error) {
	var out checkoutDiscountPayload
	found, err := c.get(ctx, "/api/promotions/checkout-discount", &out)
	if err != nil || !found {
		return nil, err
	}
	return promotion.ReconstructCheckoutDiscount(out.DiscountPercent, out.UpdatedAt), nil
}

// GetTimeChallengeSettings returns nil when the server has no settings row.
func (c *Client) GetTimeChallengeSettings(ctx context.Context) (*promotion.TimeChallengeSettings, error) {
	var out timeChallengePayload
	found, err := c.get(ctx, "/api/promotions/time-challenge", &out)
	if err != nil || !found {
		return nil, err
	}
	return promotion.ReconstructTimeChallengeSettings(out.Name, out.IsActive, out.DurationSeconds, out.DiscountPercent, out.UpdatedAt), nil
}

func (c *Client) SubmitOrder(ctx context.Context, req OrderRequest, idempotencyKey uuid.UUID) (*Order, error) {
	r := c.http.R().SetContext(ctx).SetBody(req)
	if idempotencyKey != uuid.Nil {
		r.SetHeader(idempotencyKeyHeader, idempotencyKey.String())
	}

	resp, err := r.Post("/api/orders")
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "order submission failed"), ErrRetryable)
	}
	if err := checkStatus(resp); err != nil {
		// 409 covers a concurrent attempt with the same key still being processed.
		if resp.StatusCode() == http.StatusConflict {
			return nil, errs.Mark(err, ErrRetryable)
		}
		return nil, err
	}

	var order Order
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, errs.Wrap(err, "failed to decode order")
	}
	order.Replayed = resp.Header().Get(replayedHeader) == "true"
	return &order, nil
}

func (c *Client) ClaimFlashOffer(ctx context.Context) (*promotion.FlashOffer, error) {
	resp, err := c.http.R().SetContext(ctx).Post("/api/promotions/flash-offer/claim")
	if err != nil {
		return nil, errs.Wrap(err, "flash offer claim failed")
	}
	if err := checkStatus(resp); err != nil {
		if resp.StatusCode() == http.StatusConflict {
			return nil, errs.Mark(err, ErrClaimRejected)
		}
		return nil, err
	}

	var out *flashOfferPayload
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, errs.Wrap(err, "failed to decode flash offer")
	}
	return out.toDomain(), nil
}

// get decodes a 200 body into out and reports found=false on 404.
func (c *Client) get(ctx context.Context, path string, out any) (bool, error) {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return false, errs.Mark(errs.Wrapf(err, "GET %s failed", path), ErrRetryable)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err := checkStatus(resp); err != nil {
		return false, err
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return false, errs.Wrapf(err, "failed to decode %s", path)
	}
	return true, nil
}

func checkStatus(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= 200 && code < 300 {
		return nil
	}

	apiErr := &APIError{Status: code}
	var env errorEnvelope
	if json.Unmarshal(resp.Body(), &env) == nil {
		apiErr.Message = env.Error.Message
	}
	if code == http.StatusTooManyRequests || code >= 500 {
		return errs.Mark(apiErr, ErrRetryable)
	}
	return apiErr
}
