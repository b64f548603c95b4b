package queries

import (
	"time"

	"mysterybox-storefront/internal/domain/promotion"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// NotificationJobView represents read-optimized notification job data
type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductView struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Label       string    `json:"label"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	InStock     bool      `json:"in_stock"`
	SortOrder   int32     `json:"sort_order"`
}

type OrderItemView struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductCode string    `json:"product_code"`
	Title       string    `json:"title"`
	Label       string    `json:"label"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Quantity    int32     `json:"quantity"`
}

type OrderView struct {
	ID                 uuid.UUID       `json:"id"`
	OrderNumber        string          `json:"order_number"`
	CustomerName       string          `json:"customer_name"`
	Phone              string          `json:"phone"`
	Email              string          `json:"email"`
	City               string          `json:"city"`
	Address            string          `json:"address"`
	Comment            string          `json:"comment"`
	Items              []OrderItemView `json:"items"`
	Subtotal           int64           `json:"subtotal"`
	Total              int64           `json:"total"`
	IsFlashOffer       bool            `json:"is_flash_offer"`
	FlashOfferDiscount int64           `json:"flash_offer_discount"`
	CreatedAt          time.Time       `json:"created_at"`
}

// PromotionState is the raw server-held promotion data; derived flags are computed per request.
type PromotionState struct {
	FlashOffer       *promotion.FlashOffer
	CheckoutDiscount *promotion.CheckoutDiscount
	TimeChallenge    *promotion.TimeChallengeSettings
}

type FlashOfferView struct {
	IsActive            bool       `json:"is_active"`
	MaxClaims           int        `json:"max_claims"`
	ClaimedCount        int        `json:"claimed_count"`
	DurationSeconds     int        `json:"duration_seconds"`
	StartedAt           *time.Time `json:"started_at,omitempty"`
	EndsAt              *time.Time `json:"ends_at,omitempty"`
	BannerText          string     `json:"banner_text"`
	IsEffectivelyActive bool       `json:"is_effectively_active"`
	RemainingSeconds    int        `json:"remaining_seconds"`
	RemainingClaims     int        `json:"remaining_claims"`
	ServerTime          time.Time  `json:"server_time"`
}

type CheckoutDiscountView struct {
	DiscountPercent int       `json:"discount_percent"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TimeChallengeSettingsView struct {
	Name            string    `json:"name"`
	IsActive        bool      `json:"is_active"`
	DurationSeconds int       `json:"duration_seconds"`
	DiscountPercent int       `json:"discount_percent"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PromotionSnapshotView struct {
	FlashOffer       *FlashOfferView            `json:"flash_offer"`
	CheckoutDiscount *CheckoutDiscountView      `json:"checkout_discount"`
	TimeChallenge    *TimeChallengeSettingsView `json:"time_challenge"`
	ServerTime       time.Time                  `json:"server_time"`
}

func NewFlashOfferView(offer *promotion.FlashOffer, now time.Time) *FlashOfferView {
	if offer == nil {
		return nil
	}
	return &FlashOfferView{
		IsActive:            offer.IsActive(),
		MaxClaims:           offer.MaxClaims(),
		ClaimedCount:        offer.ClaimedCount(),
		DurationSeconds:     offer.DurationSeconds(),
		StartedAt:           offer.StartedAt(),
		EndsAt:              offer.EndsAt(),
		BannerText:          offer.BannerText(),
		IsEffectivelyActive: offer.IsEffectivelyActive(now),
		RemainingSeconds:    offer.RemainingSeconds(now),
		RemainingClaims:     offer.RemainingClaims(),
		ServerTime:          now,
	}
}

func NewCheckoutDiscountView(d *promotion.CheckoutDiscount) *CheckoutDiscountView {
	if d == nil {
		return nil
	}
	return &CheckoutDiscountView{DiscountPercent: d.DiscountPercent(), UpdatedAt: d.UpdatedAt()}
}

func NewTimeChallengeSettingsView(s *promotion.TimeChallengeSettings) *TimeChallengeSettingsView {
	if s == nil {
		return nil
	}
	return &TimeChallengeSettingsView{
		Name:            s.Name(),
		IsActive:        s.IsActive(),
		DurationSeconds: s.DurationSeconds(),
		DiscountPercent: s.DiscountPercent(),
		UpdatedAt:       s.UpdatedAt(),
	}
}
