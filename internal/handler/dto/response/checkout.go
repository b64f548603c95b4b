package response

import (
	"time"

	"mysterybox-storefront/internal/domain/pricing"
	"mysterybox-storefront/internal/usecase/queries"
)

type QuoteLineResponse struct {
	Source  pricing.Source `json:"source"`
	Percent int            `json:"percent,omitempty"`
	Amount  int64          `json:"amount"`
}

type QuoteResponse struct {
	Subtotal           int64               `json:"subtotal"`
	Shipping           int64               `json:"shipping"`
	TierName           string              `json:"tier"`
	Lines              []QuoteLineResponse `json:"lines"`
	DiscountTotal      int64               `json:"discountTotal"`
	Total              int64               `json:"total"`
	IsFlashOffer       bool                `json:"isFlashOffer"`
	FlashOfferDiscount int64               `json:"flashOfferDiscount"`
	SnapshotAvailable  bool                `json:"snapshotAvailable"`
	ServerTime         time.Time           `json:"serverTime"`
}

func FromQuoteView(v *queries.CheckoutQuoteView) *QuoteResponse {
	res := copyView[QuoteResponse](v)
	if res.Lines == nil {
		res.Lines = []QuoteLineResponse{}
	}
	return res
}
