package request

import (
	"mysterybox-storefront/internal/usecase/commands"
)

type CustomerRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Phone   string `json:"phone" binding:"required,max=32"`
	Email   string `json:"email" binding:"omitempty,email"`
	City    string `json:"city" binding:"max=200"`
	Address string `json:"address" binding:"max=500"`
	Comment string `json:"comment" binding:"max=1000"`
}

// CreateOrderRequest carries the totals and flags the client captured at submission.
type CreateOrderRequest struct {
	Customer           CustomerRequest   `json:"customer" binding:"required"`
	Items              []CartLineRequest `json:"items" binding:"required,min=1,dive"`
	Total              string            `json:"total" binding:"required"`
	IsFlashOffer       bool              `json:"isFlashOffer"`
	FlashOfferDiscount int64             `json:"flashOfferDiscount" binding:"min=0"`
	IsTryNowChallenge  bool              `json:"isTryNowChallenge"`
}

func (r CreateOrderRequest) ToInput() (commands.SubmitOrderInput, error) {
	lines, err := toCartLines(r.Items)
	if err != nil {
		return commands.SubmitOrderInput{}, err
	}
	return commands.SubmitOrderInput{
		Customer:           commands.CustomerInput(r.Customer),
		Items:              lines,
		Total:              r.Total,
		IsFlashOffer:       r.IsFlashOffer,
		FlashOfferDiscount: r.FlashOfferDiscount,
		IsTryNowChallenge:  r.IsTryNowChallenge,
	}, nil
}
