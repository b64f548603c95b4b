package request

import (
	"mysterybox-storefront/internal/domain/cart"
	"mysterybox-storefront/internal/domain/challenge"
	"mysterybox-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CartLineRequest struct {
	ProductID   uuid.UUID `json:"productId" binding:"required"`
	ProductCode string    `json:"productCode"`
	Title       string    `json:"title" binding:"required"`
	Label       string    `json:"label"`
	Price       string    `json:"price" binding:"required"`
	Image       string    `json:"image"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
}

// ChallengeRunRequest is the client's declared state of one challenge run.
type ChallengeRunRequest struct {
	Running         bool   `json:"running"`
	Type            string `json:"type" binding:"omitempty,oneof=timer flash"`
	DiscountPercent int    `json:"discountPercent" binding:"min=0,max=100"`
}

type QuoteRequest struct {
	Items         []CartLineRequest    `json:"items" binding:"dive"`
	TimeChallenge *ChallengeRunRequest `json:"timeChallenge"`
	TryNow        *ChallengeRunRequest `json:"tryNow"`
}

func (r QuoteRequest) ToInput() (queries.QuoteInput, error) {
	lines, err := toCartLines(r.Items)
	if err != nil {
		return queries.QuoteInput{}, err
	}
	timeRun, err := r.TimeChallenge.toDeclaredRun()
	if err != nil {
		return queries.QuoteInput{}, err
	}
	tryNow, err := r.TryNow.toDeclaredRun()
	if err != nil {
		return queries.QuoteInput{}, err
	}
	return queries.QuoteInput{Lines: lines, TimeChallenge: timeRun, TryNow: tryNow}, nil
}

func (r *ChallengeRunRequest) toDeclaredRun() (*queries.DeclaredRun, error) {
	if r == nil {
		return nil, nil
	}
	t, err := challenge.NewType(r.Type)
	if err != nil {
		return nil, err
	}
	return &queries.DeclaredRun{Running: r.Running, Type: t, DiscountPercent: r.DiscountPercent}, nil
}

func toCartLines(items []CartLineRequest) ([]cart.Line, error) {
	lines := make([]cart.Line, 0, len(items))
	if err := copier.Copy(&lines, &items); err != nil {
		return nil, err
	}
	return lines, nil
}
