package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"mysterybox-storefront/internal/domain/cart"
	"mysterybox-storefront/internal/domain/money"
	"mysterybox-storefront/internal/domain/order"
	"mysterybox-storefront/internal/domain/pricing"
	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/config"
	"mysterybox-storefront/internal/pkg/errs"
	"mysterybox-storefront/internal/usecase/queries"
	"mysterybox-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrder            = errs.New("invalid order")
	ErrIdempotencyKeyConflict  = errs.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")

	errOrderNumberTaken = errs.New("order number taken")
)

const (
	orderEndpoint         = "POST /api/orders"
	idempotencyTTL        = 24 * time.Hour
	maxOrderNumberRetries = 3

	NotificationKindWebhook   = "webhook"
	NotificationTopicOrderNew = "order_created"
)

type CustomerInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	City    string `json:"city"`
	Address string `json:"address"`
	Comment string `json:"comment"`
}

// SubmitOrderInput is what the client locked in at submission time.
type SubmitOrderInput struct {
	Customer           CustomerInput `json:"customer"`
	Items              []cart.Line   `json:"items"`
	Total              string        `json:"total"`
	IsFlashOffer       bool          `json:"isFlashOffer"`
	FlashOfferDiscount int64         `json:"flashOfferDiscount"`
	IsTryNowChallenge  bool          `json:"isTryNowChallenge"`
}

type SubmitOrderResult struct {
	Order      *queries.OrderView
	IsReplayed bool
	IsTrial    bool
}

type OrderCommands interface {
	// SubmitOrder requires an idempotency key unless the order is a try-now trial.
	SubmitOrder(ctx context.Context, in SubmitOrderInput, idempotencyKey uuid.UUID) (*SubmitOrderResult, error)
}

type orderCommandsImpl struct {
	uow        shared.UnitOfWork
	orderStore queries.OrderReadStore
	cfg        config.PromotionConfig
	clock      clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, orderStore queries.OrderReadStore, cfg config.Config, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:        uow,
		orderStore: orderStore,
		cfg:        cfg.Promotion,
		clock:      clk,
	}
}

func (o *orderCommandsImpl) SubmitOrder(ctx context.Context, in SubmitOrderInput, idempotencyKey uuid.UUID) (*SubmitOrderResult, error) {
	now := o.clock.Now()

	if in.IsTryNowChallenge {
		return o.submitTrial(in, now)
	}
	if idempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}

	requestHash := calculateRequestHash(in)

	var (
		orderID  uuid.UUID
		replayed bool
		err      error
	)
	for attempt := 1; attempt <= maxOrderNumberRetries; attempt++ {
		orderID, replayed, err = o.submitOnce(ctx, in, idempotencyKey, requestHash, now)
		if !errs.Is(err, errOrderNumberTaken) {
			break
		}
		slog.Warn("order number collision, retrying", "attempt", attempt)
	}
	if err != nil {
		return nil, err
	}

	// Read-after-write
	view, err := o.orderStore.GetByID(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !replayed {
		slog.Info("order placed",
			"order_number", view.OrderNumber,
			"total", view.Total,
			"is_flash_offer", view.IsFlashOffer)
	}
	return &SubmitOrderResult{Order: view, IsReplayed: replayed}, nil
}

// submitOnce runs the idempotency check and every write in one transaction, so a
// visible "processing" row is always the one this transaction inserted or reclaimed.
func (o *orderCommandsImpl) submitOnce(
	ctx context.Context,
	in SubmitOrderInput,
	idempotencyKey uuid.UUID,
	requestHash string,
	now time.Time,
) (uuid.UUID, bool, error) {
	var (
		orderID  uuid.UUID
		replayed bool
	)

	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existingID, err := o.checkIdempotency(ctx, tx, idempotencyKey, requestHash, now)
		if err != nil {
			return err
		}
		if existingID != uuid.Nil {
			orderID = existingID
			replayed = true
			return nil
		}

		entity, err := o.buildOrder(ctx, tx, in, now)
		if err != nil {
			return err
		}

		if err := tx.Orders().Create(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errOrderNumberTaken)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := o.enqueueNotification(ctx, tx, entity, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		err = tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, uuid.Nil, calculateIDHash(entity.ID()), entity.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		orderID = entity.ID()
		return nil
	})
	return orderID, replayed, err
}

// checkIdempotency returns the stored order id for a completed replay, or uuid.Nil when this request owns the key.
func (o *orderCommandsImpl) checkIdempotency(
	ctx context.Context,
	tx shared.Tx,
	key uuid.UUID,
	requestHash string,
	now time.Time,
) (uuid.UUID, error) {
	expiresAt := now.Add(idempotencyTTL)

	if err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, uuid.Nil, orderEndpoint, requestHash, expiresAt); err != nil {
		return uuid.Nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, uuid.Nil)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		// Expired row still occupies the key; take it over.
		n, claimErr := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, uuid.Nil, requestHash, expiresAt)
		if claimErr != nil {
			return uuid.Nil, errs.Mark(claimErr, ErrIdempotencyCheckFailed)
		}
		if n != 1 {
			return uuid.Nil, ErrIdempotencyInProgress
		}
		return uuid.Nil, nil
	}

	if existing.RequestHash != requestHash {
		return uuid.Nil, ErrIdempotencyKeyConflict
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultOrderID == nil {
			return uuid.Nil, errs.New("completed request missing result order ID")
		}
		return *existing.ResultOrderID, nil
	case shared.IdempotencyStatusProcessing:
		return uuid.Nil, nil
	default:
		return uuid.Nil, errs.New("invalid idempotency key status")
	}
}

func (o *orderCommandsImpl) buildOrder(ctx context.Context, tx shared.Tx, in SubmitOrderInput, now time.Time) (*order.Order, error) {
	customer, err := newCustomer(in.Customer)
	if err != nil {
		return nil, err
	}

	total := money.ParseAmount(in.Total)
	if o.cfg.ReapplyCheckoutDiscount() && !in.IsFlashOffer {
		discount, err := tx.Reads().CheckoutDiscount(ctx)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if discount.Applies() {
			total = pricing.ApplyCheckoutDiscountAgain(total, discount.DiscountPercent())
		}
	}

	number, err := order.NewNumber(now)
	if err != nil {
		return nil, err
	}

	entity, err := order.NewOrder(number, customer, order.ItemsFromCart(in.Items), order.Pricing{
		Total:              total,
		IsFlashOffer:       in.IsFlashOffer,
		FlashOfferDiscount: in.FlashOfferDiscount,
	}, false, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOrder)
	}
	return entity, nil
}

// submitTrial echoes a try-now order without touching storage or notifications.
func (o *orderCommandsImpl) submitTrial(in SubmitOrderInput, now time.Time) (*SubmitOrderResult, error) {
	customer, err := newCustomer(in.Customer)
	if err != nil {
		return nil, err
	}

	entity, err := order.NewOrder(order.TrialNumber(now), customer, order.ItemsFromCart(in.Items), order.Pricing{
		Total:              money.ParseAmount(in.Total),
		IsFlashOffer:       in.IsFlashOffer,
		FlashOfferDiscount: in.FlashOfferDiscount,
	}, true, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOrder)
	}

	slog.Info("try-now order accepted without persistence", "order_number", entity.Number().String())
	return &SubmitOrderResult{Order: orderToView(entity), IsTrial: true}, nil
}

type orderNotification struct {
	OrderID      uuid.UUID               `json:"order_id"`
	OrderNumber  string                  `json:"order_number"`
	CustomerName string                  `json:"customer_name"`
	Phone        string                  `json:"phone"`
	Email        string                  `json:"email,omitempty"`
	City         string                  `json:"city,omitempty"`
	Address      string                  `json:"address,omitempty"`
	Comment      string                  `json:"comment,omitempty"`
	Items        []orderNotificationItem `json:"items"`
	Total        int64                   `json:"total"`
	IsFlashOffer bool                    `json:"is_flash_offer"`
	CreatedAt    time.Time               `json:"created_at"`
}

type orderNotificationItem struct {
	Title    string `json:"title"`
	Label    string `json:"label,omitempty"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

func (o *orderCommandsImpl) enqueueNotification(ctx context.Context, tx shared.Tx, entity *order.Order, now time.Time) error {
	c := entity.Customer()
	msg := orderNotification{
		OrderID:      entity.ID(),
		OrderNumber:  entity.Number().String(),
		CustomerName: c.Name(),
		Phone:        c.Phone(),
		Email:        c.Email(),
		City:         c.City(),
		Address:      c.Address(),
		Comment:      c.Comment(),
		Total:        entity.Pricing().Total,
		IsFlashOffer: entity.Pricing().IsFlashOffer,
		CreatedAt:    entity.CreatedAt(),
	}
	for _, it := range entity.Items() {
		msg.Items = append(msg.Items, orderNotificationItem{
			Title:    it.Title,
			Label:    it.Label,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), NotificationKindWebhook, NotificationTopicOrderNew, payload, now)
}

func newCustomer(in CustomerInput) (order.Customer, error) {
	c, err := order.NewCustomer(in.Name, in.Phone, in.Email, in.City, in.Address, in.Comment)
	if err != nil {
		return order.Customer{}, errs.Mark(err, ErrInvalidOrder)
	}
	return c, nil
}

func orderToView(o *order.Order) *queries.OrderView {
	c := o.Customer()
	items := make([]queries.OrderItemView, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, queries.OrderItemView{
			ProductID:   it.ProductID,
			ProductCode: it.ProductCode,
			Title:       it.Title,
			Label:       it.Label,
			Price:       it.Price,
			Image:       it.Image,
			Quantity:    int32(it.Quantity),
		})
	}
	return &queries.OrderView{
		ID:                 o.ID(),
		OrderNumber:        o.Number().String(),
		CustomerName:       c.Name(),
		Phone:              c.Phone(),
		Email:              c.Email(),
		City:               c.City(),
		Address:            c.Address(),
		Comment:            c.Comment(),
		Items:              items,
		Subtotal:           o.Subtotal(),
		Total:              o.Pricing().Total,
		IsFlashOffer:       o.Pricing().IsFlashOffer,
		FlashOfferDiscount: o.Pricing().FlashOfferDiscount,
		CreatedAt:          o.CreatedAt(),
	}
}

func calculateRequestHash(in SubmitOrderInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
