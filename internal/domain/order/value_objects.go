package order

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrNoItems              = errors.New("order must contain at least one item")
	ErrInvalidQuantity      = errors.New("item quantity must be at least 1")
	ErrNegativeTotal        = errors.New("order total cannot be negative")
	ErrInvalidOrderNumber   = errors.New("invalid order number")
)

const (
	numberPrefix      = "MB-"
	trialNumberPrefix = "TRY-"
	numberDigits      = 6
)

var (
	phoneRegex  = regexp.MustCompile(`^\+?[0-9]{9,15}$`)
	numberRegex = regexp.MustCompile(`^(MB-[0-9]{6}-[0-9]{6}|TRY-[0-9]+)$`)
	phoneStrip  = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

type Customer struct {
	name    string
	phone   string
	email   string
	city    string
	address string
	comment string
}

func NewCustomer(name, phone, email, city, address, comment string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrCustomerNameRequired
	}
	phone = phoneStrip.Replace(strings.TrimSpace(phone))
	if !phoneRegex.MatchString(phone) {
		return Customer{}, ErrInvalidPhone
	}
	return Customer{
		name:    name,
		phone:   phone,
		email:   strings.TrimSpace(email),
		city:    strings.TrimSpace(city),
		address: strings.TrimSpace(address),
		comment: strings.TrimSpace(comment),
	}, nil
}

func (c Customer) Name() string    { return c.name }
func (c Customer) Phone() string   { return c.phone }
func (c Customer) Email() string   { return c.email }
func (c Customer) City() string    { return c.city }
func (c Customer) Address() string { return c.address }
func (c Customer) Comment() string { return c.comment }

type Number string

func (n Number) String() string { return string(n) }

func (n Number) IsTrial() bool {
	return strings.HasPrefix(string(n), trialNumberPrefix)
}

func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if !numberRegex.MatchString(s) {
		return "", ErrInvalidOrderNumber
	}
	return Number(s), nil
}

// NewNumber returns MB-YYMMDD-NNNNNN with a random six-digit suffix.
// Uniqueness is enforced by the store; callers retry on collision.
func NewNumber(now time.Time) (Number, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate order number: %w", err)
	}
	return Number(fmt.Sprintf("%s%s-%0*d", numberPrefix, now.Format("060102"), numberDigits, n.Int64())), nil
}

// TrialNumber is the synthetic TRY-<unix millis> number given to try-now orders.
func TrialNumber(now time.Time) Number {
	return Number(fmt.Sprintf("%s%d", trialNumberPrefix, now.UnixMilli()))
}
