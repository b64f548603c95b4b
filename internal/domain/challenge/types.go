package challenge

import "errors"

var (
	ErrInvalidDuration = errors.New("challenge duration must be positive")
	ErrInvalidPercent  = errors.New("challenge discount percent must be between 0 and 100")
	ErrInvalidKind     = errors.New("invalid challenge kind")
	ErrInvalidType     = errors.New("invalid challenge type")
)

// Kind selects which of the two independent run instances a Run is.
type Kind string

const (
	KindTime   Kind = "time"
	KindTryNow Kind = "trynow"
)

func NewKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindTime, KindTryNow:
		return Kind(s), nil
	}
	return "", ErrInvalidKind
}

// Type is the try-now sub-mode: a timer discount, or the free-first-N flash mechanic.
type Type string

const (
	TypeTimer Type = "timer"
	TypeFlash Type = "flash"
)

func NewType(s string) (Type, error) {
	switch Type(s) {
	case TypeTimer, TypeFlash:
		return Type(s), nil
	case "":
		return TypeTimer, nil
	}
	return "", ErrInvalidType
}

type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusTimedOut  Status = "timed_out"
)

// LegacyName maps the unified status onto the per-kind names older clients render.
func (s Status) LegacyName(k Kind) string {
	switch s {
	case StatusRunning:
		if k == KindTryNow {
			return "active"
		}
		return "started"
	case StatusTimedOut:
		if k == KindTryNow {
			return "failed"
		}
		return "expired"
	}
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusTimedOut
}
