package challenge

import (
	"time"

	"mysterybox-storefront/internal/pkg/countdown"
)

type Params struct {
	DurationSeconds int
	DiscountPercent int
	Type            Type
}

func (p Params) validate() error {
	if p.DurationSeconds <= 0 {
		return ErrInvalidDuration
	}
	if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
		return ErrInvalidPercent
	}
	return nil
}

// Run is one time-boxed discount attempt. Not safe for concurrent use; callers serialize access.
type Run struct {
	kind            Kind
	status          Status
	challengeType   Type
	startTime       *time.Time
	durationSeconds int
	discountPercent int
	timeRemaining   int
	// generation changes on every Start and Reset so a caller can tell one run from the next.
	generation uint64
}

func NewRun(kind Kind) *Run {
	return &Run{kind: kind, status: StatusIdle}
}

// Start re-initializes the run from any state.
func (r *Run) Start(now time.Time, p Params) error {
	if err := p.validate(); err != nil {
		return err
	}
	t := p.Type
	if t == "" {
		t = TypeTimer
	}
	started := now
	r.generation++
	r.status = StatusRunning
	r.challengeType = t
	r.startTime = &started
	r.durationSeconds = p.DurationSeconds
	r.discountPercent = p.DiscountPercent
	r.timeRemaining = p.DurationSeconds
	return nil
}

// Sample recomputes the remaining time and reports true only on the sample
// that moves a running challenge to TimedOut.
func (r *Run) Sample(now time.Time) bool {
	if r.status != StatusRunning || r.startTime == nil {
		return false
	}
	r.timeRemaining = countdown.RemainingSince(*r.startTime, r.durationSeconds, now)
	if r.timeRemaining > 0 {
		return false
	}
	r.status = StatusTimedOut
	return true
}

// Complete moves Running to Completed; from any other state it is a no-op returning false.
func (r *Run) Complete() bool {
	if r.status != StatusRunning {
		return false
	}
	r.status = StatusCompleted
	return true
}

// CompleteGeneration completes the run only if it is still the one that had
// the given generation; a run restarted or reset since then is left alone.
func (r *Run) CompleteGeneration(gen uint64) bool {
	if r.generation != gen {
		return false
	}
	return r.Complete()
}

func (r *Run) Reset() {
	*r = Run{kind: r.kind, status: StatusIdle, generation: r.generation + 1}
}

func (r *Run) EffectiveDiscountPercent() int {
	if r.status != StatusRunning {
		return 0
	}
	return r.discountPercent
}

func (r *Run) IsActive() bool {
	return r.status == StatusRunning && r.timeRemaining > 0
}

func (r *Run) Kind() Kind            { return r.kind }
func (r *Run) Status() Status        { return r.status }
func (r *Run) Type() Type            { return r.challengeType }
func (r *Run) StartTime() *time.Time { return r.startTime }
func (r *Run) DurationSeconds() int  { return r.durationSeconds }
func (r *Run) DiscountPercent() int  { return r.discountPercent }
func (r *Run) TimeRemaining() int    { return r.timeRemaining }
func (r *Run) Generation() uint64    { return r.generation }

// View is an immutable copy of a run at one instant.
type View struct {
	Kind            Kind       `json:"kind"`
	Status          Status     `json:"status"`
	LegacyStatus    string     `json:"legacyStatus"`
	Type            Type       `json:"challengeType,omitempty"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	DurationSeconds int        `json:"durationSeconds"`
	DiscountPercent int        `json:"discountPercent"`
	TimeRemaining   int        `json:"timeRemaining"`
	Active          bool       `json:"isActive"`
}

func (r *Run) View() View {
	var start *time.Time
	if r.startTime != nil {
		s := *r.startTime
		start = &s
	}
	return View{
		Kind:            r.kind,
		Status:          r.status,
		LegacyStatus:    r.status.LegacyName(r.kind),
		Type:            r.challengeType,
		StartTime:       start,
		DurationSeconds: r.durationSeconds,
		DiscountPercent: r.discountPercent,
		TimeRemaining:   r.timeRemaining,
		Active:          r.IsActive(),
	}
}
