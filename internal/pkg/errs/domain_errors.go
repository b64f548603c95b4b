package errs

// Sentinels checked on both sides of the handler/use-case boundary.
var (
	ErrIdempotencyKeyRequired = New("idempotency key required")
	ErrInvalidIdempotencyKey  = New("invalid idempotency key format")
)
