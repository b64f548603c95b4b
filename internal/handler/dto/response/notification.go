package response

import (
	"time"

	"mysterybox-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationJobResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	RunAt     time.Time `json:"runAt"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"lastError,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromNotificationJobViews(vs []*queries.NotificationJobView) []*NotificationJobResponse {
	res := make([]*NotificationJobResponse, len(vs))
	for i, v := range vs {
		res[i] = copyView[NotificationJobResponse](v)
	}
	return res
}
