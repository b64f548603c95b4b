package queries

import "context"

const defaultPendingJobsLimit = 50

type NotificationReadStore interface {
	GetPendingJobs(ctx context.Context, limit int32) ([]*NotificationJobView, error)
}

type NotificationQueries interface {
	ListPending(ctx context.Context, limit int) ([]*NotificationJobView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListPending(ctx context.Context, limit int) ([]*NotificationJobView, error) {
	if limit <= 0 {
		limit = defaultPendingJobsLimit
	}
	return q.store.GetPendingJobs(ctx, int32(min(limit, MaxListLimit)))
}
