//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/infra/readstore"
	sqlc "mysterybox-storefront/internal/infra/sqlc/generated"
	"mysterybox-storefront/internal/pkg/pgconv"
	"mysterybox-storefront/tests/common/dbtest"
	readstoremock "mysterybox-storefront/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductReadStore(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockProductReadQueries(ctrl)
	store := readstore.NewProductReadStore(q, dbtest.NopDB{})

	p := sqlc.Products{ID: uuid.New(), Code: "MB-S", Title: "Mystery Box S", Price: "150 ₴", InStock: true, SortOrder: 1}
	missing := uuid.New()

	q.EXPECT().ListProducts(ctx, gomock.Any()).Return([]sqlc.Products{p}, nil)
	q.EXPECT().GetProduct(ctx, gomock.Any(), p.ID).Return(p, nil)
	q.EXPECT().GetProduct(ctx, gomock.Any(), missing).Return(sqlc.Products{}, pgx.ErrNoRows)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "MB-S", list[0].Code)

	got, err := store.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "150 ₴", got.Price)

	_, err = store.GetByID(ctx, missing)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestNotificationReadStore_GetPendingJobs(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockNotificationReadQueries(ctrl)
	store := readstore.NewNotificationReadStore(q, dbtest.NopDB{})

	q.EXPECT().GetPendingNotificationJobs(ctx, gomock.Any(), int32(10)).Return([]sqlc.NotificationJobs{
		{ID: uuid.New(), Kind: "order.created", Topic: "orders", Status: "queued", RunAt: pgconv.TimeToPgtype(baseTime)},
		{ID: uuid.New(), Kind: "order.created", Topic: "orders", Status: "failed", LastError: pgconv.StringToPgtype("timeout")},
	}, nil)

	jobs, err := store.GetPendingJobs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Nil(t, jobs[0].LastError)
	require.NotNil(t, jobs[1].LastError)
	assert.Equal(t, "timeout", *jobs[1].LastError)

	q.EXPECT().GetPendingNotificationJobs(ctx, gomock.Any(), int32(10)).Return(nil, errDBConnectionLost)
	_, err = store.GetPendingJobs(ctx, 10)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
