//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/usecase/queries"
	"mysterybox-storefront/tests/common/builder"
	queriesmock "mysterybox-storefront/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductQueries(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockProductReadStore(ctrl)
	q := queries.NewProductQueries(store)
	classic := builder.NewProductBuilder().BuildReadModel()

	t.Run("list passes store order through", func(t *testing.T) {
		premium := builder.NewProductBuilder().WithCode("MB-PREMIUM").BuildReadModel()
		store.EXPECT().List(ctx).Return([]*queries.ProductView{classic, premium}, nil)

		got, err := q.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "MB-CLASSIC", got[0].Code)
	})

	t.Run("missing product maps to not found", func(t *testing.T) {
		id := uuid.New()
		store.EXPECT().GetByID(ctx, id).Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, queries.ErrProductNotFound)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("connection reset")
		store.EXPECT().GetByID(ctx, classic.ID).Return(nil, boom)

		_, err := q.GetByID(ctx, classic.ID)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, queries.ErrProductNotFound)
	})
}

func TestNotificationQueries_ListPending(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		limit     int
		wantLimit int32
	}{
		{name: "zero uses default", limit: 0, wantLimit: 50},
		{name: "explicit limit", limit: 10, wantLimit: 10},
		{name: "capped at max", limit: 10_000, wantLimit: int32(queries.MaxListLimit)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockNotificationReadStore(ctrl)
			jobs := []*queries.NotificationJobView{{ID: uuid.New(), Topic: "order_created", Status: "queued"}}
			store.EXPECT().GetPendingJobs(ctx, tt.wantLimit).Return(jobs, nil)

			got, err := queries.NewNotificationQueries(store).ListPending(ctx, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, jobs, got)
		})
	}
}
