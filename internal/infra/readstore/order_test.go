//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

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

func orderRow(number string, createdAt time.Time) sqlc.Orders {
	return sqlc.Orders{
		ID:           uuid.New(),
		OrderNumber:  number,
		CustomerName: "Olena",
		Phone:        "+380501234567",
		Subtotal:     500,
		Total:        339,
		CreatedAt:    pgconv.TimeToPgtype(createdAt),
	}
}

func TestOrderReadStore_GetByNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("success: items attached in position order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockOrderReadQueries(ctrl)
		db := dbtest.NopDB{}
		row := orderRow("MB-260314-000001", baseTime)

		gomock.InOrder(
			q.EXPECT().GetOrderByNumber(ctx, db, row.OrderNumber).Return(row, nil),
			q.EXPECT().ListOrderItemsByOrderIDs(ctx, db, []uuid.UUID{row.ID}).Return([]sqlc.OrderItems{
				{OrderID: row.ID, Position: 0, Title: "Box S", Price: "150 ₴", Quantity: 2},
				{OrderID: row.ID, Position: 1, Title: "Box M", Price: "200 ₴", Quantity: 1},
			}, nil),
		)

		view, err := readstore.NewOrderReadStore(q, db).GetByNumber(ctx, row.OrderNumber)
		require.NoError(t, err)
		assert.Equal(t, row.OrderNumber, view.OrderNumber)
		assert.Equal(t, int64(339), view.Total)
		require.Len(t, view.Items, 2)
		assert.Equal(t, "Box S", view.Items[0].Title)
		assert.Equal(t, int32(2), view.Items[0].Quantity)
		assert.True(t, baseTime.Equal(view.CreatedAt))
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockOrderReadQueries(ctrl)
		q.EXPECT().GetOrderByNumber(ctx, gomock.Any(), "MB-260314-999999").Return(sqlc.Orders{}, pgx.ErrNoRows)

		view, err := readstore.NewOrderReadStore(q, dbtest.NopDB{}).GetByNumber(ctx, "MB-260314-999999")
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: item load fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockOrderReadQueries(ctrl)
		row := orderRow("MB-260314-000002", baseTime)
		q.EXPECT().GetOrderByID(ctx, gomock.Any(), row.ID).Return(row, nil)
		q.EXPECT().ListOrderItemsByOrderIDs(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		view, err := readstore.NewOrderReadStore(q, dbtest.NopDB{}).GetByID(ctx, row.ID)
		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOrderReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("first page batches item lookups", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockOrderReadQueries(ctrl)
		a := orderRow("MB-260314-000003", baseTime.Add(time.Minute))
		b := orderRow("MB-260314-000004", baseTime)

		q.EXPECT().ListOrdersFirstPage(ctx, gomock.Any(), int32(3)).Return([]sqlc.Orders{a, b}, nil)
		q.EXPECT().ListOrderItemsByOrderIDs(ctx, gomock.Any(), []uuid.UUID{a.ID, b.ID}).Return([]sqlc.OrderItems{
			{OrderID: b.ID, Title: "Box L", Quantity: 1},
		}, nil)

		views, err := readstore.NewOrderReadStore(q, dbtest.NopDB{}).ListFirstPage(ctx, 3)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Empty(t, views[0].Items)
		require.Len(t, views[1].Items, 1)
		assert.Equal(t, "Box L", views[1].Items[0].Title)
	})

	t.Run("keyset page passes the cursor through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockOrderReadQueries(ctrl)
		afterID := uuid.New()

		q.EXPECT().ListOrdersKeyset(ctx, gomock.Any(), sqlc.ListOrdersKeysetParams{
			CreatedAt:  pgconv.TimeToPgtype(baseTime),
			ID:         afterID,
			LimitCount: 21,
		}).Return(nil, nil)

		views, err := readstore.NewOrderReadStore(q, dbtest.NopDB{}).ListAfter(ctx, baseTime, afterID, 21)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
