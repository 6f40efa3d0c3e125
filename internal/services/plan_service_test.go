package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/planhub/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listPlansQuery = regexp.QuoteMeta(`SELECT * FROM "plans" ORDER BY price asc`)

func TestListPlans(t *testing.T) {
	t.Run("returns plans cheapest first", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupMockDB(t)
		defer cleanup()

		now := time.Now()
		columns := []string{"id", "name", "price", "features", "created_at", "updated_at"}
		rows := sqlmock.NewRows(columns).
			AddRow("monthly", "Monthly", 9.99, []byte(`["Email support"]`), now, now).
			AddRow("2months", "Two Months", 17.99, []byte(`[]`), now, now).
			AddRow("annual", "Annual", 99.99, []byte(`[]`), now, now)

		mock.ExpectQuery(listPlansQuery).WillReturnRows(rows)

		plans, err := NewPlanService(db).ListPlans()

		require.NoError(t, err)
		require.Len(t, plans, 3)
		assert.Equal(t, "monthly", plans[0].ID)
		assert.Equal(t, "annual", plans[2].ID)
		assert.LessOrEqual(t, plans[0].Price, plans[1].Price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates database errors", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupMockDB(t)
		defer cleanup()

		mock.ExpectQuery(listPlansQuery).WillReturnError(errors.New("connection refused"))

		plans, err := NewPlanService(db).ListPlans()

		assert.Error(t, err)
		assert.Nil(t, plans)
	})
}
