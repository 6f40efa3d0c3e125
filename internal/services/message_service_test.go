package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/planhub/backend/internal/dto"
	"github.com/planhub/backend/internal/models"
	"github.com/planhub/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listMessagesQuery = regexp.QuoteMeta(`SELECT * FROM "messages" ORDER BY created_at desc`)

func TestSubmitContact(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "messages"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewMessageService(db).SubmitContact(&dto.ContactRequest{
		Name:    "Grace Hopper",
		Email:   "grace@example.com",
		Message: "How do I change my plan?",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMessages(t *testing.T) {
	t.Run("returns messages newest first", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupMockDB(t)
		defer cleanup()

		newer := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
		older := newer.Add(-48 * time.Hour)
		columns := []string{"id", "user_id", "name", "email", "subject", "body", "type", "created_at"}
		rows := sqlmock.NewRows(columns).
			AddRow(uuid.New().String(), uuid.Nil.String(), "Grace", "grace@example.com", "Contact form submission", "Hi", models.MessageTypeContact, newer).
			AddRow(uuid.New().String(), uuid.New().String(), "", "", "New subscription", "...", models.MessageTypeSubscription, older)

		mock.ExpectQuery(listMessagesQuery).WillReturnRows(rows)

		messages, err := NewMessageService(db).ListMessages()

		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.True(t, messages[0].CreatedAt.After(messages[1].CreatedAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates database errors", func(t *testing.T) {
		db, mock, cleanup := testutil.SetupMockDB(t)
		defer cleanup()

		mock.ExpectQuery(listMessagesQuery).WillReturnError(errors.New("connection refused"))

		messages, err := NewMessageService(db).ListMessages()

		assert.Error(t, err)
		assert.Nil(t, messages)
	})
}
