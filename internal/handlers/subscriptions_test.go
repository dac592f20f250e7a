package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"vidtube/internal/handlers"
	"vidtube/internal/models"
	"vidtube/internal/test"
)

func TestToggleSubscriptionSubscribes(t *testing.T) {
	store, mock := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	user := &models.User{ID: uuid.New(), Username: "u1"}
	channelID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users`).
		WithArgs(channelID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`INSERT INTO subscriptions`).
		WithArgs(user.ID, channelID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "subscriber_id", "channel_id", "created_at"}).
			AddRow(uuid.New().String(), user.ID.String(), channelID.String(), time.Now()))

	rr := httptest.NewRecorder()
	h.ToggleSubscription(rr, authedRequest(http.MethodPost, "/api/v1/subscriptions/c/"+channelID.String(), user, map[string]string{"channelId": channelID.String()}))

	assert.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "subscribed", data["state"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleSubscriptionSelfIsRejected(t *testing.T) {
	store, _ := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	user := &models.User{ID: uuid.New(), Username: "u1"}

	rr := httptest.NewRecorder()
	h.ToggleSubscription(rr, authedRequest(http.MethodPost, "/api/v1/subscriptions/c/"+user.ID.String(), user, map[string]string{"channelId": user.ID.String()}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, false, envelope["success"])
}

func TestToggleSubscriptionMissingChannel(t *testing.T) {
	store, mock := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	user := &models.User{ID: uuid.New(), Username: "u1"}
	channelID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users`).
		WithArgs(channelID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	rr := httptest.NewRecorder()
	h.ToggleSubscription(rr, authedRequest(http.MethodPost, "/api/v1/subscriptions/c/"+channelID.String(), user, map[string]string{"channelId": channelID.String()}))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetChannelSubscribersPublic(t *testing.T) {
	store, mock := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	channelID := uuid.New()
	mock.ExpectQuery(`FROM subscriptions s\s+JOIN users u`).
		WithArgs(channelID).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "avatar_url", "joined_at"}).
			AddRow(uuid.New().String(), "alice", nil, time.Now()))

	// No caller identity: subscriber lists are public reads.
	rr := httptest.NewRecorder()
	h.GetChannelSubscribers(rr, authedRequest(http.MethodGet, "/api/v1/subscriptions/c/"+channelID.String(), nil, map[string]string{"channelId": channelID.String()}))

	assert.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, true, envelope["success"])
	assert.Len(t, envelope["data"], 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
