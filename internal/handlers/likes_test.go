package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"vidtube/internal/handlers"
	"vidtube/internal/middleware"
	"vidtube/internal/models"
	"vidtube/internal/test"
)

func authedRequest(method, target string, user *models.User, vars map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if user != nil {
		ctx := context.WithValue(req.Context(), middleware.UserContextKey, user)
		req = req.WithContext(ctx)
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}
	return envelope
}

var reactionColumns = []string{"id", "user_id", "target_kind", "target_id", "created_at"}

// A first toggle creates the row and reports "liked"; repeating the
// identical call removes it and reports "unliked". Both return 200.
func TestToggleVideoLikeFlips(t *testing.T) {
	store, mock := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	user := &models.User{ID: uuid.New(), Username: "u1"}
	videoID := uuid.New()
	vars := map[string]string{"videoId": videoID.String()}

	// First call: target exists, insert succeeds.
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM videos`).
		WithArgs(videoID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`INSERT INTO reactions`).
		WithArgs(user.ID, "video", videoID).
		WillReturnRows(sqlmock.NewRows(reactionColumns).
			AddRow(uuid.New().String(), user.ID.String(), "video", videoID.String(), time.Now()))

	rr := httptest.NewRecorder()
	h.ToggleVideoLike(rr, authedRequest(http.MethodPost, "/api/v1/likes/toggle/v/"+videoID.String(), user, vars))

	assert.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "liked", data["state"])

	// Second call: insert conflicts, delete removes the row.
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM videos`).
		WithArgs(videoID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`INSERT INTO reactions`).
		WithArgs(user.ID, "video", videoID).
		WillReturnRows(sqlmock.NewRows(reactionColumns))
	mock.ExpectQuery(`DELETE FROM reactions`).
		WithArgs(user.ID, "video", videoID).
		WillReturnRows(sqlmock.NewRows(reactionColumns).
			AddRow(uuid.New().String(), user.ID.String(), "video", videoID.String(), time.Now()))

	rr = httptest.NewRecorder()
	h.ToggleVideoLike(rr, authedRequest(http.MethodPost, "/api/v1/likes/toggle/v/"+videoID.String(), user, vars))

	assert.Equal(t, http.StatusOK, rr.Code)
	envelope = decodeEnvelope(t, rr)
	data = envelope["data"].(map[string]interface{})
	assert.Equal(t, "unliked", data["state"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleVideoLikeInvalidID(t *testing.T) {
	store, _ := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	user := &models.User{ID: uuid.New(), Username: "u1"}
	rr := httptest.NewRecorder()
	h.ToggleVideoLike(rr, authedRequest(http.MethodPost, "/api/v1/likes/toggle/v/not-a-uuid", user, map[string]string{"videoId": "not-a-uuid"}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, false, envelope["success"])
}

func TestToggleVideoLikeUnauthenticated(t *testing.T) {
	store, _ := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	videoID := uuid.New()
	rr := httptest.NewRecorder()
	h.ToggleVideoLike(rr, authedRequest(http.MethodPost, "/api/v1/likes/toggle/v/"+videoID.String(), nil, map[string]string{"videoId": videoID.String()}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestToggleVideoLikeMissingTarget(t *testing.T) {
	store, mock := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	user := &models.User{ID: uuid.New(), Username: "u1"}
	videoID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM videos`).
		WithArgs(videoID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	rr := httptest.NewRecorder()
	h.ToggleVideoLike(rr, authedRequest(http.MethodPost, "/api/v1/likes/toggle/v/"+videoID.String(), user, map[string]string{"videoId": videoID.String()}))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLikedVideosEmptyIsNotFound(t *testing.T) {
	store, mock := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	user := &models.User{ID: uuid.New(), Username: "u1"}
	mock.ExpectQuery(`FROM reactions r\s+JOIN videos v`).
		WithArgs(user.ID, "video").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "title", "description", "thumbnail_url", "video_url",
			"duration_seconds", "views", "is_published", "created_at", "updated_at",
		}))

	rr := httptest.NewRecorder()
	h.GetLikedVideos(rr, authedRequest(http.MethodGet, "/api/v1/likes/videos", user, nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
