package handlers_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
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

func authedRequestWithBody(method, target, body string, user *models.User, vars map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if user != nil {
		ctx := context.WithValue(req.Context(), middleware.UserContextKey, user)
		req = req.WithContext(ctx)
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func TestAddComment(t *testing.T) {
	store, mock := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	user := &models.User{ID: uuid.New(), Username: "u1"}
	videoID := uuid.New()
	vars := map[string]string{"videoId": videoID.String()}

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM videos`).
		WithArgs(videoID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`INSERT INTO comments`).
		WithArgs(videoID, user.ID, "great video").
		WillReturnRows(sqlmock.NewRows([]string{"id", "video_id", "owner_id", "content", "created_at"}).
			AddRow(uuid.New().String(), videoID.String(), user.ID.String(), "great video", time.Now()))

	rr := httptest.NewRecorder()
	h.AddComment(rr, authedRequestWithBody(http.MethodPost,
		"/api/v1/comments/"+videoID.String(), `{"content":"great video"}`, user, vars))

	assert.Equal(t, http.StatusCreated, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "great video", data["content"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCommentBlankContent(t *testing.T) {
	store, mock := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	user := &models.User{ID: uuid.New(), Username: "u1"}
	videoID := uuid.New()
	vars := map[string]string{"videoId": videoID.String()}

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM videos`).
		WithArgs(videoID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	rr := httptest.NewRecorder()
	h.AddComment(rr, authedRequestWithBody(http.MethodPost,
		"/api/v1/comments/"+videoID.String(), `{"content":"   "}`, user, vars))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAddCommentMissingVideo(t *testing.T) {
	store, mock := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	user := &models.User{ID: uuid.New(), Username: "u1"}
	videoID := uuid.New()
	vars := map[string]string{"videoId": videoID.String()}

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM videos`).
		WithArgs(videoID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	rr := httptest.NewRecorder()
	h.AddComment(rr, authedRequestWithBody(http.MethodPost,
		"/api/v1/comments/"+videoID.String(), `{"content":"hi"}`, user, vars))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteCommentNotOwned(t *testing.T) {
	store, mock := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	user := &models.User{ID: uuid.New(), Username: "u1"}
	commentID := uuid.New()
	vars := map[string]string{"commentId": commentID.String()}

	// the owner-scoped delete matches nothing for another user's comment
	mock.ExpectQuery(`DELETE FROM comments`).
		WithArgs(commentID, user.ID).
		WillReturnError(sql.ErrNoRows)

	rr := httptest.NewRecorder()
	h.DeleteComment(rr, authedRequest(http.MethodDelete, "/api/v1/comments/c/"+commentID.String(), user, vars))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Comment not found", envelope["message"])
}
