package rest_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsbrief/domain"
	"newsbrief/domain/mocks"
	"newsbrief/internal/rest"
)

func TestCommentCreate(t *testing.T) {
	created := domain.Comment{
		ID:        9,
		ArticleID: 1,
		UserID:    5,
		Content:   "nice",
		CreatedAt: time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC),
		User:      &domain.User{ID: 5, Username: "alice"},
	}

	t.Run("created", func(t *testing.T) {
		mockUsecase := new(mocks.CommentUsecase)
		mockUsecase.On("Create", mock.Anything, int64(1), int64(5), "nice").Return(created, nil).Once()

		r := gin.New()
		h := rest.NewCommentHandler(mockUsecase)
		r.POST("/articles/:id/comments", fakeAuth(5), h.Create)

		w := performRequest(r, http.MethodPost, "/articles/1/comments", `{"content":"nice"}`)
		assert.Equal(t, http.StatusCreated, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "nice", body["content"])
		assert.Equal(t, "alice", body["username"])
		mockUsecase.AssertExpectations(t)
	})

	t.Run("empty body is a bad request", func(t *testing.T) {
		mockUsecase := new(mocks.CommentUsecase)

		r := gin.New()
		h := rest.NewCommentHandler(mockUsecase)
		r.POST("/articles/:id/comments", fakeAuth(5), h.Create)

		w := performRequest(r, http.MethodPost, "/articles/1/comments", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("whitespace content is rejected by the service", func(t *testing.T) {
		mockUsecase := new(mocks.CommentUsecase)
		mockUsecase.On("Create", mock.Anything, int64(1), int64(5), "   ").
			Return(domain.Comment{}, domain.ErrBadParamInput).Once()

		r := gin.New()
		h := rest.NewCommentHandler(mockUsecase)
		r.POST("/articles/:id/comments", fakeAuth(5), h.Create)

		w := performRequest(r, http.MethodPost, "/articles/1/comments", `{"content":"   "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		r := gin.New()
		h := rest.NewCommentHandler(new(mocks.CommentUsecase))
		r.POST("/articles/:id/comments", h.Create)

		w := performRequest(r, http.MethodPost, "/articles/1/comments", `{"content":"nice"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCommentDelete(t *testing.T) {
	t.Run("no content on success", func(t *testing.T) {
		mockUsecase := new(mocks.CommentUsecase)
		mockUsecase.On("Delete", mock.Anything, int64(9), int64(5)).Return(nil).Once()

		r := gin.New()
		h := rest.NewCommentHandler(mockUsecase)
		r.DELETE("/comments/:id", fakeAuth(5), h.Delete)

		w := performRequest(r, http.MethodDelete, "/comments/9", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("forbidden for other users", func(t *testing.T) {
		mockUsecase := new(mocks.CommentUsecase)
		mockUsecase.On("Delete", mock.Anything, int64(9), int64(8)).Return(domain.ErrForbidden).Once()

		r := gin.New()
		h := rest.NewCommentHandler(mockUsecase)
		r.DELETE("/comments/:id", fakeAuth(8), h.Delete)

		w := performRequest(r, http.MethodDelete, "/comments/9", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCommentFetchByArticle(t *testing.T) {
	comments := []domain.Comment{
		{ID: 2, ArticleID: 1, UserID: 5, Content: "second", User: &domain.User{ID: 5, Username: "alice"}},
		{ID: 1, ArticleID: 1, UserID: 8, Content: "first"},
	}

	mockUsecase := new(mocks.CommentUsecase)
	mockUsecase.On("FetchByArticle", mock.Anything, int64(1)).Return(comments, nil).Once()

	r := gin.New()
	h := rest.NewCommentHandler(mockUsecase)
	r.GET("/articles/:id/comments", h.FetchByArticle)

	w := performRequest(r, http.MethodGet, "/articles/1/comments", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Comments []map[string]any `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Comments, 2)
	assert.Equal(t, "second", body.Comments[0]["content"])
	assert.Equal(t, "alice", body.Comments[0]["username"])
	// author no longer resolvable, username omitted
	_, present := body.Comments[1]["username"]
	assert.False(t, present)
}
