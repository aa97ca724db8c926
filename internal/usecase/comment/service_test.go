package comment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsbrief/domain"
	"newsbrief/domain/mocks"
	"newsbrief/internal/usecase/comment"
)

func TestCreate(t *testing.T) {
	mockArticle := domain.Article{ID: 1, Title: "title"}
	mockUser := domain.User{ID: 5, Username: "alice", Roles: []string{"USER"}}

	t.Run("success", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		articleRepo := new(mocks.ArticleRepository)
		userRepo := new(mocks.UserRepository)
		articleRepo.On("GetByID", mock.Anything, int64(1)).Return(mockArticle, nil).Once()
		userRepo.On("GetByID", mock.Anything, int64(5)).Return(mockUser, nil).Once()
		commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()

		s := comment.NewService(commentRepo, articleRepo, userRepo)
		c, err := s.Create(context.Background(), 1, 5, "nice")
		require.NoError(t, err)
		assert.Equal(t, "nice", c.Content)
		assert.Equal(t, int64(1), c.ArticleID)
		assert.Equal(t, int64(5), c.UserID)
		assert.False(t, c.CreatedAt.IsZero())
		require.NotNil(t, c.User)
		assert.Equal(t, "alice", c.User.Username)
		commentRepo.AssertExpectations(t)
	})

	t.Run("whitespace only content is rejected", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		articleRepo := new(mocks.ArticleRepository)
		userRepo := new(mocks.UserRepository)

		s := comment.NewService(commentRepo, articleRepo, userRepo)
		_, err := s.Create(context.Background(), 1, 5, "   ")
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		articleRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("unknown article", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		articleRepo := new(mocks.ArticleRepository)
		userRepo := new(mocks.UserRepository)
		articleRepo.On("GetByID", mock.Anything, int64(1)).Return(domain.Article{}, domain.ErrNotFound).Once()

		s := comment.NewService(commentRepo, articleRepo, userRepo)
		_, err := s.Create(context.Background(), 1, 5, "nice")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		articleRepo := new(mocks.ArticleRepository)
		userRepo := new(mocks.UserRepository)
		articleRepo.On("GetByID", mock.Anything, int64(1)).Return(mockArticle, nil).Once()
		userRepo.On("GetByID", mock.Anything, int64(5)).Return(domain.User{}, domain.ErrNotFound).Once()

		s := comment.NewService(commentRepo, articleRepo, userRepo)
		_, err := s.Create(context.Background(), 1, 5, "nice")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	mockComment := domain.Comment{ID: 9, ArticleID: 1, UserID: 5, Content: "mine"}
	author := domain.User{ID: 5, Username: "alice", Roles: []string{"USER"}}
	admin := domain.User{ID: 2, Username: "root", Roles: []string{"USER", domain.RoleAdmin}}
	stranger := domain.User{ID: 8, Username: "bob", Roles: []string{"USER"}}

	t.Run("author can delete", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		userRepo := new(mocks.UserRepository)
		commentRepo.On("GetByID", mock.Anything, int64(9)).Return(mockComment, nil).Once()
		userRepo.On("GetByID", mock.Anything, int64(5)).Return(author, nil).Once()
		commentRepo.On("Delete", mock.Anything, int64(9)).Return(nil).Once()

		s := comment.NewService(commentRepo, new(mocks.ArticleRepository), userRepo)
		err := s.Delete(context.Background(), 9, 5)
		require.NoError(t, err)
		commentRepo.AssertExpectations(t)
	})

	t.Run("admin can delete any comment", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		userRepo := new(mocks.UserRepository)
		commentRepo.On("GetByID", mock.Anything, int64(9)).Return(mockComment, nil).Once()
		userRepo.On("GetByID", mock.Anything, int64(2)).Return(admin, nil).Once()
		commentRepo.On("Delete", mock.Anything, int64(9)).Return(nil).Once()

		s := comment.NewService(commentRepo, new(mocks.ArticleRepository), userRepo)
		err := s.Delete(context.Background(), 9, 2)
		require.NoError(t, err)
	})

	t.Run("other users are forbidden", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		userRepo := new(mocks.UserRepository)
		commentRepo.On("GetByID", mock.Anything, int64(9)).Return(mockComment, nil).Once()
		userRepo.On("GetByID", mock.Anything, int64(8)).Return(stranger, nil).Once()

		s := comment.NewService(commentRepo, new(mocks.ArticleRepository), userRepo)
		err := s.Delete(context.Background(), 9, 8)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown comment", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		commentRepo.On("GetByID", mock.Anything, int64(9)).Return(domain.Comment{}, domain.ErrNotFound).Once()

		s := comment.NewService(commentRepo, new(mocks.ArticleRepository), new(mocks.UserRepository))
		err := s.Delete(context.Background(), 9, 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFetchByArticle(t *testing.T) {
	t.Run("attaches the author to every comment", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		userRepo := new(mocks.UserRepository)
		stored := []domain.Comment{
			{ID: 3, ArticleID: 1, UserID: 5, Content: "third"},
			{ID: 2, ArticleID: 1, UserID: 8, Content: "second"},
			{ID: 1, ArticleID: 1, UserID: 5, Content: "first"},
		}
		commentRepo.On("FetchByArticle", mock.Anything, int64(1)).Return(stored, nil).Once()
		// two distinct authors, one lookup each
		userRepo.On("GetByID", mock.Anything, int64(5)).Return(domain.User{ID: 5, Username: "alice"}, nil).Once()
		userRepo.On("GetByID", mock.Anything, int64(8)).Return(domain.User{ID: 8, Username: "bob"}, nil).Once()

		s := comment.NewService(commentRepo, new(mocks.ArticleRepository), userRepo)
		got, err := s.FetchByArticle(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.NotNil(t, got[0].User)
		assert.Equal(t, "alice", got[0].User.Username)
		require.NotNil(t, got[1].User)
		assert.Equal(t, "bob", got[1].User.Username)
		require.NotNil(t, got[2].User)
		assert.Equal(t, "alice", got[2].User.Username)
		userRepo.AssertExpectations(t)
	})

	t.Run("deleted author leaves the comment without user info", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		userRepo := new(mocks.UserRepository)
		stored := []domain.Comment{{ID: 1, ArticleID: 1, UserID: 99, Content: "orphaned"}}
		commentRepo.On("FetchByArticle", mock.Anything, int64(1)).Return(stored, nil).Once()
		userRepo.On("GetByID", mock.Anything, int64(99)).Return(domain.User{}, domain.ErrNotFound).Once()

		s := comment.NewService(commentRepo, new(mocks.ArticleRepository), userRepo)
		got, err := s.FetchByArticle(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].User)
	})

	t.Run("author lookup failure surfaces", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		userRepo := new(mocks.UserRepository)
		stored := []domain.Comment{{ID: 1, ArticleID: 1, UserID: 5, Content: "first"}}
		commentRepo.On("FetchByArticle", mock.Anything, int64(1)).Return(stored, nil).Once()
		userRepo.On("GetByID", mock.Anything, int64(5)).Return(domain.User{}, errors.New("store down")).Once()

		s := comment.NewService(commentRepo, new(mocks.ArticleRepository), userRepo)
		_, err := s.FetchByArticle(context.Background(), 1)
		assert.Error(t, err)
	})
}
