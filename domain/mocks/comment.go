package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"newsbrief/domain"
)

// CommentRepository is a testify mock of domain.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

var _ domain.CommentRepository = (*CommentRepository)(nil)

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) FetchByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

// CommentUsecase is a testify mock of domain.CommentUsecase.
type CommentUsecase struct {
	mock.Mock
}

var _ domain.CommentUsecase = (*CommentUsecase)(nil)

func (m *CommentUsecase) Create(ctx context.Context, articleID, userID int64, content string) (domain.Comment, error) {
	args := m.Called(ctx, articleID, userID, content)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentUsecase) Delete(ctx context.Context, commentID, requesterID int64) error {
	args := m.Called(ctx, commentID, requesterID)
	return args.Error(0)
}

func (m *CommentUsecase) FetchByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}
