package comment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"newsbrief/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	userRepo    domain.UserRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, articleRepo domain.ArticleRepository, userRepo domain.UserRepository) *service {
	return &service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

func (s *service) Create(ctx context.Context, articleID, userID int64, content string) (domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Comment{}, domain.ErrBadParamInput
	}

	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		return domain.Comment{}, err
	}
	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.Comment{}, err
	}

	c := domain.Comment{
		ArticleID: articleID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
		User:      &author,
	}
	if err := s.commentRepo.Store(ctx, &c); err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}

// Delete removes a comment on behalf of requesterID.
// 只有评论作者和管理员可以删除
func (s *service) Delete(ctx context.Context, commentID, requesterID int64) error {
	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return err
	}

	if c.UserID != requester.ID && !requester.HasRole(domain.RoleAdmin) {
		return domain.ErrForbidden
	}

	return s.commentRepo.Delete(ctx, commentID)
}

func (s *service) FetchByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	comments, err := s.commentRepo.FetchByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if err := s.fillAuthors(ctx, comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// fillAuthors attaches author info to the comments, one concurrent lookup per
// distinct user. A comment whose author no longer exists keeps a nil User.
func (s *service) fillAuthors(ctx context.Context, comments []domain.Comment) error {
	ids := make(map[int64]struct{}, len(comments))
	for i := range comments {
		ids[comments[i].UserID] = struct{}{}
	}

	var mu sync.Mutex
	users := make(map[int64]domain.User, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for id := range ids {
		id := id
		g.Go(func() error {
			u, err := s.userRepo.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil
				}
				return err
			}
			mu.Lock()
			users[id] = u
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range comments {
		if u, ok := users[comments[i].UserID]; ok {
			comments[i].User = &u
		}
	}
	return nil
}
