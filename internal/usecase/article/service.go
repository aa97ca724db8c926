package article

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"newsbrief/domain"
)

type Service struct {
	articleRepo domain.ArticleRepository
	userRepo    domain.UserRepository
	cache       domain.ArticleCache
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(a domain.ArticleRepository, u domain.UserRepository, c domain.ArticleCache) *Service {
	return &Service{
		articleRepo: a,
		userRepo:    u,
		cache:       c,
	}
}

func (s *Service) Fetch(ctx context.Context) ([]domain.Article, error) {
	return s.articleRepo.Fetch(ctx)
}

// GetByID retrieves one article and counts the read: views increase by
// exactly 1 per single-article fetch, never on listings.
func (s *Service) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	res, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}

	if err := s.articleRepo.AddViews(ctx, id, 1); err != nil {
		logrus.Errorf("failed to AddViews for article %d: %v", id, err)
		return res, err
	}
	res.Views++

	return res, nil
}

func (s *Service) Store(ctx context.Context, a *domain.Article) error {
	if a.PublishedAt.IsZero() {
		a.PublishedAt = time.Now()
	}
	if err := s.articleRepo.Store(ctx, a); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

func (s *Service) Update(ctx context.Context, a *domain.Article) error {
	a.UpdatedAt = time.Now()
	if err := s.articleRepo.Update(ctx, a); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

// Delete removes the article; the repository cascades to its comments and
// like rows inside one transaction.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

// ToggleLike flips the like state of (article, user) and returns the new
// state. The relation is a single table keyed by the pair and the flip runs
// in one store transaction, so concurrent toggles serialize on the row.
func (s *Service) ToggleLike(ctx context.Context, articleID, userID int64) (bool, error) {
	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		return false, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return false, err
	}

	return s.articleRepo.ToggleLike(ctx, articleID, userID)
}

// IsLiked treats an unknown user as "not liked" rather than a fault, so the
// endpoint works for anonymous visitors.
func (s *Service) IsLiked(ctx context.Context, articleID, userID int64) (bool, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return s.articleRepo.HasLiked(ctx, articleID, userID)
}

// invalidateListings drops the cached listings that article mutations make
// stale. Best effort: rank snapshots also carry a TTL.
func (s *Service) invalidateListings(ctx context.Context) {
	if err := s.cache.DeleteNewest(ctx); err != nil {
		logrus.Warnf("failed to invalidate newest cache: %v", err)
	}
	if err := s.cache.DeleteRank(ctx, domain.RankTrending); err != nil {
		logrus.Warnf("failed to invalidate trending rank cache: %v", err)
	}
}
