package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"newsbrief/domain"
	"newsbrief/internal/repository/mysql/model"
)

// articleColumns 附带点赞数和评论数的列选择
// Like and comment counts live in their relation tables only; every read
// derives them with COUNT subqueries so they can never drift.
const articleColumns = "article.*, " +
	"(SELECT COUNT(*) FROM user_likes ul WHERE ul.article_id = article.id) AS likes, " +
	"(SELECT COUNT(*) FROM comment c WHERE c.article_id = article.id) AS comments"

type articleRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository 创建文章存储层
func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

func (m *articleRepository) Fetch(ctx context.Context) ([]domain.Article, error) {
	var articles []model.Article
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select(articleColumns).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(articles), nil
}

func (m *articleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	var article model.Article
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select(articleColumns).
		Where("article.id = ?", id).
		First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Article{}, domain.ErrNotFound
	} else if err != nil {
		return domain.Article{}, err
	}
	return article.ToDomain(), nil
}

func (m *articleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var articles []model.Article
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select(articleColumns).
		Where("article.id IN ?", ids).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(articles), nil
}

func (m *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	result := m.DB.WithContext(ctx).Create(&articleModel)
	if result.Error != nil {
		return result.Error
	}
	a.ID = articleModel.ID
	a.CreatedAt = articleModel.CreatedAt
	a.UpdatedAt = articleModel.UpdatedAt
	return nil
}

func (m *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	result := m.DB.WithContext(ctx).Model(&articleModel).Updates(&articleModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete 在一个事务中级联删除评论、点赞记录和文章本身
func (m *articleRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&model.UserLike{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Article{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (m *articleRepository) AddViews(ctx context.Context, id int64, deltaViews int64) error {
	result := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + ?", deltaViews))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *articleRepository) UpdateTrendingScores(ctx context.Context, scores map[int64]float64) error {
	if len(scores) == 0 {
		return nil
	}
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, score := range scores {
			err := tx.Model(&model.Article{}).
				Where("id = ?", id).
				Update("trending_score", score).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (m *articleRepository) FetchNewest(ctx context.Context) ([]domain.Article, error) {
	var articles []model.Article
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select(articleColumns).
		Order("published_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(articles), nil
}

func (m *articleRepository) FetchTopByMetric(ctx context.Context, metric domain.RankMetric, limit int64) ([]domain.Article, error) {
	var order string
	switch metric {
	case domain.RankTrending:
		order = "trending_score DESC"
	case domain.RankViews:
		order = "views DESC"
	case domain.RankLikes:
		order = "likes DESC"
	case domain.RankComments:
		order = "comments DESC"
	default:
		return nil, domain.ErrBadParamInput
	}

	var articles []model.Article
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select(articleColumns).
		Order(order).
		Limit(int(limit)).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(articles), nil
}

// ToggleLike 在一个事务中翻转 (article, user) 点赞记录
func (m *articleRepository) ToggleLike(ctx context.Context, articleID, userID int64) (liked bool, err error) {
	err = m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row model.UserLike
		result := tx.Where("article_id = ? AND user_id = ?", articleID, userID).
			Limit(1).
			Find(&row)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected > 0 {
			liked = false
			return tx.Where("article_id = ? AND user_id = ?", articleID, userID).
				Delete(&model.UserLike{}).Error
		}

		liked = true
		record := model.NewUserLikeFromDomain(domain.UserLike{
			ArticleID: articleID,
			UserID:    userID,
			CreatedAt: time.Now(),
		})
		return tx.Create(&record).Error
	})
	return liked, err
}

func (m *articleRepository) HasLiked(ctx context.Context, articleID, userID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.UserLike{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func toDomainList(articles []model.Article) []domain.Article {
	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return res
}
