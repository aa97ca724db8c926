package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"newsbrief/domain"
)

const (
	KeyRank   = "article:rank:%s"
	KeyNewest = "article:newest"

	rankTTL   = 5 * time.Minute
	newestTTL = 30 * time.Second
)

type articleCache struct {
	client *redis.Client
}

var _ domain.ArticleCache = (*articleCache)(nil)

func NewArticleCache(client *redis.Client) *articleCache {
	return &articleCache{
		client,
	}
}

func (c *articleCache) GetRank(ctx context.Context, metric domain.RankMetric, limit int64) ([]domain.RankEntry, error) {
	key := fmt.Sprintf(KeyRank, metric)
	zs, err := c.client.ZRevRangeWithScores(ctx, key, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	if len(zs) == 0 {
		// 空 ZSET 和不存在的 key 无法区分，都按未命中处理
		return nil, domain.ErrCacheMiss
	}

	entries := make([]domain.RankEntry, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, domain.RankEntry{ArticleID: id, Score: z.Score})
	}
	return entries, nil
}

func (c *articleCache) SetRank(ctx context.Context, metric domain.RankMetric, entries []domain.RankEntry) error {
	key := fmt.Sprintf(KeyRank, metric)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	members := make([]redis.Z, len(entries))
	for i, e := range entries {
		members[i] = redis.Z{
			Score:  e.Score,
			Member: strconv.FormatInt(e.ArticleID, 10),
		}
	}
	if err := c.client.ZAdd(ctx, key, members...).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, rankTTL).Err()
}

func (c *articleCache) DeleteRank(ctx context.Context, metric domain.RankMetric) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyRank, metric)).Err()
}

func (c *articleCache) GetNewest(ctx context.Context) ([]domain.Article, error) {
	data, err := c.client.Get(ctx, KeyNewest).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	} else if err != nil {
		return nil, err
	}

	var articles []domain.Article
	if err = json.Unmarshal(data, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (c *articleCache) SetNewest(ctx context.Context, articles []domain.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyNewest, data, newestTTL).Err()
}

func (c *articleCache) DeleteNewest(ctx context.Context) error {
	return c.client.Del(ctx, KeyNewest).Err()
}
