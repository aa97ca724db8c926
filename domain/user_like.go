package domain

import "time"

// UserLike is representing a like record. Existence is binary: the pair
// (UserID, ArticleID) either has a row or it doesn't.
type UserLike struct {
	ArticleID int64
	UserID    int64
	CreatedAt time.Time
}
