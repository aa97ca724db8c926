package mysql

import (
	"context"
	"errors"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"newsbrief/domain"
	"newsbrief/internal/repository/mysql/model"
)

// MySQL error 1062: duplicate entry for a unique index
const dupEntryErrNumber = 1062

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	result := m.DB.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		// the unique index on username is the source of truth; a racing
		// registration loses here rather than at the earlier lookup
		var mysqlErr *driver.MySQLError
		if errors.As(result.Error, &mysqlErr) && mysqlErr.Number == dupEntryErrNumber {
			return domain.ErrConflict
		}
		return result.Error
	}

	u.ID = userModel.ID
	u.CreatedAt = userModel.CreatedAt

	return nil
}
