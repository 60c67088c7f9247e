package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	FirstName string
	LastName  string

	Role      string `gorm:"not null;default:JOUEUR"` // "ADMIN", "JOUEUR" or "MANAGER"
	Langue    string `gorm:"not null;default:FR"`
	Phone     string
	Country   string
	Onboarded bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_users_email"`) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindAll(ctx context.Context) ([]User, error) {
	var users []User

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"role":       user.Role,
			"langue":     user.Langue,
			"phone":      user.Phone,
			"country":    user.Country,
		})
	if result.Error != nil {
		return User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return User{}, ErrUserNotFound
	}

	return d.FindByID(ctx, user.ID)
}

// CompleteOnboarding fills in the role/locale/contact fields collected at
// first login. A second call is a no-op thanks to the onboarded guard.
func (d *UserDAO) CompleteOnboarding(ctx context.Context, id uint, role, langue, phone, country string) (User, error) {
	result := d.db.WithContext(ctx).Model(&User{}).
		Where("id = ? AND onboarded = ?", id, false).
		Updates(map[string]interface{}{
			"role":      role,
			"langue":    langue,
			"phone":     phone,
			"country":   country,
			"onboarded": true,
		})
	if result.Error != nil {
		return User{}, result.Error
	}

	return d.FindByID(ctx, id)
}

// Delete removes the user together with their palmares rows and board
// index in a single transaction (account deletion cascade).
func (d *UserDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&Palmares{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&BoardIndex{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return nil
	})
}
