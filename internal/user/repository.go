package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/heritage-horizon/portal/internal/apperrors"
	"github.com/heritage-horizon/portal/pkg/db"
)

type UserRepository interface {
	CreateUser(username string, email *string, password string) (*User, error)
	ValidateUser(username, password string) (*User, error)
	GetUser(id uint) (*User, error)
	FetchAttemptTotals(userID uint) (AttemptTotals, error)
}

type DBUserRepository struct{}

func NewDBUserRepository() *DBUserRepository {
	return &DBUserRepository{}
}

func (r *DBUserRepository) CreateUser(username string, email *string, password string) (*User, error) {
	var exists User
	result := db.DB.Where("username = ?", username).First(&exists)
	if result.Error == nil {
		return nil, apperrors.DuplicateIdentity("user already exists")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}
	newUser := User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     "user",
		Level:    1,
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (r *DBUserRepository) ValidateUser(username, password string) (*User, error) {
	var u User
	result := db.DB.Where("username = ?", username).First(&u)
	if result.Error != nil {
		return nil, result.Error
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *DBUserRepository) GetUser(id uint) (*User, error) {
	var u User
	result := db.DB.Where("id = ?", id).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &u, nil
}

func (r *DBUserRepository) FetchAttemptTotals(userID uint) (AttemptTotals, error) {
	var totals AttemptTotals
	err := db.DB.Table("attempts").
		Where("user_id = ? AND status = ?", userID, "completed").
		Select("COUNT(*) AS games_played, COALESCE(SUM(score), 0) AS total_score").
		Scan(&totals).Error
	return totals, err
}
