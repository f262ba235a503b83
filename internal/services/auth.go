package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/store"
)

const minPasswordLen = 6

type AuthService struct {
	accounts  store.AccountRepository
	users     store.UserRepository
	jwtSecret []byte
	validate  *validator.Validate
}

func NewAuthService(accounts store.AccountRepository, users store.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		accounts:  accounts,
		users:     users,
		jwtSecret: []byte(jwtSecret),
		validate:  validator.New(),
	}
}

// Register creates the identity account and its linked profile document with
// the default fields (student, unapproved, zero score). A failed profile
// write is logged but not fatal: the caller ends up authenticated without a
// profile, which downstream screen resolution treats as pending approval.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return "", ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return "", ErrWeakPassword
	}

	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return "", ErrEmailInUse
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	acc := models.Account{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.accounts.Create(ctx, &acc); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return "", ErrEmailInUse
		}
		return "", err
	}

	user := models.User{
		ID:       acc.ID,
		Email:    acc.Email,
		Role:     models.RoleStudent,
		Approved: false,
		Score:    0,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		log.Printf("auth: profile write failed for account %s: %v", acc.ID, err)
	}

	return acc.ID, nil
}

// SignIn resolves any authentication failure to ErrInvalidCredentials; the
// underlying cause is only logged.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	acc, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("auth: sign-in failed for %s: %v", email, err)
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		log.Printf("auth: sign-in failed for %s: %v", email, err)
		return "", ErrInvalidCredentials
	}
	return acc.ID, nil
}

// GetProfile loads the user document linked to an account. Returns
// store.ErrNotFound when the profile document is missing.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.users.Get(ctx, userID)
}

func (s *AuthService) GenerateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("invalid user_id in token")
	}

	return userID, nil
}
