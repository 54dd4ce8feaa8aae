package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	interf "github.com/webdev-zad/laundry-system-be/internal/interfaces"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Выпуск и проверка токенов доступа
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	return &TokenIssuer{[]byte(secret), ttl}, nil
}

func (t *TokenIssuer) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenIssuer) Parse(token string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(tk *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}
	return claims, nil
}

type UserService struct {
	logger *zap.Logger
	db     interf.UserStorage
	tokens *TokenIssuer
}

func NewUserService(logger *zap.Logger, db interf.UserStorage, tokens *TokenIssuer) *UserService {
	return &UserService{logger, db, tokens}
}

func (s *UserService) token(user models.User) (models.UserToken, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return models.UserToken{}, err
	}
	return models.UserToken{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

func (s *UserService) Login(ctx context.Context, email string, password string) (models.UserToken, error) {
	user, err := s.db.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.UserToken{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.UserToken{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return models.UserToken{}, models.ErrInvalidCredentials
	}
	return s.token(user)
}

// Регистрация сотрудника администратором
func (s *UserService) Register(ctx context.Context, name, email, password, role string) (models.UserToken, error) {
	verr := &models.ValidationError{}
	if strings.TrimSpace(name) == "" {
		verr.Add("Name is required")
	}
	if !models.ValidEmail(email) {
		verr.Add("Email is invalid")
	}
	if password == "" {
		verr.Add("Password is required")
	}
	if role == "" {
		role = models.RoleStaff
	}
	if role != models.RoleStaff && role != models.RoleAdmin {
		verr.Add("Role must be admin or staff")
	}
	if err := verr.OrNil(); err != nil {
		return models.UserToken{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserToken{}, err
	}
	user, err := s.db.CreateUser(ctx, models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hash),
		Role:     role,
	})
	if err != nil {
		return models.UserToken{}, err
	}
	return s.token(user)
}

func (s *UserService) Profile(ctx context.Context, id string) (models.User, error) {
	return s.db.GetUser(ctx, id)
}

// Изменение профиля с новым токеном
func (s *UserService) UpdateProfile(ctx context.Context, id string, in models.ProfileUpdate) (models.UserToken, error) {
	user, err := s.db.GetUser(ctx, id)
	if err != nil {
		return models.UserToken{}, err
	}
	if in.Name != "" {
		user.Name = strings.TrimSpace(in.Name)
	}
	if in.Email != "" {
		if !models.ValidEmail(in.Email) {
			return models.UserToken{}, &models.ValidationError{Errors: []string{"Email is invalid"}}
		}
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.UserToken{}, err
		}
		user.Password = string(hash)
	}
	user, err = s.db.UpdateUser(ctx, user)
	if err != nil {
		return models.UserToken{}, err
	}
	return s.token(user)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.db.ListUsers(ctx)
}

// Администратора удалить нельзя
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.db.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin {
		return models.ErrAdminDelete
	}
	return s.db.DeleteUser(ctx, id)
}
