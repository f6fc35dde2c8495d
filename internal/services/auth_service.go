package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// AuthService issues HS256 tokens carrying user_id for registered users.
type AuthService struct {
	Users     UserStore
	Secret    []byte
	TTL       time.Duration
	Now       func() time.Time
	RequestID string
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      AuthUser  `json:"user"`
}

type AuthUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s AuthService) Register(in RegisterInput) (AuthResult, error) {
	name := utils.NormalizeSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" {
		return AuthResult{}, domain.ValidationError{Field: "name", Msg: "is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return AuthResult{}, domain.ValidationError{Field: "email", Msg: "must be a valid address", Err: err}
	}
	if len(in.Password) < minPasswordLength {
		return AuthResult{}, domain.ValidationError{Field: "password", Msg: fmt.Sprintf("must be at least %d characters", minPasswordLength)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	u := models.User{Name: name, Email: email, PasswordHash: string(hash), CreatedAt: nowOr(s.Now)}
	id, err := s.Users.Create(u)
	if err != nil {
		return AuthResult{}, err
	}
	u.ID = id
	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d", id))
	return s.issue(u)
}

func (s AuthService) Login(in LoginInput) (AuthResult, error) {
	invalid := domain.UnauthorizedError{Msg: "invalid email or password"}

	u, err := s.Users.GetByEmail(in.Email)
	if domain.IsNotFound(err) {
		return AuthResult{}, invalid
	}
	if err != nil {
		return AuthResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return AuthResult{}, invalid
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", u.ID))
	return s.issue(u)
}

// ParseToken validates a token and returns its user id.
func (s AuthService) ParseToken(raw string) (int64, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(func() time.Time { return nowOr(s.Now) }))
	if err != nil {
		return 0, domain.UnauthorizedError{Msg: "invalid token", Err: err}
	}

	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, domain.UnauthorizedError{Msg: "invalid token", Err: errors.New("missing user_id claim")}
	}
	return int64(id), nil
}

func (s AuthService) issue(u models.User) (AuthResult, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	exp := nowOr(s.Now).Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return AuthResult{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return AuthResult{
		Token:     signed,
		ExpiresAt: exp.UTC(),
		User:      AuthUser{ID: u.ID, Name: u.Name, Email: u.Email},
	}, nil
}
