package usecases

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"estate-server/cache"
	"estate-server/entities"
	"estate-server/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	otpTTL          = 5 * time.Minute
)

// SMSSender delivers a text message to a phone number.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// AuthUseCase wraps registration, password login, phone OTP login and
// session lookup. Access tokens are signed JWTs; refresh tokens are
// random strings persisted in user_tokens and rotated on use.
type AuthUseCase struct {
	users  repositories.UserRepository
	tokens repositories.TokenRepository
	rdb    *cache.RedisCache
	sms    SMSSender
	secret []byte
}

func NewAuthUseCase(users repositories.UserRepository, tokens repositories.TokenRepository, rdb *cache.RedisCache, sms SMSSender, secret string) *AuthUseCase {
	return &AuthUseCase{
		users:  users,
		tokens: tokens,
		rdb:    rdb,
		sms:    sms,
		secret: []byte(secret),
	}
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Register creates an account. Role may be "user" or "developer";
// anything else is rejected.
func (uc *AuthUseCase) Register(name, email, phone, password, role string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email is required")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if role == "" {
		role = entities.RoleUser
	}
	if role != entities.RoleUser && role != entities.RoleDeveloper {
		return nil, errors.New("role must be user or developer")
	}

	if _, err := uc.users.GetByEmail(email); err == nil {
		return nil, errors.New("email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		Phone:        strings.TrimSpace(phone),
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password and issues an access + refresh token pair.
func (uc *AuthUseCase) Login(email, password string) (string, string, *entities.User, error) {
	user, err := uc.users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", nil, ErrInvalidLogin
	}
	if err != nil {
		return "", "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", "", nil, ErrInvalidLogin
	}

	return uc.issueTokens(user)
}

// SendOTP generates a 6-digit code, stores it with a TTL and delivers it
// over the SMS gateway.
func (uc *AuthUseCase) SendOTP(ctx context.Context, phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errors.New("phone is required")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := uc.rdb.SetOTP(ctx, phone, code, otpTTL); err != nil {
		return err
	}
	return uc.sms.Send(ctx, phone, "Your verification code is "+code)
}

// VerifyOTP checks the pending code; on success it finds or creates the
// account for the phone number and issues tokens. The code is single-use.
func (uc *AuthUseCase) VerifyOTP(ctx context.Context, phone, code string) (string, string, *entities.User, error) {
	phone = strings.TrimSpace(phone)
	stored, err := uc.rdb.GetOTP(ctx, phone)
	if err != nil {
		return "", "", nil, err
	}
	if stored == "" || stored != code {
		return "", "", nil, ErrInvalidOTP
	}
	_ = uc.rdb.DeleteOTP(ctx, phone)

	user, err := uc.users.GetByPhone(phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &entities.User{
			Phone: phone,
			Role:  entities.RoleUser,
			// Phone-only accounts get an unusable password hash.
			PasswordHash: uuid.New().String(),
			Email:        phone + "@phone.invalid",
		}
		if err := uc.users.Create(user); err != nil {
			return "", "", nil, err
		}
	} else if err != nil {
		return "", "", nil, err
	}

	return uc.issueTokens(user)
}

// Refresh rotates a refresh token and issues a fresh pair.
func (uc *AuthUseCase) Refresh(refreshToken string) (string, string, *entities.User, error) {
	row, err := uc.tokens.GetByToken(refreshToken)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", nil, ErrInvalidLogin
	}
	if err != nil {
		return "", "", nil, err
	}
	if row.Expired() {
		_ = uc.tokens.Delete(row.ID)
		return "", "", nil, ErrInvalidLogin
	}

	user, err := uc.users.GetByID(row.UserID)
	if err != nil {
		return "", "", nil, err
	}

	if err := uc.tokens.Delete(row.ID); err != nil {
		return "", "", nil, err
	}
	return uc.issueTokens(user)
}

// Session resolves an access token to its user.
func (uc *AuthUseCase) Session(token string) (*entities.User, error) {
	userID, _, err := ParseToken(uc.secret, token)
	if err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// Logout revokes every refresh token for a user.
func (uc *AuthUseCase) Logout(userID string) error {
	return uc.tokens.DeleteByUserID(userID)
}

func (uc *AuthUseCase) issueTokens(user *entities.User) (string, string, *entities.User, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			Issuer:    "estate-server",
		},
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.secret)
	if err != nil {
		return "", "", nil, err
	}

	refresh := uuid.New().String() + uuid.New().String()
	row := &entities.UserToken{
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: now.UTC().Add(refreshTokenTTL).Format(time.RFC3339),
	}
	if err := uc.tokens.Create(row); err != nil {
		return "", "", nil, err
	}

	return access, refresh, user, nil
}

// ParseToken validates a signed access token and returns the user id and
// role carried in its claims.
func ParseToken(secret []byte, token string) (string, string, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return "", "", errors.New("invalid token")
	}
	return claims.Subject, claims.Role, nil
}
