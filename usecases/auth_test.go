package usecases

import (
	"fmt"
	"testing"
	"time"

	"estate-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	users  map[string]*entities.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*entities.User)}
}

func (m *mockUserRepo) Create(user *entities.User) error {
	m.nextID++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", m.nextID)
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) GetByID(id string) (*entities.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByPhone(phone string) (*entities.User, error) {
	for _, user := range m.users {
		if user.Phone == phone {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(user *entities.User) error {
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

type mockTokenRepo struct {
	tokens map[string]*entities.UserToken
	nextID int
}

func newMockTokenRepo() *mockTokenRepo {
	return &mockTokenRepo{tokens: make(map[string]*entities.UserToken)}
}

func (m *mockTokenRepo) Create(token *entities.UserToken) error {
	m.nextID++
	if token.ID == "" {
		token.ID = fmt.Sprintf("token-%d", m.nextID)
	}
	copied := *token
	m.tokens[token.ID] = &copied
	return nil
}

func (m *mockTokenRepo) GetByToken(token string) (*entities.UserToken, error) {
	for _, row := range m.tokens {
		if row.Token == token {
			copied := *row
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTokenRepo) Delete(id string) error {
	delete(m.tokens, id)
	return nil
}

func (m *mockTokenRepo) DeleteByUserID(userID string) error {
	for id, row := range m.tokens {
		if row.UserID == userID {
			delete(m.tokens, id)
		}
	}
	return nil
}

func newTestAuth(t *testing.T) (*AuthUseCase, *mockUserRepo, *mockTokenRepo) {
	t.Helper()
	users := newMockUserRepo()
	tokens := newMockTokenRepo()
	uc := NewAuthUseCase(users, tokens, nil, nil, "test-secret")
	return uc, users, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	user, err := uc.Register("Asha", "Asha@Example.com", "", "hunter2-long", "")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, entities.RoleUser, user.Role)
	assert.NotEqual(t, "hunter2-long", user.PasswordHash)

	access, refresh, logged, err := uc.Login("asha@example.com", "hunter2-long")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, user.ID, logged.ID)

	userID, role, err := ParseToken([]byte("test-secret"), access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entities.RoleUser, role)
}

func TestRegisterValidation(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	_, err := uc.Register("", "", "", "hunter2-long", "")
	assert.Error(t, err)

	_, err = uc.Register("", "a@b.com", "", "short", "")
	assert.Error(t, err)

	_, err = uc.Register("", "a@b.com", "", "hunter2-long", "admin")
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	_, err := uc.Register("", "a@b.com", "", "hunter2-long", "")
	require.NoError(t, err)

	_, err = uc.Register("", "A@B.com", "", "another-pass", "")
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	_, err := uc.Register("", "a@b.com", "", "hunter2-long", "")
	require.NoError(t, err)

	_, _, _, err = uc.Login("a@b.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidLogin)

	_, _, _, err = uc.Login("nobody@b.com", "hunter2-long")
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestRefreshRotatesToken(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	_, err := uc.Register("", "a@b.com", "", "hunter2-long", entities.RoleDeveloper)
	require.NoError(t, err)
	_, refresh, _, err := uc.Login("a@b.com", "hunter2-long")
	require.NoError(t, err)

	_, rotated, _, err := uc.Refresh(refresh)
	require.NoError(t, err)
	assert.NotEqual(t, refresh, rotated)

	// the spent token is gone
	_, _, _, err = uc.Refresh(refresh)
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	uc, users, tokens := newTestAuth(t)

	user := &entities.User{Email: "a@b.com", Role: entities.RoleUser}
	require.NoError(t, users.Create(user))
	require.NoError(t, tokens.Create(&entities.UserToken{
		UserID:    user.ID,
		Token:     "stale",
		ExpiresAt: time.Now().UTC().Add(-time.Hour).Format(time.RFC3339),
	}))

	_, _, _, err := uc.Refresh("stale")
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestSessionResolvesUser(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	user, err := uc.Register("", "a@b.com", "", "hunter2-long", "")
	require.NoError(t, err)
	access, _, _, err := uc.Login("a@b.com", "hunter2-long")
	require.NoError(t, err)

	resolved, err := uc.Session(access)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	_, err = uc.Session("not-a-token")
	assert.Error(t, err)
}

func TestLogoutRevokesRefreshTokens(t *testing.T) {
	uc, _, tokens := newTestAuth(t)

	user, err := uc.Register("", "a@b.com", "", "hunter2-long", "")
	require.NoError(t, err)
	_, refresh, _, err := uc.Login("a@b.com", "hunter2-long")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(user.ID))
	assert.Empty(t, tokens.tokens)

	_, _, _, err = uc.Refresh(refresh)
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	_, err := uc.Register("", "a@b.com", "", "hunter2-long", "")
	require.NoError(t, err)
	access, _, _, err := uc.Login("a@b.com", "hunter2-long")
	require.NoError(t, err)

	_, _, err = ParseToken([]byte("other-secret"), access)
	assert.Error(t, err)
}
