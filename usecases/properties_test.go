package usecases

import (
	"testing"

	"estate-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockDeveloperRepo struct {
	developers map[string]*entities.Developer // keyed by user id
}

func newMockDeveloperRepo() *mockDeveloperRepo {
	return &mockDeveloperRepo{developers: make(map[string]*entities.Developer)}
}

func (m *mockDeveloperRepo) Create(dev *entities.Developer) error {
	copied := *dev
	m.developers[dev.UserID] = &copied
	return nil
}

func (m *mockDeveloperRepo) GetByID(id string) (*entities.Developer, error) {
	for _, dev := range m.developers {
		if dev.ID == id {
			copied := *dev
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeveloperRepo) GetByUserID(userID string) (*entities.Developer, error) {
	dev, ok := m.developers[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *dev
	return &copied, nil
}

func (m *mockDeveloperRepo) GetAll() ([]entities.Developer, error) {
	result := make([]entities.Developer, 0, len(m.developers))
	for _, dev := range m.developers {
		result = append(result, *dev)
	}
	return result, nil
}

func (m *mockDeveloperRepo) Update(dev *entities.Developer) error {
	copied := *dev
	m.developers[dev.UserID] = &copied
	return nil
}

func newTestProperties(t *testing.T) (*PropertyUseCase, *mockPropertyRepo, *mockDeveloperRepo) {
	t.Helper()
	props := newMockPropertyRepo()
	devs := newMockDeveloperRepo()
	devs.developers["user-1"] = &entities.Developer{ID: "dev-1", UserID: "user-1", Name: "Acme Homes"}
	devs.developers["user-2"] = &entities.Developer{ID: "dev-2", UserID: "user-2", Name: "Rival Builders"}
	return NewPropertyUseCase(props, devs), props, devs
}

func TestCreateAssignsOwningDeveloper(t *testing.T) {
	uc, props, _ := newTestProperties(t)

	p := &entities.Property{ID: "p1", Title: "Skyline Towers", Location: "Pune"}
	require.NoError(t, uc.Create("user-1", p))
	assert.Equal(t, "dev-1", props.properties["p1"].DeveloperID)
}

func TestCreateValidatesFields(t *testing.T) {
	uc, _, _ := newTestProperties(t)

	assert.Error(t, uc.Create("user-1", &entities.Property{Location: "Pune"}))
	assert.Error(t, uc.Create("user-1", &entities.Property{Title: "No Location"}))
}

func TestCreateRequiresDeveloperProfile(t *testing.T) {
	uc, _, _ := newTestProperties(t)

	err := uc.Create("user-3", &entities.Property{Title: "T", Location: "L"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateAppliesProvidedFieldsOnly(t *testing.T) {
	uc, props, _ := newTestProperties(t)
	props.properties["p1"] = &entities.Property{
		ID: "p1", Title: "Old Title", Location: "Pune", PriceMin: 100, DeveloperID: "dev-1",
	}

	updated, err := uc.Update("user-1", entities.RoleDeveloper, &entities.Property{ID: "p1", Title: "New Title"})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "Pune", updated.Location)
	assert.Equal(t, float64(100), updated.PriceMin)
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	uc, props, _ := newTestProperties(t)
	props.properties["p1"] = &entities.Property{ID: "p1", Title: "T", DeveloperID: "dev-1"}

	_, err := uc.Update("user-2", entities.RoleDeveloper, &entities.Property{ID: "p1", Title: "Hijacked"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateAdminBypassesOwnership(t *testing.T) {
	uc, props, _ := newTestProperties(t)
	props.properties["p1"] = &entities.Property{ID: "p1", Title: "T", DeveloperID: "dev-1"}

	_, err := uc.Update("someone-else", entities.RoleAdmin, &entities.Property{ID: "p1", Title: "Moderated"})
	assert.NoError(t, err)
}

func TestUpdateMissingProperty(t *testing.T) {
	uc, _, _ := newTestProperties(t)

	_, err := uc.Update("user-1", entities.RoleDeveloper, &entities.Property{ID: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	uc, props, _ := newTestProperties(t)
	props.properties["p1"] = &entities.Property{ID: "p1", DeveloperID: "dev-1"}

	assert.ErrorIs(t, uc.Delete("user-2", entities.RoleDeveloper, "p1"), ErrForbidden)
	require.NoError(t, uc.Delete("user-1", entities.RoleDeveloper, "p1"))
	assert.NotContains(t, props.properties, "p1")
}

func TestSetOverview(t *testing.T) {
	uc, props, _ := newTestProperties(t)
	props.properties["p1"] = &entities.Property{ID: "p1", DeveloperID: "dev-1"}

	updated, err := uc.SetOverview("user-1", entities.RoleDeveloper, "p1", "A quiet, green neighborhood.")
	require.NoError(t, err)
	assert.Equal(t, "A quiet, green neighborhood.", updated.AIOverview)
}

func TestListByOwner(t *testing.T) {
	uc, props, _ := newTestProperties(t)
	props.properties["p1"] = &entities.Property{ID: "p1", DeveloperID: "dev-1"}
	props.properties["p2"] = &entities.Property{ID: "p2", DeveloperID: "dev-2"}

	own, err := uc.ListByOwner("user-1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "p1", own[0].ID)
}

func TestAuthorize(t *testing.T) {
	uc, props, _ := newTestProperties(t)
	props.properties["p1"] = &entities.Property{ID: "p1", DeveloperID: "dev-1"}

	assert.NoError(t, uc.Authorize("user-1", entities.RoleDeveloper, "p1"))
	assert.ErrorIs(t, uc.Authorize("user-2", entities.RoleDeveloper, "p1"), ErrForbidden)
	assert.ErrorIs(t, uc.Authorize("user-1", entities.RoleDeveloper, "ghost"), ErrNotFound)
}
