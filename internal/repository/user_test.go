package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/colabora-dev/colabora/internal/models"
	"github.com/colabora-dev/colabora/internal/repository"
	"github.com/colabora-dev/colabora/internal/testdb"
)

func TestGetByEmail(t *testing.T) {
	conn := testdb.Open(t)
	users := repository.NewUserRepository(conn, zap.NewNop())

	saved, err := users.Save(newUser("ana@example.com"))
	require.NoError(t, err)

	got, err := users.GetByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.ID, got.ID)

	missing, err := users.GetByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestExistsByIDAndByEmail(t *testing.T) {
	conn := testdb.Open(t)
	users := repository.NewUserRepository(conn, zap.NewNop())

	saved, err := users.Save(newUser("ana@example.com"))
	require.NoError(t, err)

	byID, err := users.ExistsByID(saved.ID)
	require.NoError(t, err)
	assert.True(t, byID)

	byEmail, err := users.ExistsByEmail("ana@example.com")
	require.NoError(t, err)
	assert.True(t, byEmail)

	ghost, err := users.ExistsByID(999)
	require.NoError(t, err)
	assert.False(t, ghost)

	unknown, err := users.ExistsByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.False(t, unknown)
}

func TestDuplicateEmailIsRejectedByTheSchema(t *testing.T) {
	conn := testdb.Open(t)
	users := repository.NewUserRepository(conn, zap.NewNop())

	_, err := users.Save(newUser("ana@example.com"))
	require.NoError(t, err)

	_, err = users.Save(newUser("ana@example.com"))
	assert.Error(t, err)
}

func TestSavePersistsRelationsCarriedOnTheEntity(t *testing.T) {
	conn := testdb.Open(t)
	logger := zap.NewNop()
	users := repository.NewUserRepository(conn, logger)
	habilities := repository.NewHabilityRepository(conn, logger)
	projects := repository.NewProjectRepository(conn, logger)

	h, err := habilities.Save(&models.Hability{Name: "Redação"})
	require.NoError(t, err)
	p, err := projects.Save(&models.Project{Name: "Biblioteca Livre"})
	require.NoError(t, err)

	user := newUser("ana@example.com")
	user.Habilities = []models.Hability{*h}
	user.Projects = []models.Project{*p}

	saved, err := users.Save(user)
	require.NoError(t, err)

	got, err := users.GetByIDWithAllRelations(saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Habilities, 1)
	assert.Equal(t, "Redação", got.Habilities[0].Name)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, "Biblioteca Livre", got.Projects[0].Name)
}

func TestGetByIDWithHabilitiesMissingUser(t *testing.T) {
	conn := testdb.Open(t)
	users := repository.NewUserRepository(conn, zap.NewNop())

	got, err := users.GetByIDWithHabilities(999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAddHability(t *testing.T) {
	conn := testdb.Open(t)
	logger := zap.NewNop()
	users := repository.NewUserRepository(conn, logger)
	habilities := repository.NewHabilityRepository(conn, logger)

	user, err := users.Save(newUser("ana@example.com"))
	require.NoError(t, err)
	h, err := habilities.Save(&models.Hability{Name: "Redação"})
	require.NoError(t, err)

	assert.True(t, users.AddHability(user.ID, h.ID))
	// Duplicate pair violates the composite primary key: best-effort false.
	assert.False(t, users.AddHability(user.ID, h.ID))

	got, err := users.HabilitiesForUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
