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

func habilityIDs(t *testing.T, users *repository.UserRepository, userID uint) []uint {
	t.Helper()

	habilities, err := users.HabilitiesForUser(userID)
	require.NoError(t, err)

	ids := make([]uint, len(habilities))
	for i, h := range habilities {
		ids[i] = h.ID
	}
	return ids
}

func TestSyncIsIdempotent(t *testing.T) {
	conn := testdb.Open(t)
	logger := zap.NewNop()
	users := repository.NewUserRepository(conn, logger)
	habilities := repository.NewHabilityRepository(conn, logger)

	user, err := users.Save(newUser("ana@example.com"))
	require.NoError(t, err)

	h1, err := habilities.Save(&models.Hability{Name: "Redação"})
	require.NoError(t, err)
	h2, err := habilities.Save(&models.Hability{Name: "Design Gráfico"})
	require.NoError(t, err)

	set := []models.Hability{*h1, *h2}

	require.NoError(t, users.SyncHabilities(user.ID, set))
	require.NoError(t, users.SyncHabilities(user.ID, set))

	assert.ElementsMatch(t, []uint{h1.ID, h2.ID}, habilityIDs(t, users, user.ID))
}

func TestSyncReplacesPreviousSet(t *testing.T) {
	conn := testdb.Open(t)
	logger := zap.NewNop()
	users := repository.NewUserRepository(conn, logger)
	habilities := repository.NewHabilityRepository(conn, logger)

	user, err := users.Save(newUser("ana@example.com"))
	require.NoError(t, err)

	h1, _ := habilities.Save(&models.Hability{Name: "Redação"})
	h2, _ := habilities.Save(&models.Hability{Name: "Design Gráfico"})
	h3, _ := habilities.Save(&models.Hability{Name: "Análise de Dados"})

	require.NoError(t, users.SyncHabilities(user.ID, []models.Hability{*h1, *h2}))
	require.NoError(t, users.SyncHabilities(user.ID, []models.Hability{*h2, *h3}))

	assert.ElementsMatch(t, []uint{h2.ID, h3.ID}, habilityIDs(t, users, user.ID))
}

func TestSyncSkipsUnsavedEntities(t *testing.T) {
	conn := testdb.Open(t)
	logger := zap.NewNop()
	users := repository.NewUserRepository(conn, logger)
	habilities := repository.NewHabilityRepository(conn, logger)

	user, err := users.Save(newUser("ana@example.com"))
	require.NoError(t, err)

	saved, _ := habilities.Save(&models.Hability{Name: "Redação"})
	unsaved := models.Hability{Name: "Ainda não persistida"}

	require.NoError(t, users.SyncHabilities(user.ID, []models.Hability{*saved, unsaved}))

	assert.Equal(t, []uint{saved.ID}, habilityIDs(t, users, user.ID))
}

func TestSyncWithEmptySetClears(t *testing.T) {
	conn := testdb.Open(t)
	logger := zap.NewNop()
	users := repository.NewUserRepository(conn, logger)
	habilities := repository.NewHabilityRepository(conn, logger)

	user, err := users.Save(newUser("ana@example.com"))
	require.NoError(t, err)

	saved, _ := habilities.Save(&models.Hability{Name: "Redação"})
	require.NoError(t, users.SyncHabilities(user.ID, []models.Hability{*saved}))

	require.NoError(t, users.SyncHabilities(user.ID, nil))

	assert.Empty(t, habilityIDs(t, users, user.ID))
}

func TestDeletingOwnerCascadesToJoinRows(t *testing.T) {
	conn := testdb.Open(t)
	logger := zap.NewNop()
	users := repository.NewUserRepository(conn, logger)
	habilities := repository.NewHabilityRepository(conn, logger)

	user, err := users.Save(newUser("ana@example.com"))
	require.NoError(t, err)

	saved, _ := habilities.Save(&models.Hability{Name: "Redação"})
	require.True(t, users.AddHability(user.ID, saved.ID))

	require.True(t, users.Delete(user.ID))

	var remaining int64
	require.NoError(t, conn.Model(&models.UserHability{}).Where("user_id = ?", user.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}
