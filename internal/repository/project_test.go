package repository_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/colabora-dev/colabora/internal/models"
	"github.com/colabora-dev/colabora/internal/repository"
	"github.com/colabora-dev/colabora/internal/testdb"
)

type projectFixture struct {
	conn       *gorm.DB
	projects   *repository.ProjectRepository
	orgs       *repository.OrganizationRepository
	habilities *repository.HabilityRepository
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()

	conn := testdb.Open(t)
	logger := zap.NewNop()

	return &projectFixture{
		conn:       conn,
		projects:   repository.NewProjectRepository(conn, logger),
		orgs:       repository.NewOrganizationRepository(conn, logger),
		habilities: repository.NewHabilityRepository(conn, logger),
	}
}

// seedProjects creates n projects named p-01..p-n, every odd one owned by
// an organization, each requiring two habilities.
func (f *projectFixture) seedProjects(t *testing.T, n int) []models.Project {
	t.Helper()

	h1, err := f.habilities.Save(&models.Hability{Name: "Redação", Domain: "Comunicação"})
	require.NoError(t, err)
	h2, err := f.habilities.Save(&models.Hability{Name: "Desenvolvimento Web", Domain: "Tecnologia"})
	require.NoError(t, err)

	created := make([]models.Project, 0, n)
	for i := 1; i <= n; i++ {
		project := &models.Project{
			Name:        fmt.Sprintf("p-%02d", i),
			Description: "projeto de teste",
			Habilities:  []models.Hability{*h1, *h2},
		}

		if i%2 == 1 {
			org, err := f.orgs.Save(&models.Organization{
				Name:         fmt.Sprintf("org-%02d", i),
				ContactEmail: fmt.Sprintf("org-%02d@example.com", i),
			})
			require.NoError(t, err)
			project.OrganizationID = &org.ID
		}

		saved, err := f.projects.Save(project)
		require.NoError(t, err)
		created = append(created, *saved)
	}

	return created
}

func TestFindByIDsWithRelations(t *testing.T) {
	f := newProjectFixture(t)
	created := f.seedProjects(t, 3)

	ids := []uint{created[0].ID, created[1].ID, created[2].ID}

	loaded, err := f.projects.FindByIDsWithRelations(ids)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	// Deterministic ordering by name.
	assert.Equal(t, "p-01", loaded[0].Name)
	assert.Equal(t, "p-02", loaded[1].Name)
	assert.Equal(t, "p-03", loaded[2].Name)

	// Odd projects carry their organization, even ones stay org-less.
	require.NotNil(t, loaded[0].Organization)
	assert.Equal(t, "org-01", loaded[0].Organization.Name)
	assert.Nil(t, loaded[1].Organization)

	for _, p := range loaded {
		assert.Len(t, p.Habilities, 2, "project %s", p.Name)
	}
}

func TestFindByIDsWithRelationsEmptyInput(t *testing.T) {
	f := newProjectFixture(t)

	loaded, err := f.projects.FindByIDsWithRelations(nil)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestGetByIDWithHabilities(t *testing.T) {
	f := newProjectFixture(t)
	created := f.seedProjects(t, 1)

	project, err := f.projects.GetByIDWithHabilities(created[0].ID)
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Len(t, project.Habilities, 2)

	missing, err := f.projects.GetByIDWithHabilities(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBatchLoadingQueryCountIsConstant(t *testing.T) {
	f := newProjectFixture(t)
	created := f.seedProjects(t, 9)

	countQueries := func(ids []uint) int {
		counter := &testdb.QueryCounter{}
		counted := repository.NewProjectRepository(
			f.conn.Session(&gorm.Session{Logger: counter}), zap.NewNop())

		_, err := counted.FindByIDsWithRelations(ids)
		require.NoError(t, err)

		return counter.Count()
	}

	one := countQueries([]uint{created[0].ID})

	all := make([]uint, len(created))
	for i, p := range created {
		all[i] = p.ID
	}
	many := countQueries(all)

	assert.Equal(t, one, many, "query count must not scale with the number of projects")
	assert.LessOrEqual(t, many, 3)
}

func TestPaginationOnEmptyTable(t *testing.T) {
	f := newProjectFixture(t)

	page, err := f.projects.FindAllWithRelationsPaginated(7, 2)
	require.NoError(t, err)

	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.EqualValues(t, 0, page.Total)
}

func TestPaginationClampsOutOfRangePage(t *testing.T) {
	f := newProjectFixture(t)
	f.seedProjects(t, 5)

	page, err := f.projects.FindAllWithRelationsPaginated(10, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.Page, "page 10 of 3 clamps to the last page")
	require.Len(t, page.Data, 1)
	assert.Equal(t, "p-05", page.Data[0].Name)
	assert.EqualValues(t, 5, page.Total)
}

func TestPaginationReturnsRelationsForThePage(t *testing.T) {
	f := newProjectFixture(t)
	f.seedProjects(t, 5)

	page, err := f.projects.FindAllWithRelationsPaginated(1, 2)
	require.NoError(t, err)

	require.Len(t, page.Data, 2)
	assert.Equal(t, "p-01", page.Data[0].Name)
	assert.Equal(t, "p-02", page.Data[1].Name)
	assert.Len(t, page.Data[0].Habilities, 2)
	require.NotNil(t, page.Data[0].Organization)
}

func TestFindAllWithRelations(t *testing.T) {
	f := newProjectFixture(t)
	f.seedProjects(t, 4)

	loaded, err := f.projects.FindAllWithRelations()
	require.NoError(t, err)
	assert.Len(t, loaded, 4)

	empty := newProjectFixture(t)
	none, err := empty.projects.FindAllWithRelations()
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestHabilitiesForProject(t *testing.T) {
	f := newProjectFixture(t)
	created := f.seedProjects(t, 1)

	habilities, err := f.projects.HabilitiesForProject(created[0].ID)
	require.NoError(t, err)
	assert.Len(t, habilities, 2)
}
