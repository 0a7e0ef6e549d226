package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/colabora-dev/colabora/internal/models"
)

type ProjectRepository struct {
	*Repository[models.Project, *models.Project]
	db     *gorm.DB
	logger *zap.Logger
}

func NewProjectRepository(db *gorm.DB, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{
		Repository: NewRepository[models.Project, *models.Project](db, logger),
		db:         db,
		logger:     logger,
	}
}

// Save persists the project's base row and reconciles its required
// habilities.
func (r *ProjectRepository) Save(project *models.Project) (*models.Project, error) {
	habilities := project.Habilities

	saved, err := r.Repository.Save(project)
	if err != nil {
		return nil, err
	}

	if err := r.SyncHabilities(saved.ID, habilities); err != nil {
		return nil, err
	}

	return saved, nil
}

// SyncHabilities replaces the Project_Habilities rows for the project.
func (r *ProjectRepository) SyncHabilities(projectID uint, habilities []models.Hability) error {
	rows := make([]models.ProjectHability, 0, len(habilities))
	for _, h := range habilities {
		if h.IsNew() {
			continue
		}
		rows = append(rows, models.ProjectHability{ProjectID: projectID, HabilityID: h.ID})
	}

	if err := syncJoinRows(r.db, "project_id", projectID, rows); err != nil {
		r.logger.Error("failed to sync project habilities", zap.Uint("project_id", projectID), zap.Error(err))
		return err
	}

	return nil
}

type projectHabilityRow struct {
	OwnerID         uint `gorm:"column:owner_id"`
	models.Hability `gorm:"embedded"`
}

// FindByIDsWithRelations loads the given projects together with their
// organization and habilities in a constant number of queries: one for the
// project rows (ordered by name), one for every referenced organization,
// and one joined query for all the hability rows.
func (r *ProjectRepository) FindByIDsWithRelations(projectIDs []uint) ([]models.Project, error) {
	if len(projectIDs) == 0 {
		return []models.Project{}, nil
	}

	projects := []models.Project{}
	if err := r.db.Where("id IN ?", projectIDs).Order("name").Find(&projects).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]*models.Project, len(projects))
	orgIDSet := map[uint]struct{}{}
	for i := range projects {
		byID[projects[i].ID] = &projects[i]
		if projects[i].OrganizationID != nil {
			orgIDSet[*projects[i].OrganizationID] = struct{}{}
		}
	}

	if len(orgIDSet) > 0 {
		orgIDs := make([]uint, 0, len(orgIDSet))
		for id := range orgIDSet {
			orgIDs = append(orgIDs, id)
		}

		orgs := []models.Organization{}
		if err := r.db.Where("id IN ?", orgIDs).Find(&orgs).Error; err != nil {
			return nil, err
		}

		orgsByID := make(map[uint]*models.Organization, len(orgs))
		for i := range orgs {
			orgsByID[orgs[i].ID] = &orgs[i]
		}
		for i := range projects {
			if projects[i].OrganizationID != nil {
				projects[i].Organization = orgsByID[*projects[i].OrganizationID]
			}
		}
	}

	rows := []projectHabilityRow{}
	err := r.db.Raw(`
		SELECT ph.project_id AS owner_id, h.* FROM "Hability" h
		JOIN "Project_Habilities" ph ON h.id = ph.hability_id
		WHERE ph.project_id IN ?`, projectIDs).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if project, ok := byID[row.OwnerID]; ok {
			project.Habilities = append(project.Habilities, row.Hability)
		}
	}

	return projects, nil
}

func (r *ProjectRepository) GetByIDWithHabilities(projectID uint) (*models.Project, error) {
	projects, err := r.FindByIDsWithRelations([]uint{projectID})
	if err != nil || len(projects) == 0 {
		return nil, err
	}

	return &projects[0], nil
}

func (r *ProjectRepository) FindAllWithRelations() ([]models.Project, error) {
	projects, err := r.FindAll()
	if err != nil || len(projects) == 0 {
		return []models.Project{}, err
	}

	ids := make([]uint, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
	}

	return r.FindByIDsWithRelations(ids)
}

// HabilitiesForProject loads the required habilities of one project.
func (r *ProjectRepository) HabilitiesForProject(projectID uint) ([]models.Hability, error) {
	habilities := []models.Hability{}

	err := r.db.Raw(`
		SELECT h.* FROM "Hability" h
		JOIN "Project_Habilities" ph ON h.id = ph.hability_id
		WHERE ph.project_id = ?`, projectID).Scan(&habilities).Error

	if err != nil {
		return nil, err
	}

	return habilities, nil
}

// FindAllWithRelationsPaginated pages through all projects ordered by name
// and batch-loads relations for exactly the page's rows. Out-of-range pages
// clamp instead of failing: an empty table answers page 1 of 1, and a page
// past the end answers the last page.
func (r *ProjectRepository) FindAllWithRelationsPaginated(page, perPage int) (*Page[models.Project], error) {
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	total, err := r.Count()
	if err != nil {
		return nil, err
	}

	if total == 0 {
		return &Page[models.Project]{
			Data:       []models.Project{},
			Page:       1,
			PerPage:    perPage,
			Total:      0,
			TotalPages: 1,
		}, nil
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	ids := []uint{}
	err = r.db.Model(&models.Project{}).
		Order("name").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	data, err := r.FindByIDsWithRelations(ids)
	if err != nil {
		return nil, err
	}

	return &Page[models.Project]{
		Data:       data,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
