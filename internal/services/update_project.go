package services

import (
	"go.uber.org/zap"

	"github.com/colabora-dev/colabora/internal/models"
)

type UpdateProjects interface {
	GetByIDWithHabilities(id uint) (*models.Project, error)
	Save(project *models.Project) (*models.Project, error)
}

type UpdateProjectUseCase struct {
	projects UpdateProjects
	logger   *zap.Logger
}

func NewUpdateProjectUseCase(projects UpdateProjects, logger *zap.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projects: projects, logger: logger}
}

// Execute merges the given fields onto the project, loaded together with
// its current habilities so an update without a Habilities field keeps
// them as they are.
func (uc *UpdateProjectUseCase) Execute(id uint, update ProjectUpdate) (*models.Project, error) {
	project, err := uc.projects.GetByIDWithHabilities(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	update.ApplyTo(project)

	return uc.projects.Save(project)
}
