package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/colabora-dev/colabora/internal/auth"
	"github.com/colabora-dev/colabora/internal/models"
	"github.com/colabora-dev/colabora/internal/repository"
	"github.com/colabora-dev/colabora/internal/services"
)

// Seeder populates an empty database from the JSON documents in a seeds
// directory. Each table is touched only when it has no rows, so running it
// repeatedly is a no-op.
type Seeder struct {
	users      *repository.UserRepository
	orgs       *repository.OrganizationRepository
	projects   *repository.ProjectRepository
	habilities *repository.HabilityRepository
	register   *services.RegisterUseCase
	logger     *zap.Logger
	dir        string
}

func New(db *gorm.DB, logger *zap.Logger, dir string) *Seeder {
	users := repository.NewUserRepository(db, logger)

	return &Seeder{
		users:      users,
		orgs:       repository.NewOrganizationRepository(db, logger),
		projects:   repository.NewProjectRepository(db, logger),
		habilities: repository.NewHabilityRepository(db, logger),
		register:   services.NewRegisterUseCase(users, auth.NewPasswordManager(), logger),
		logger:     logger,
		dir:        dir,
	}
}

func (s *Seeder) Run() error {
	if err := s.populateUsers(); err != nil {
		return err
	}
	if err := s.populateOrganizations(); err != nil {
		return err
	}
	if err := s.populateHabilities(); err != nil {
		return err
	}
	return s.populateProjects()
}

type seedUser struct {
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Role      models.Role `json:"role"`
}

func (s *Seeder) populateUsers() error {
	count, err := s.users.Count()
	if err != nil || count != 0 {
		return err
	}

	entries := []seedUser{}
	if err := s.readFile("users.json", &entries); err != nil {
		return err
	}

	for _, entry := range entries {
		user, err := s.register.Execute(entry.Email, entry.Password)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", entry.Email, err)
		}

		user.FirstName = entry.FirstName
		user.LastName = entry.LastName
		user.Role = entry.Role
		if _, err := s.users.Save(user); err != nil {
			return err
		}
	}

	count, _ = s.users.Count()
	s.logger.Info("users table populated", zap.Int64("count", count))

	return nil
}

type seedOrganization struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Website      string `json:"website"`
}

func (s *Seeder) populateOrganizations() error {
	count, err := s.orgs.Count()
	if err != nil || count != 0 {
		return err
	}

	entries := []seedOrganization{}
	if err := s.readFile("organizations.json", &entries); err != nil {
		return err
	}

	for _, entry := range entries {
		org := &models.Organization{
			Name:         entry.Name,
			Description:  entry.Description,
			ContactEmail: entry.ContactEmail,
			ContactPhone: entry.ContactPhone,
			Website:      entry.Website,
		}
		if _, err := s.orgs.Save(org); err != nil {
			return err
		}
	}

	count, _ = s.orgs.Count()
	s.logger.Info("organizations table populated", zap.Int64("count", count))

	return nil
}

type seedHability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Seeder) populateHabilities() error {
	count, err := s.habilities.Count()
	if err != nil || count != 0 {
		return err
	}

	byDomain := map[string][]seedHability{}
	if err := s.readFile("habilities.json", &byDomain); err != nil {
		return err
	}

	// Skills are identified by name; the same name listed under two
	// domains is one skill, kept under whichever domain saved it first.
	saved := []*models.Hability{}
	for domain, entries := range byDomain {
		for _, entry := range entries {
			hability := &models.Hability{
				Name:        entry.Name,
				Description: entry.Description,
				Domain:      domain,
			}

			duplicate := false
			for _, seen := range saved {
				if seen.Equal(hability) {
					duplicate = true
					break
				}
			}
			if duplicate {
				continue
			}

			if _, err := s.habilities.Save(hability); err != nil {
				return err
			}
			saved = append(saved, hability)
		}
	}

	count, _ = s.habilities.Count()
	s.logger.Info("habilities table populated", zap.Int64("count", count))

	return nil
}

type seedProject struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Organization       string   `json:"organization"`
	RequiredHabilities []string `json:"required_habilities"`
}

type seedProjectFile struct {
	Projects []seedProject `json:"projects"`
}

func (s *Seeder) populateProjects() error {
	count, err := s.projects.Count()
	if err != nil || count != 0 {
		return err
	}

	file := seedProjectFile{}
	if err := s.readFile("projects.json", &file); err != nil {
		return err
	}

	for _, entry := range file.Projects {
		project := &models.Project{
			Name:        entry.Name,
			Description: entry.Description,
		}

		if entry.Organization != "" {
			org, err := s.orgs.FindByName(entry.Organization)
			if err != nil {
				return err
			}
			if org != nil {
				project.OrganizationID = &org.ID
			}
		}

		project.Habilities, err = s.habilities.FindByNames(entry.RequiredHabilities)
		if err != nil {
			return err
		}

		if _, err := s.projects.Save(project); err != nil {
			return err
		}
	}

	count, _ = s.projects.Count()
	s.logger.Info("projects table populated", zap.Int64("count", count))

	return nil
}

func (s *Seeder) readFile(name string, out interface{}) error {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", name, err)
	}

	return json.Unmarshal(raw, out)
}
