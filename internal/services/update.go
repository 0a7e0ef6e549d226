package services

import "github.com/colabora-dev/colabora/internal/models"

// Partial updates: a nil field means "leave unchanged".

type UserUpdate struct {
	FirstName *string
	LastName  *string
	BirthDate *string
	Phone     *string
	Role      *models.Role
}

func (u UserUpdate) ApplyTo(user *models.User) {
	if u.FirstName != nil {
		user.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		user.LastName = *u.LastName
	}
	if u.BirthDate != nil {
		user.BirthDate = *u.BirthDate
	}
	if u.Phone != nil {
		user.Phone = *u.Phone
	}
	if u.Role != nil {
		user.Role = *u.Role
	}
}

type ProjectUpdate struct {
	Name        *string
	Description *string
	// Habilities, when set, replaces the project's required skills.
	Habilities *[]models.Hability
}

func (u ProjectUpdate) ApplyTo(project *models.Project) {
	if u.Name != nil {
		project.Name = *u.Name
	}
	if u.Description != nil {
		project.Description = *u.Description
	}
	if u.Habilities != nil {
		project.Habilities = *u.Habilities
	}
}
