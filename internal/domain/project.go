package domain

import "github.com/google/uuid"

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// Project is a fundraiser belonging to an organization.
type Project struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Title          string
	Description    string
	ImagePath      string
	TargetMinor    int64
	CollectedMinor int64
	Status         ProjectStatus
	Order          int
}

// ProjectStage is a milestone inside a project with its own funding target.
type ProjectStage struct {
	ID             uuid.UUID
	ProjectID      uuid.UUID
	Title          string
	Description    string
	ImagePath      string
	TargetMinor    int64
	CollectedMinor int64
	Status         ProjectStatus
	Order          int
}
