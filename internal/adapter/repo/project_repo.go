package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"charityd/internal/domain"
	"charityd/internal/sqlinline"
)

// ProjectRepositoryPG implements domain.ProjectRepository.
type ProjectRepositoryPG struct {
	db DB
}

// NewProjectRepository creates a new project repo.
func NewProjectRepository(db DB) *ProjectRepositoryPG {
	return &ProjectRepositoryPG{db: db}
}

// GetByID loads one project.
func (r *ProjectRepositoryPG) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	row := r.db.QueryRow(ctx, sqlinline.QGetProject, id)
	var p domain.Project
	err := row.Scan(
		&p.ID,
		&p.OrganizationID,
		&p.Title,
		&p.Description,
		&p.ImagePath,
		&p.TargetMinor,
		&p.CollectedMinor,
		&p.Status,
		&p.Order,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListStages returns a project's stages ordered by position.
func (r *ProjectRepositoryPG) ListStages(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectStage, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListProjectStages, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stages []domain.ProjectStage
	for rows.Next() {
		var st domain.ProjectStage
		if err := rows.Scan(
			&st.ID,
			&st.ProjectID,
			&st.Title,
			&st.Description,
			&st.ImagePath,
			&st.TargetMinor,
			&st.CollectedMinor,
			&st.Status,
			&st.Order,
		); err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stages, nil
}
