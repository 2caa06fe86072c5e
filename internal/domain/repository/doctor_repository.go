package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"
)

// DoctorSource retrieves the full doctor list in a single request.
type DoctorSource interface {
	FetchAll(ctx context.Context) ([]entity.Doctor, error)
}

// SnapshotCache keeps a copy of the fetched doctor list between process restarts.
type SnapshotCache interface {
	Get(ctx context.Context) ([]entity.Doctor, error)
	Set(ctx context.Context, doctors []entity.Doctor) error
}
