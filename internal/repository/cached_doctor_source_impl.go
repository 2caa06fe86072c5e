package repository

import (
	"context"
	"errors"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type cachedDoctorSource struct {
	source domainRepo.DoctorSource
	cache  domainRepo.SnapshotCache
	log    *logrus.Logger
}

// NewCachedDoctorSource serves FetchAll from cache when possible and stores every
// successful fetch. Cache failures fall through to the wrapped source.
func NewCachedDoctorSource(source domainRepo.DoctorSource, cache domainRepo.SnapshotCache, log *logrus.Logger) domainRepo.DoctorSource {
	return &cachedDoctorSource{
		source: source,
		cache:  cache,
		log:    log,
	}
}

func (s *cachedDoctorSource) FetchAll(ctx context.Context) ([]entity.Doctor, error) {
	doctors, err := s.cache.Get(ctx)
	switch {
	case err == nil:
		s.log.Debugf("Serving %d doctors from snapshot cache", len(doctors))
		return doctors, nil
	case !errors.Is(err, ErrCacheMiss):
		s.log.Warnf("Failed to read doctor snapshot cache: %+v", err)
	}

	doctors, err = s.source.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, doctors); err != nil {
		s.log.Warnf("Failed to store doctor snapshot cache: %+v", err)
	}
	return doctors, nil
}
