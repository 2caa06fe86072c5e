package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go-doctor-directory/config"
	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorsUnavailable = errors.New("doctors unavailable")
	ErrDoctorsLoading     = errors.New("doctors still loading")
)

const (
	EmptyResultMessage = "No doctors found"
	maxMemoEntries     = 64
)

type DoctorDirectoryUsecase interface {
	ListDoctors(ctx context.Context, filters entity.FilterState, page int) (*dto.DoctorListResponse, error)
	SuggestDoctors(ctx context.Context, term string, filters entity.FilterState) (*dto.SuggestionListResponse, error)
	SearchSpecialties(ctx context.Context, term string) *dto.SpecialtyListResponse
	Reload(ctx context.Context) *dto.LoadStatusResponse
	Status(ctx context.Context) *dto.LoadStatusResponse
}

type doctorDirectoryUsecase struct {
	loader  *DoctorLoader
	log     *logrus.Logger
	listing config.ListingConfig

	memoMu  sync.Mutex
	memoGen uint64
	memo    map[string][]entity.Doctor
}

func NewDoctorDirectoryUsecase(loader *DoctorLoader, log *logrus.Logger, listing config.ListingConfig) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		loader:  loader,
		log:     log,
		listing: listing,
		memo:    make(map[string][]entity.Doctor),
	}
}

func (u *doctorDirectoryUsecase) ListDoctors(ctx context.Context, filters entity.FilterState, page int) (*dto.DoctorListResponse, error) {
	state, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := u.filtered(state, filters)

	paginator := service.NewPaginator(u.listing.PageSize, u.listing.MaxPageButtons)
	paginator.Reset(len(filtered))
	// a page outside the result keeps the listing on its first page
	if !paginator.GoTo(page) {
		u.log.Debugf("Ignoring out of range page %d (total pages %d)", page, paginator.TotalPages())
	}

	return NewDoctorListResponse(filtered, filters, paginator), nil
}

func (u *doctorDirectoryUsecase) SuggestDoctors(ctx context.Context, term string, filters entity.FilterState) (*dto.SuggestionListResponse, error) {
	state, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	matches := service.SuggestDoctors(state.Doctors, term, u.listing.SuggestionLimit)
	return converter.SuggestionsToResponse(matches, filters), nil
}

// SearchSpecialties works on the fixed vocabulary and never waits for the doctor list.
func (u *doctorDirectoryUsecase) SearchSpecialties(ctx context.Context, term string) *dto.SpecialtyListResponse {
	return converter.SpecialtiesToResponse(service.SearchSpecialties(term))
}

func (u *doctorDirectoryUsecase) Reload(ctx context.Context) *dto.LoadStatusResponse {
	u.loader.Load()
	return u.Status(ctx)
}

func (u *doctorDirectoryUsecase) Status(ctx context.Context) *dto.LoadStatusResponse {
	return loadStatusToResponse(u.loader.State())
}

func (u *doctorDirectoryUsecase) snapshot(ctx context.Context) (LoadState, error) {
	u.loader.EnsureLoaded()

	state, err := u.loader.Wait(ctx)
	if err != nil {
		u.log.Warnf("Gave up waiting for doctors: %+v", err)
		return state, fmt.Errorf("%w: %w", ErrDoctorsLoading, err)
	}
	if state.Status == LoadError {
		return state, fmt.Errorf("%w: %w", ErrDoctorsUnavailable, state.Err)
	}
	return state, nil
}

// filtered memoizes ApplyFilters per snapshot generation and encoded filter state.
func (u *doctorDirectoryUsecase) filtered(state LoadState, filters entity.FilterState) []entity.Doctor {
	key := service.EncodeFilters(filters)

	u.memoMu.Lock()
	defer u.memoMu.Unlock()

	if u.memoGen != state.Generation || len(u.memo) >= maxMemoEntries {
		u.memo = make(map[string][]entity.Doctor)
		u.memoGen = state.Generation
	}
	if result, ok := u.memo[key]; ok {
		return result
	}

	result := service.ApplyFilters(state.Doctors, filters)
	u.memo[key] = result
	return result
}

// NewDoctorListResponse renders the current page of filtered doctors.
func NewDoctorListResponse(filtered []entity.Doctor, filters entity.FilterState, paginator *service.Paginator) *dto.DoctorListResponse {
	resp := &dto.DoctorListResponse{
		Doctors:       converter.DoctorsToResponses(service.Page(paginator, filtered)),
		Total:         len(filtered),
		Page:          paginator.Current(),
		TotalPages:    paginator.TotalPages(),
		PageNumbers:   paginator.PageNumbers(),
		Filters:       converter.FilterStateToResponse(filters),
		Query:         service.EncodeFilters(filters),
		ActiveFilters: converter.FilterChips(filters),
		Empty:         len(filtered) == 0,
	}

	if resp.Empty {
		resp.EmptyMessage = EmptyResultMessage
		if !filters.IsEmpty() {
			clearQuery := service.EncodeFilters(entity.FilterState{})
			resp.ClearFiltersQuery = &clearQuery
		}
	}

	return resp
}

func loadStatusToResponse(state LoadState) *dto.LoadStatusResponse {
	resp := &dto.LoadStatusResponse{
		Status:     string(state.Status),
		Generation: state.Generation,
		Total:      len(state.Doctors),
	}
	if state.Err != nil {
		resp.Error = state.Err.Error()
	}
	return resp
}
