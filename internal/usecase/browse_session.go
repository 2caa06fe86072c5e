package usecase

import (
	"context"

	"go-doctor-directory/config"
	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"
)

// BrowseSession is the state container behind one interactive browsing session.
// It owns the filter state, the page position and the loaded doctors, and every
// change goes through its mutators. It is not safe for concurrent use.
type BrowseSession struct {
	loader    *DoctorLoader
	sync      *service.URLSynchronizer
	paginator *service.Paginator
	listing   config.ListingConfig

	filters  entity.FilterState
	state    LoadState
	filtered []entity.Doctor
	expanded bool
}

func NewBrowseSession(loader *DoctorLoader, location service.Location, listing config.ListingConfig) *BrowseSession {
	return &BrowseSession{
		loader:    loader,
		sync:      service.NewURLSynchronizer(location),
		paginator: service.NewPaginator(listing.PageSize, listing.MaxPageButtons),
		listing:   listing,
		state:     LoadState{Status: LoadPending},
		filtered:  []entity.Doctor{},
	}
}

// Start reads the initial location and waits for the doctor list.
// A fetch failure is kept in LoadState and also returned.
func (s *BrowseSession) Start(ctx context.Context) error {
	s.filters = s.sync.Pull(s.filters)
	s.loader.EnsureLoaded()
	return s.await(ctx)
}

// Reload fetches the doctor list again, keeping the current filters.
func (s *BrowseSession) Reload(ctx context.Context) error {
	s.loader.Load()
	return s.await(ctx)
}

func (s *BrowseSession) await(ctx context.Context) error {
	state, err := s.loader.Wait(ctx)
	s.state = state
	s.refresh()
	if err != nil {
		return err
	}
	return state.Err
}

func (s *BrowseSession) LoadState() LoadState {
	return s.state
}

func (s *BrowseSession) Filters() entity.FilterState {
	return s.filters.Clone()
}

func (s *BrowseSession) SetSearch(term string) {
	s.setFilters(s.filters.WithSearch(term))
}

// SelectDoctor picks an autocomplete suggestion, searching by its full name.
func (s *BrowseSession) SelectDoctor(doctor entity.Doctor) {
	s.SetSearch(doctor.Name)
}

func (s *BrowseSession) SetConsultationType(c entity.ConsultationType) {
	s.setFilters(s.filters.WithConsultationType(c))
}

func (s *BrowseSession) ToggleSpecialty(name string) {
	s.setFilters(s.filters.ToggleSpecialty(name))
}

func (s *BrowseSession) SetSpecialties(names []string) {
	s.setFilters(s.filters.WithSpecialties(names))
}

func (s *BrowseSession) SetSort(sort entity.SortOption) {
	s.setFilters(s.filters.WithSort(sort))
}

func (s *BrowseSession) RemoveFilter(field entity.FilterField, value string) {
	s.setFilters(s.filters.Without(field, value))
}

func (s *BrowseSession) ClearFilters() {
	s.setFilters(s.filters.ClearFilters())
}

// ResetFilters clears every filter, search included.
func (s *BrowseSession) ResetFilters() {
	s.setFilters(entity.FilterState{})
}

func (s *BrowseSession) GoToPage(page int) bool {
	return s.paginator.GoTo(page)
}

func (s *BrowseSession) NextPage() bool {
	return s.paginator.Next()
}

func (s *BrowseSession) PrevPage() bool {
	return s.paginator.Prev()
}

// LocationChanged re-reads the location after an external change such as back or
// forward navigation. Fields the location does not mention keep their values.
func (s *BrowseSession) LocationChanged() {
	next := s.sync.Pull(s.filters)
	if next.Equal(s.filters) {
		return
	}
	s.filters = next
	s.refresh()
}

// Suggestions returns autocomplete matches from the loaded list.
func (s *BrowseSession) Suggestions(term string) []entity.Doctor {
	return service.SuggestDoctors(s.state.Doctors, term, s.listing.SuggestionLimit)
}

// SetExpanded switches between the paged view and one that lists every match.
// The setting survives filter changes.
func (s *BrowseSession) SetExpanded(expanded bool) {
	s.expanded = expanded
}

func (s *BrowseSession) Expanded() bool {
	return s.expanded
}

// View renders the current page, or every match when expanded.
func (s *BrowseSession) View() *dto.DoctorListResponse {
	resp := NewDoctorListResponse(s.filtered, s.filters, s.paginator)
	if s.expanded {
		resp.Doctors = converter.DoctorsToResponses(s.filtered)
		resp.Expanded = true
	}
	return resp
}

func (s *BrowseSession) setFilters(next entity.FilterState) {
	if next.Equal(s.filters) {
		return
	}
	s.filters = next
	s.refresh()
	s.sync.Push(s.filters)
}

// refresh recomputes the filtered list and returns to the first page.
func (s *BrowseSession) refresh() {
	s.filtered = service.ApplyFilters(s.state.Doctors, s.filters)
	s.paginator.Reset(len(s.filtered))
}
