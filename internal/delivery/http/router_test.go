package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-doctor-directory/config"
	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	doctors []entity.Doctor
	err     error
}

func (s *stubSource) FetchAll(ctx context.Context) ([]entity.Doctor, error) {
	return s.doctors, s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Meta    *struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"meta"`
}

func newTestRouter(t *testing.T, source *stubSource) *mux.Router {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	loader := usecase.NewDoctorLoader(source, log)
	t.Cleanup(loader.Close)
	directory := usecase.NewDoctorDirectoryUsecase(loader, log, config.ListingConfig{PageSize: 5, MaxPageButtons: 5, SuggestionLimit: 3})

	router := NewRouter(
		handler.NewDoctorHandler(directory, validator.NewValidator()),
		middleware.NewCORSMiddleware(),
		middleware.NewRequestLoggerMiddleware(log),
	)
	return router.Setup()
}

func serve(t *testing.T, router http.Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" && method != http.MethodOptions {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func directoryDoctors() []entity.Doctor {
	doctors := []entity.Doctor{
		{ID: "1", Name: "Dr. Lee", Speciality: []string{"Dentist"}, Experience: 10, Fee: 500, VideoConsult: true},
		{ID: "2", Name: "Dr. Patel", Speciality: []string{"Cardiologist"}, Experience: 20, Fee: 800, InClinic: true},
		{ID: "3", Name: "Dr. Ileena", Speciality: nil, Experience: 5, Fee: 300, VideoConsult: true, InClinic: true},
	}
	for i := 0; i < 9; i++ {
		doctors = append(doctors, entity.Doctor{ID: "x" + string(rune('0'+i)), Name: "Dr. Extra", Speciality: []string{"ENT"}, Fee: 1000})
	}
	return doctors
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, &stubSource{})
	rec, _ := serve(t, router, http.MethodGet, "/api/v1/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_ListDoctors(t *testing.T) {
	router := newTestRouter(t, &stubSource{doctors: directoryDoctors()})

	rec, env := serve(t, router, http.MethodGet, "/api/v1/doctors?page=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 3, env.Meta.Page)
	assert.Equal(t, 2, env.Meta.Limit)
	assert.Equal(t, 12, env.Meta.Total)
	assert.Equal(t, 3, env.Meta.TotalPages)
}

func TestRouter_ListDoctorsWithFilters(t *testing.T) {
	router := newTestRouter(t, &stubSource{doctors: directoryDoctors()})

	rec, env := serve(t, router, http.MethodGet, "/api/v1/doctors?consultation=video&sort=fees&search=DR.")
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Doctors []struct {
			ID           string   `json:"id"`
			Specialities []string `json:"specialities"`
			FeeLabel     string   `json:"fee_label"`
		} `json:"doctors"`
		Query         string `json:"query"`
		ActiveFilters []struct {
			Label       string `json:"label"`
			RemoveQuery string `json:"remove_query"`
		} `json:"active_filters"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))

	require.Len(t, list.Doctors, 2)
	assert.Equal(t, "3", list.Doctors[0].ID)
	assert.Equal(t, []string{"Specialty not listed"}, list.Doctors[0].Specialities)
	assert.Equal(t, "₹ 300", list.Doctors[0].FeeLabel)
	assert.Equal(t, "1", list.Doctors[1].ID)
	assert.Equal(t, "consultation=video&search=DR.&sort=fees", list.Query)
	require.Len(t, list.ActiveFilters, 3)
	assert.Equal(t, "DR.", list.ActiveFilters[0].Label)
	assert.Equal(t, "consultation=video&sort=fees", list.ActiveFilters[0].RemoveQuery)
}

func TestRouter_ListDoctorsSpecialtiesOr(t *testing.T) {
	router := newTestRouter(t, &stubSource{doctors: directoryDoctors()})

	_, env := serve(t, router, http.MethodGet, "/api/v1/doctors?specialties=Dentist,Cardiologist")

	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.Total)
}

func TestRouter_ListDoctorsValidation(t *testing.T) {
	router := newTestRouter(t, &stubSource{doctors: directoryDoctors()})

	rec, env := serve(t, router, http.MethodGet, "/api/v1/doctors?consultation=phone&sort=rating&page=0")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	var errs map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &errs))
	assert.Equal(t, "consultation must be one of: video, clinic", errs["consultation"])
	assert.Equal(t, "sort must be one of: fees, experience", errs["sort"])
	assert.Equal(t, "page must be greater than or equal to 1", errs["page"])

	rec, _ = serve(t, router, http.MethodGet, "/api/v1/doctors?page=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ListDoctorsFetchFailure(t *testing.T) {
	router := newTestRouter(t, &stubSource{err: errors.New("status 503")})

	rec, env := serve(t, router, http.MethodGet, "/api/v1/doctors")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Failed to fetch doctors", env.Message)

	// the specialty catalog keeps working
	rec, _ = serve(t, router, http.MethodGet, "/api/v1/specialties?q=card")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Suggestions(t *testing.T) {
	router := newTestRouter(t, &stubSource{doctors: directoryDoctors()})

	rec, env := serve(t, router, http.MethodGet, "/api/v1/doctors/suggestions?q=dr")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Suggestions []struct {
			Name string `json:"name"`
		} `json:"suggestions"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, "Dr. Lee", resp.Suggestions[0].Name)
}

func TestRouter_Specialties(t *testing.T) {
	router := newTestRouter(t, &stubSource{})

	rec, env := serve(t, router, http.MethodGet, "/api/v1/specialties?q=general")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Specialties []struct {
			Name  string `json:"name"`
			Label string `json:"label"`
		} `json:"specialties"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp.Specialties, 1)
	assert.Equal(t, "General-Physician", resp.Specialties[0].Name)
	assert.Equal(t, "General/Physician", resp.Specialties[0].Label)
}

func TestRouter_ReloadAndStatus(t *testing.T) {
	router := newTestRouter(t, &stubSource{doctors: directoryDoctors()})

	rec, _ := serve(t, router, http.MethodPost, "/api/v1/doctors/reload")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, _ = serve(t, router, http.MethodGet, "/api/v1/doctors")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := serve(t, router, http.MethodGet, "/api/v1/doctors/status")
	require.Equal(t, http.StatusOK, rec.Code)
	var status struct {
		Status string `json:"status"`
		Total  int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "success", status.Status)
	assert.Equal(t, 12, status.Total)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t, &stubSource{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/doctors", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Body.String())
}

func TestRouter_UnknownRoutesUseEnvelope(t *testing.T) {
	router := newTestRouter(t, &stubSource{})

	rec, env := serve(t, router, http.MethodGet, "/api/v1/hospitals")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Resource not found", env.Message)

	rec, env = serve(t, router, http.MethodDelete, "/api/v1/doctors")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Method not allowed", env.Message)
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	router := newTestRouter(t, &stubSource{})
	id := "6f1c1f2e-0f3a-4c55-9d1e-6c1d8a2b3c4d"

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(middleware.RequestIDHeader, id)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, id, rec.Header().Get(middleware.RequestIDHeader))
}
