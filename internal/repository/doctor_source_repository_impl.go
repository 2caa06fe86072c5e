package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// maxBodyBytes bounds the directory payload read into memory.
const maxBodyBytes = 16 << 20

// FetchError is returned when the directory endpoint could not be read.
// StatusCode is zero for transport failures.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch doctors: %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch doctors from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type httpDoctorSource struct {
	client  *http.Client
	url     string
	timeout time.Duration
	log     *logrus.Logger
}

// NewHTTPDoctorSource returns a DoctorSource issuing one GET per FetchAll call.
// It never retries.
func NewHTTPDoctorSource(client *http.Client, url string, timeout time.Duration, log *logrus.Logger) domainRepo.DoctorSource {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &httpDoctorSource{
		client:  client,
		url:     url,
		timeout: timeout,
		log:     log,
	}
}

func (s *httpDoctorSource) FetchAll(ctx context.Context) ([]entity.Doctor, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &FetchError{URL: s.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warnf("Failed to fetch doctors: %+v", err)
		return nil, &FetchError{URL: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Warnf("Failed to fetch doctors: unexpected status %d", resp.StatusCode)
		return nil, &FetchError{URL: s.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{URL: s.url, Err: fmt.Errorf("read body: %w", err)}
	}

	doctors, err := decodeDoctors(body)
	if err != nil {
		s.log.Warnf("Failed to decode doctors: %+v", err)
		return nil, &FetchError{URL: s.url, Err: fmt.Errorf("decode body: %w", err)}
	}

	s.log.WithFields(logrus.Fields{
		"count":    len(doctors),
		"duration": time.Since(start).String(),
	}).Info("Doctors fetched")

	return doctors, nil
}
