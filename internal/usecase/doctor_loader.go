package usecase

import (
	"context"
	"sync"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type LoadStatus string

const (
	LoadPending LoadStatus = "pending"
	LoadSuccess LoadStatus = "success"
	LoadError   LoadStatus = "error"
)

// LoadState is one observation of the loader. Doctors is only set on success.
type LoadState struct {
	Status     LoadStatus
	Generation uint64
	Doctors    []entity.Doctor
	Err        error
}

// DoctorLoader fetches the doctor list in the background and exposes its
// pending/success/error lifecycle. A later Load supersedes an earlier one: the
// earlier fetch is cancelled and its result, if it still arrives, is dropped.
type DoctorLoader struct {
	source repository.DoctorSource
	log    *logrus.Logger

	baseCtx    context.Context
	baseCancel context.CancelFunc

	mu         sync.Mutex
	state      LoadState
	cancel     context.CancelFunc
	done       chan struct{}
	settled    bool
	generation uint64

	wg sync.WaitGroup
}

func NewDoctorLoader(source repository.DoctorSource, log *logrus.Logger) *DoctorLoader {
	ctx, cancel := context.WithCancel(context.Background())
	return &DoctorLoader{
		source:     source,
		log:        log,
		baseCtx:    ctx,
		baseCancel: cancel,
		state:      LoadState{Status: LoadPending},
		done:       make(chan struct{}),
	}
}

// Load starts a fetch and returns its generation.
func (l *DoctorLoader) Load() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
	}
	// wake waiters of the superseded generation so they re-check
	if !l.settled {
		close(l.done)
	}

	l.generation++
	gen := l.generation
	ctx, cancel := context.WithCancel(l.baseCtx)
	l.cancel = cancel
	l.done = make(chan struct{})
	l.settled = false
	l.state = LoadState{Status: LoadPending, Generation: gen}

	l.wg.Add(1)
	go l.run(ctx, gen)

	l.log.Debugf("Doctor load %d started", gen)
	return gen
}

// EnsureLoaded starts the first fetch if none has been started yet.
func (l *DoctorLoader) EnsureLoaded() {
	l.mu.Lock()
	started := l.generation > 0
	l.mu.Unlock()

	if !started {
		l.Load()
	}
}

func (l *DoctorLoader) run(ctx context.Context, gen uint64) {
	defer l.wg.Done()

	doctors, err := l.source.FetchAll(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		l.log.Debugf("Dropping result of superseded doctor load %d", gen)
		return
	}

	if err != nil {
		l.log.Warnf("Failed to load doctors: %+v", err)
		l.state = LoadState{Status: LoadError, Generation: gen, Err: err}
	} else {
		l.log.Infof("Loaded %d doctors (generation %d)", len(doctors), gen)
		l.state = LoadState{Status: LoadSuccess, Generation: gen, Doctors: doctors}
	}

	l.cancel()
	l.cancel = nil
	l.settled = true
	close(l.done)
}

// State returns the current observation without blocking.
func (l *DoctorLoader) State() LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Wait blocks until the latest load settles or ctx is done.
func (l *DoctorLoader) Wait(ctx context.Context) (LoadState, error) {
	for {
		l.mu.Lock()
		if l.settled {
			state := l.state
			l.mu.Unlock()
			return state, nil
		}
		done := l.done
		l.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return l.State(), ctx.Err()
		}
	}
}

// Close cancels any in-flight fetch and waits for it to return.
func (l *DoctorLoader) Close() {
	l.baseCancel()
	l.wg.Wait()
}
