package activator_test

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/dist/internal/adapters/telemetry"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/dist/internal/engine/activator"
	"go.trai.ch/dist/internal/engine/active"
	"go.trai.ch/dist/internal/engine/registry"
)

type installedSet []string

func (s installedSet) List(context.Context) ([]string, error) {
	return s, nil
}

// memPointer is a PointerStorage shared between activators in one test.
type memPointer struct {
	mu       sync.Mutex
	version  string
	writeErr error
}

func (p *memPointer) Read(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.version, nil
}

func (p *memPointer) Write(_ context.Context, version string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.writeErr != nil {
		return p.writeErr
	}
	p.version = version
	return nil
}

func (p *memPointer) get() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.version
}

// memLinker is a Linker backed by a string.
type memLinker struct {
	mu     sync.Mutex
	target string
	links  int
}

func (l *memLinker) Target(context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.target, nil
}

func (l *memLinker) Link(_ context.Context, version string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.target = version
	l.links++
	return nil
}

func (l *memLinker) Unlink(context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.target = ""
	return nil
}

func (l *memLinker) get() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.target
}

// mutexLocker is an in-process Locker.
type mutexLocker struct {
	mu    sync.Mutex
	locks int
}

func (l *mutexLocker) Lock(context.Context) (func() error, error) {
	l.mu.Lock()
	l.locks++
	return func() error {
		l.mu.Unlock()
		return nil
	}, nil
}

// barrierLocker holds every caller until parties callers have arrived, then serializes them.
type barrierLocker struct {
	mutexLocker
	arrived sync.WaitGroup
}

func newBarrierLocker(parties int) *barrierLocker {
	l := &barrierLocker{}
	l.arrived.Add(parties)
	return l
}

func (l *barrierLocker) Lock(ctx context.Context) (func() error, error) {
	l.arrived.Done()
	l.arrived.Wait()
	return l.mutexLocker.Lock(ctx)
}

type discardLogger struct{}

func (discardLogger) Info(string) {}
func (discardLogger) Warn(string) {}
func (discardLogger) Error(error) {}

func newActivator(
	installed []string,
	pointer ports.PointerStorage,
	linker ports.Linker,
	locker ports.Locker,
) *activator.Activator {
	return activator.New(
		registry.New(installedSet(installed)),
		active.New(pointer),
		linker,
		locker,
		telemetry.NewNoOpTracer(),
		discardLogger{},
		time.Second,
	)
}
