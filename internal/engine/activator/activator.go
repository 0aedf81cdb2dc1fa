// Package activator switches the active distribution.
package activator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/dist/internal/core/domain"
	"go.trai.ch/dist/internal/core/ports"
	"go.trai.ch/dist/internal/engine/active"
	"go.trai.ch/dist/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Activator changes which installed version is current.
type Activator struct {
	registry    *registry.Registry
	active      *active.Store
	linker      ports.Linker
	locker      ports.Locker
	tracer      ports.Tracer
	logger      ports.Logger
	lockTimeout time.Duration
}

// New creates an Activator. A zero lockTimeout waits for the lock until ctx is done.
func New(
	reg *registry.Registry,
	activeStore *active.Store,
	linker ports.Linker,
	locker ports.Locker,
	tracer ports.Tracer,
	logger ports.Logger,
	lockTimeout time.Duration,
) *Activator {
	return &Activator{
		registry:    reg,
		active:      activeStore,
		linker:      linker,
		locker:      locker,
		tracer:      tracer,
		logger:      logger,
		lockTimeout: lockTimeout,
	}
}

// run tracks the states visited by one activation.
type run struct {
	result domain.ActivationResult
}

// enter records s. Only transitions the state machine allows may be taken;
// anything else is a bug in the activator.
func (r *run) enter(s domain.ActivationState) {
	if n := len(r.result.States); n > 0 {
		if from := r.result.States[n-1]; !from.CanTransition(s) {
			panic(fmt.Sprintf("activator: illegal transition %s -> %s", from, s))
		}
	}
	r.result.States = append(r.result.States, s)
}

func (r *run) fail(err error) (domain.ActivationResult, error) {
	r.enter(domain.StateError)
	return r.result, err
}

// Activate makes version the active distribution.
//
// The version must be installed. Activating the active version is a no-op that
// does not take the lock. The switch itself runs under the cross-process lock,
// and once the pointer write starts it is not cancelled. A failed switch is rolled
// back; if the rollback fails too the error wraps domain.ErrCorruptedState.
func (a *Activator) Activate(ctx context.Context, version string) (domain.ActivationResult, error) {
	ctx, span := a.tracer.Start(ctx, "activate")
	defer span.End()
	span.SetAttribute("version", version)

	res, err := a.activate(ctx, version)
	span.SetAttribute("final_state", res.Final().String())
	if err != nil {
		span.RecordError(err)
	}
	return res, err
}

func (a *Activator) activate(ctx context.Context, version string) (domain.ActivationResult, error) {
	r := &run{result: domain.ActivationResult{Version: version}}
	r.enter(domain.StateStart)
	r.enter(domain.StateValidating)

	if version == "" {
		return r.fail(zerr.Wrap(domain.ErrInvalidVersion, "version must not be empty"))
	}

	before, err := a.validate(ctx, version)
	if err != nil {
		return r.fail(err)
	}
	r.result.Previous = before
	if before.Matches(version) {
		r.enter(domain.StateDone)
		return r.result, nil
	}

	lockCtx := ctx
	if a.lockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, a.lockTimeout)
		defer cancel()
	}
	unlock, err := a.locker.Lock(lockCtx)
	if err != nil {
		return r.fail(zerr.With(zerr.Wrap(err, "failed to acquire activation lock"), "version", version))
	}
	defer func() {
		if unlockErr := unlock(); unlockErr != nil {
			a.logger.Error(errors.Join(domain.ErrLockFailed, unlockErr))
		}
	}()

	current, err := a.validate(ctx, version)
	if err != nil {
		return r.fail(err)
	}
	if current.Matches(version) {
		r.enter(domain.StateDone)
		return r.result, nil
	}
	if current != before {
		err := zerr.With(zerr.Wrap(domain.ErrActivationConflict, "active pointer moved while waiting for the lock"), "expected", before.Version())
		return r.fail(zerr.With(err, "actual", current.Version()))
	}

	return a.switchTo(ctx, r, version)
}

// validate checks the installed set and reads the pointer, both fresh.
func (a *Activator) validate(ctx context.Context, version string) (domain.ActivePointer, error) {
	installed, err := a.registry.IsInstalled(ctx, version)
	if err != nil {
		return domain.ActivePointer{}, err
	}
	if !installed {
		return domain.ActivePointer{}, zerr.With(zerr.Wrap(domain.ErrNotInstalled, "cannot activate"), "version", version)
	}
	return a.active.GetActive(ctx)
}

func (a *Activator) switchTo(ctx context.Context, r *run, version string) (domain.ActivationResult, error) {
	r.enter(domain.StateLinking)
	detached := context.WithoutCancel(ctx)

	previousTarget, err := a.linker.Target(ctx)
	if err != nil {
		// Nothing was changed yet. RollingBack is entered only because the state
		// machine reaches Error from Linking through it; no restore runs.
		r.enter(domain.StateRollingBack)
		return r.fail(errors.Join(domain.ErrPersist, domain.ErrLinkFailed, zerr.With(zerr.Wrap(err, "failed to read current link"), "version", version)))
	}
	if err := a.linker.Link(ctx, version); err != nil {
		return a.rollback(detached, r, version, previousTarget, errors.Join(domain.ErrLinkFailed, err))
	}

	r.enter(domain.StatePersisting)
	if err := a.active.SetActive(detached, version); err != nil {
		return a.rollback(detached, r, version, previousTarget, err)
	}

	r.enter(domain.StateDone)
	r.result.Changed = true
	return r.result, nil
}

// rollback restores the link target observed before Linking, or removes the link if there was none.
func (a *Activator) rollback(
	ctx context.Context,
	r *run,
	version string,
	previousTarget string,
	cause error,
) (domain.ActivationResult, error) {
	r.enter(domain.StateRollingBack)

	var rollbackErr error
	if previousTarget == "" {
		rollbackErr = a.linker.Unlink(ctx)
	} else {
		rollbackErr = a.linker.Link(ctx, previousTarget)
	}

	if rollbackErr != nil {
		return r.fail(errors.Join(
			domain.ErrCorruptedState,
			cause,
			zerr.With(zerr.Wrap(rollbackErr, "rollback failed"), "version", version),
		))
	}
	return r.fail(errors.Join(domain.ErrPersist, zerr.With(zerr.Wrap(cause, "activation rolled back"), "version", version)))
}
