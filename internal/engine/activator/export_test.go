package activator

import "go.trai.ch/dist/internal/core/domain"

// Enter records states on a fresh run and returns the result.
func Enter(states ...domain.ActivationState) domain.ActivationResult {
	r := &run{}
	for _, s := range states {
		r.enter(s)
	}
	return r.result
}
