package state

import "time"

// SetClock replaces the time source used for activated_at.
func (p *PointerFile) SetClock(now func() time.Time) {
	p.now = now
}
