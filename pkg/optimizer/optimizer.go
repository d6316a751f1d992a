// Package optimizer applies the simulated shutdown of idle instances to an
// inventory document.
package optimizer

import (
	"time"

	"costopt/internal/models"
)

// Optimizer mutates inventory documents. The clock is injectable so tests
// get deterministic shutdown timestamps.
type Optimizer struct {
	now func() time.Time
}

// New returns an Optimizer using the wall clock.
func New() *Optimizer {
	return NewWithClock(time.Now)
}

// NewWithClock returns an Optimizer that stamps shutdowns with now().
func NewWithClock(now func() time.Time) *Optimizer {
	return &Optimizer{now: now}
}

// ShutdownIdle stops each idle instance in the document and returns the
// total monthly cost reclaimed. Matching is by instance ID, first
// occurrence only. For every matched instance the status becomes stopped,
// the cost is recorded as previous_monthly_cost and zeroed, and the
// shutdown reason and timestamp are stamped.
//
// An empty idle list leaves the document untouched and returns 0, so
// repeat runs with no new idle instances are no-ops.
func (o *Optimizer) ShutdownIdle(doc *models.InventoryDocument, idle []*models.Instance) float64 {
	var totalSavings float64

	for _, target := range idle {
		for _, inst := range doc.Instances {
			if inst.InstanceID != target.InstanceID {
				continue
			}
			previous := inst.MonthlyCost
			inst.Status = models.StatusStopped
			inst.PreviousMonthlyCost = &previous
			inst.MonthlyCost = 0
			inst.ShutdownReason = models.ShutdownReasonAuto
			inst.ShutdownTimestamp = o.now().Format(time.RFC3339)
			totalSavings += previous
			break
		}
	}
	return totalSavings
}
