package optimizer

import (
	"testing"
	"time"

	"costopt/internal/models"
)

var testClock = func() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func makeInstance(id string, status models.InstanceStatus, cost, cpu float64) *models.Instance {
	return &models.Instance{
		InstanceID:  id,
		Name:        id,
		Type:        "t3.medium",
		Status:      status,
		MonthlyCost: cost,
		CPUUsage:    cpu,
		Owner:       "team-a",
		Environment: "development",
	}
}

func TestShutdownIdle(t *testing.T) {
	doc := &models.InventoryDocument{
		MonthlyBudget: 1000,
		Instances: []*models.Instance{
			makeInstance("i-1", models.StatusRunning, 120.5, 1),
			makeInstance("i-2", models.StatusRunning, 300, 80),
			makeInstance("i-3", models.StatusRunning, 79.5, 2),
		},
	}
	idle := []*models.Instance{doc.Instances[0], doc.Instances[2]}

	savings := NewWithClock(testClock).ShutdownIdle(doc, idle)

	if savings != 200 {
		t.Errorf("savings = %v, want 200", savings)
	}
	for _, id := range []string{"i-1", "i-3"} {
		inst := findByID(t, doc, id)
		if inst.Status != models.StatusStopped {
			t.Errorf("%s status = %s, want stopped", id, inst.Status)
		}
		if inst.MonthlyCost != 0 {
			t.Errorf("%s MonthlyCost = %v, want 0", id, inst.MonthlyCost)
		}
		if inst.PreviousMonthlyCost == nil {
			t.Fatalf("%s PreviousMonthlyCost not recorded", id)
		}
		if inst.ShutdownReason != models.ShutdownReasonAuto {
			t.Errorf("%s ShutdownReason = %q, want %q", id, inst.ShutdownReason, models.ShutdownReasonAuto)
		}
		if inst.ShutdownTimestamp != "2025-06-01T12:00:00Z" {
			t.Errorf("%s ShutdownTimestamp = %q, want clock time in RFC3339", id, inst.ShutdownTimestamp)
		}
	}

	if prev := *findByID(t, doc, "i-1").PreviousMonthlyCost; prev != 120.5 {
		t.Errorf("i-1 PreviousMonthlyCost = %v, want 120.5", prev)
	}

	// The busy instance is untouched.
	busy := findByID(t, doc, "i-2")
	if busy.Status != models.StatusRunning || busy.MonthlyCost != 300 || busy.PreviousMonthlyCost != nil {
		t.Errorf("i-2 was modified: %+v", busy)
	}
}

func TestShutdownIdleEmptyListIsNoOp(t *testing.T) {
	doc := &models.InventoryDocument{
		MonthlyBudget: 1000,
		Instances: []*models.Instance{
			makeInstance("i-1", models.StatusRunning, 50, 90),
		},
	}

	savings := NewWithClock(testClock).ShutdownIdle(doc, nil)

	if savings != 0 {
		t.Errorf("savings = %v, want 0", savings)
	}
	inst := doc.Instances[0]
	if inst.Status != models.StatusRunning || inst.MonthlyCost != 50 ||
		inst.PreviousMonthlyCost != nil || inst.ShutdownReason != "" || inst.ShutdownTimestamp != "" {
		t.Errorf("document modified by empty shutdown: %+v", inst)
	}
}

// Duplicate IDs are undefined upstream; the pinned policy is that only the
// first occurrence is modified.
func TestShutdownIdleDuplicateIDsFirstMatchOnly(t *testing.T) {
	first := makeInstance("i-dup", models.StatusRunning, 100, 1)
	second := makeInstance("i-dup", models.StatusRunning, 200, 1)
	doc := &models.InventoryDocument{
		MonthlyBudget: 1000,
		Instances:     []*models.Instance{first, second},
	}

	savings := NewWithClock(testClock).ShutdownIdle(doc, []*models.Instance{{InstanceID: "i-dup"}})

	if savings != 100 {
		t.Errorf("savings = %v, want 100 (first occurrence only)", savings)
	}
	if first.Status != models.StatusStopped {
		t.Error("first occurrence not stopped")
	}
	if second.Status != models.StatusRunning || second.MonthlyCost != 200 {
		t.Errorf("second occurrence modified: %+v", second)
	}
}

func findByID(t *testing.T, doc *models.InventoryDocument, id string) *models.Instance {
	t.Helper()
	for _, inst := range doc.Instances {
		if inst.InstanceID == id {
			return inst
		}
	}
	t.Fatalf("instance %s not found", id)
	return nil
}
