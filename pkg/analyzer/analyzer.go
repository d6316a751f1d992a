// Package analyzer computes budget status and idle-instance findings from
// an inventory document. All functions are pure reads; thresholds come in
// as arguments.
package analyzer

import (
	"costopt/internal/models"
)

// AnalyzeBudget sums instance costs against the document's monthly budget
// and flags instances whose individual cost exceeds costThreshold.
// Cost equal to the threshold is not flagged.
func AnalyzeBudget(doc *models.InventoryDocument, costThreshold float64) models.BudgetAnalysis {
	analysis := models.BudgetAnalysis{
		Budget:     doc.MonthlyBudget,
		TotalCount: len(doc.Instances),
	}

	for _, inst := range doc.Instances {
		analysis.TotalCost += inst.MonthlyCost
		if inst.Status == models.StatusRunning {
			analysis.RunningCost += inst.MonthlyCost
			analysis.RunningCount++
		}
		if inst.MonthlyCost > costThreshold {
			analysis.OverBudgetInstances = append(analysis.OverBudgetInstances, inst)
		}
	}

	analysis.IsOverBudget = analysis.TotalCost > doc.MonthlyBudget
	analysis.BudgetRemaining = doc.MonthlyBudget - analysis.TotalCost
	return analysis
}

// FindIdleInstances returns the running instances whose CPU usage is
// strictly below idleThreshold, in document order. Usage equal to the
// threshold is not idle.
func FindIdleInstances(doc *models.InventoryDocument, idleThreshold float64) []*models.Instance {
	var idle []*models.Instance
	for _, inst := range doc.Instances {
		if inst.Status == models.StatusRunning && inst.CPUUsage < idleThreshold {
			idle = append(idle, inst)
		}
	}
	return idle
}
