package analyzer

import (
	"fmt"
	"strings"

	"costopt/internal/models"
)

// Environments that qualify for auto-stop scheduling.
var nonProductionEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"ci-cd":       true,
}

// BuildRecommendations evaluates the recommendation rules in order and
// returns every one that matches. The rules are independent; when none
// match, a single well-optimized entry is returned.
func BuildRecommendations(analysis models.BudgetAnalysis, idle []*models.Instance) []models.Recommendation {
	var recs []models.Recommendation

	if analysis.IsOverBudget {
		recs = append(recs, models.Recommendation{
			Level:   models.LevelCritical,
			Message: "Reduce spending to meet the monthly budget target",
		})
	}

	if len(idle) > 0 {
		recs = append(recs, models.Recommendation{
			Level:   models.LevelWarning,
			Message: fmt.Sprintf("Review %d idle instance(s) for shutdown", len(idle)),
		})
	}

	if hasGPUWorkload(analysis.OverBudgetInstances) {
		recs = append(recs, models.Recommendation{
			Level:   models.LevelWarning,
			Message: "Consider using spot instances for GPU workloads",
		})
	}

	if hasNonProductionIdle(idle) {
		recs = append(recs, models.Recommendation{
			Level:   models.LevelInfo,
			Message: "Implement auto-stop schedules for non-production environments",
		})
	}

	if len(recs) == 0 {
		recs = append(recs, models.Recommendation{
			Level:   models.LevelOK,
			Message: "Infrastructure is well-optimized",
		})
	}
	return recs
}

// hasGPUWorkload reports whether any expensive instance looks like a GPU
// box: "gpu" in the name (case-insensitive) or a type code starting with p.
func hasGPUWorkload(expensive []*models.Instance) bool {
	for _, inst := range expensive {
		if strings.Contains(strings.ToLower(inst.Name), "gpu") ||
			strings.HasPrefix(inst.Type, "p") {
			return true
		}
	}
	return false
}

func hasNonProductionIdle(idle []*models.Instance) bool {
	for _, inst := range idle {
		if nonProductionEnvironments[inst.Environment] {
			return true
		}
	}
	return false
}
