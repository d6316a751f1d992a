package models

// BudgetAnalysis summarizes the inventory against its monthly budget.
type BudgetAnalysis struct {
	Budget          float64
	TotalCost       float64
	RunningCost     float64
	BudgetRemaining float64
	IsOverBudget    bool
	RunningCount    int
	TotalCount      int

	// Instances whose individual monthly cost exceeds the high-cost
	// threshold. Distinct from the aggregate budget check.
	OverBudgetInstances []*Instance
}

// RecommendationLevel indicates the severity of a recommendation.
type RecommendationLevel string

const (
	LevelCritical RecommendationLevel = "CRITICAL"
	LevelWarning  RecommendationLevel = "WARNING"
	LevelInfo     RecommendationLevel = "INFO"
	LevelOK       RecommendationLevel = "OK"
)

// Recommendation is one cost-optimization suggestion for the report.
type Recommendation struct {
	Level   RecommendationLevel
	Message string
}
