// Package formatter renders the cost optimization report. Every function
// writes to an io.Writer so the report can be captured in tests.
package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"costopt/internal/models"
)

const (
	sectionRule = "----------------------------------------"
	reportRule  = "======================================================================"
)

var (
	criticalMarker = color.New(color.FgRed, color.Bold)
	warningMarker  = color.New(color.FgYellow)
	okMarker       = color.New(color.FgGreen)
)

// money formats a dollar amount with comma grouping, e.g. $1,234.56.
func money(v float64) string {
	if v < 0 {
		return "-$" + commaf(-v)
	}
	return "$" + commaf(v)
}

// PrintReportHeader prints the report banner with the generation time.
func PrintReportHeader(w io.Writer, generated time.Time) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, reportRule)
	fmt.Fprintln(w, "CLOUD COST OPTIMIZATION REPORT")
	fmt.Fprintln(w, reportRule)
	fmt.Fprintf(w, "Generated: %s\n", generated.Format("2006-01-02 15:04:05"))
}

// PrintBudgetAnalysis prints the budget summary section.
func PrintBudgetAnalysis(w io.Writer, analysis models.BudgetAnalysis) {
	fmt.Fprintln(w, "\nBUDGET ANALYSIS")
	fmt.Fprintln(w, sectionRule)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Monthly Budget:\t%s\n", money(analysis.Budget))
	fmt.Fprintf(tw, "Total Monthly Cost:\t%s\n", money(analysis.TotalCost))
	fmt.Fprintf(tw, "Running Cost:\t%s\n", money(analysis.RunningCost))
	fmt.Fprintf(tw, "Budget Remaining:\t%s\n", money(analysis.BudgetRemaining))
	fmt.Fprintf(tw, "Instances:\t%d running / %d total\n",
		analysis.RunningCount, analysis.TotalCount)
	tw.Flush()

	if analysis.IsOverBudget {
		overage := -analysis.BudgetRemaining
		fmt.Fprintf(w, "\n%s Over budget by %s\n",
			criticalMarker.Sprint("[CRITICAL]"), money(overage))
	} else {
		fmt.Fprintf(w, "\n%s Within budget\n", okMarker.Sprint("[OK]"))
	}
}

// PrintOptimizationResults prints the post-shutdown summary.
func PrintOptimizationResults(w io.Writer, shutdownCount int, savings float64) {
	fmt.Fprintln(w, "\nOPTIMIZATION ACTIONS TAKEN")
	fmt.Fprintln(w, sectionRule)
	fmt.Fprintf(w, "Shut down %d idle instance(s)\n", shutdownCount)
	fmt.Fprintf(w, "Monthly Savings: %s\n", money(savings))
	fmt.Fprintf(w, "Annual Savings:  %s\n", money(savings*12))
}

// PrintRecommendations prints the numbered recommendation list.
func PrintRecommendations(w io.Writer, recs []models.Recommendation) {
	fmt.Fprintln(w, "\nRECOMMENDATIONS")
	fmt.Fprintln(w, sectionRule)
	for i, rec := range recs {
		fmt.Fprintf(w, "%d. %s %s\n", i+1, levelMarker(rec.Level), rec.Message)
	}
}

// PrintReportFooter prints the closing banner.
func PrintReportFooter(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, reportRule)
	fmt.Fprintln(w, "Report complete")
	fmt.Fprintln(w, reportRule)
}

func levelMarker(level models.RecommendationLevel) string {
	tag := "[" + string(level) + "]"
	switch level {
	case models.LevelCritical:
		return criticalMarker.Sprint(tag)
	case models.LevelWarning:
		return warningMarker.Sprint(tag)
	case models.LevelOK:
		return okMarker.Sprint(tag)
	default:
		return tag
	}
}
