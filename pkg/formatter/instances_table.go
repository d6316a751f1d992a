package formatter

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"costopt/internal/models"
)

const (
	instanceHeader = "NAME\tINSTANCE ID\tTYPE\tSTATUS\tCOST/MO\tCPU %\tOWNER\tENVIRONMENT"
	instanceFormat = "%s\t%s\t%s\t%s\t%s\t%.1f\t%s\t%s\n"

	idleHeader = "NAME\tINSTANCE ID\tTYPE\tCPU %\tCOST/MO\tENVIRONMENT"
	idleFormat = "%s\t%s\t%s\t%.1f\t%s\t%s\n"
)

// PrintExpensiveInstances prints the instances above the cost threshold,
// most expensive first.
func PrintExpensiveInstances(w io.Writer, instances []*models.Instance, costThreshold float64) {
	if len(instances) == 0 {
		fmt.Fprintln(w, "\nNo instances exceed the cost threshold.")
		return
	}

	fmt.Fprintf(w, "\nEXPENSIVE INSTANCES (>%s/month)\n", money(costThreshold))
	fmt.Fprintln(w, sectionRule)

	sorted := make([]*models.Instance, len(instances))
	copy(sorted, instances)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MonthlyCost > sorted[j].MonthlyCost
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, instanceHeader)
	for _, inst := range sorted {
		fmt.Fprintf(tw, instanceFormat,
			instanceName(inst.Name),
			inst.InstanceID,
			inst.Type,
			inst.Status,
			money(inst.MonthlyCost),
			inst.CPUUsage,
			inst.Owner,
			inst.Environment,
		)
	}
	tw.Flush()
}

// PrintIdleInstances prints the idle instances in document order with the
// aggregate monthly cost they could reclaim.
func PrintIdleInstances(w io.Writer, instances []*models.Instance, idleThreshold float64) {
	if len(instances) == 0 {
		fmt.Fprintln(w, "\nNo idle instances detected.")
		return
	}

	fmt.Fprintf(w, "\nIDLE INSTANCES (CPU < %.1f%%, status: running)\n", idleThreshold)
	fmt.Fprintln(w, sectionRule)

	var potentialSavings float64
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, idleHeader)
	for _, inst := range instances {
		potentialSavings += inst.MonthlyCost
		fmt.Fprintf(tw, idleFormat,
			instanceName(inst.Name),
			inst.InstanceID,
			inst.Type,
			inst.CPUUsage,
			money(inst.MonthlyCost),
			inst.Environment,
		)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nPotential monthly savings: %s\n", money(potentialSavings))
}

// instanceName returns a placeholder for unnamed instances.
func instanceName(name string) string {
	if name == "" {
		return "<unnamed>"
	}
	return name
}
