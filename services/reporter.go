package services

import (
	"fmt"
	"io"
	"strings"

	"airbnb-stats/models"
)

// PrintStatisticsReport writes the dashboard panel and the per-borough table to w
func PrintStatisticsReport(w io.Writer, view DashboardView, table *models.StatisticsTable) {
	border := strings.Repeat("═", 72)
	thin := strings.Repeat("─", 72)

	fmt.Fprintf(w, "\n╔%s╗\n", border)
	fmt.Fprintf(w, "║%s║\n", center("LONDON PROPERTY STATISTICS", 72))
	fmt.Fprintf(w, "╚%s╝\n", border)

	fmt.Fprintf(w, "\n PANEL\n%s\n", thin)
	fmt.Fprintf(w, "  Borough     : %s\n", view.Borough)
	if view.Range != nil {
		fmt.Fprintf(w, "  Price range : %s to %s\n", FormatPriceOption(view.Range.Min), FormatPriceOption(view.Range.Max))
	}
	for _, s := range view.Slots {
		fmt.Fprintf(w, "  [%d] %-50s %s\n", s.Slot+1, truncate(s.Name, 50)+":", s.Value)
	}

	if table != nil && len(table.Boroughs) > 0 {
		fmt.Fprintf(w, "\n BOROUGHS\n%s\n", thin)
		fmt.Fprintf(w, "  %-24s %6s %8s %6s %9s %9s %9s\n",
			"Borough", "Count", "AvgPrice", "Homes", "MinPriv", "MinShared", "AvgRev")
		for _, b := range table.Boroughs {
			s := table.Stats[b]
			if s.Count == 0 {
				continue
			}
			fmt.Fprintf(w, "  %-24s %6d %8d %6d %9s %9s %9d\n",
				truncate(b, 24), s.Count, s.AvgPrice, s.EntireHomes,
				formatMinPrice(s.MinPrivate, "-"), formatMinPrice(s.MinShared, "-"), s.AvgReviews)
		}
		fmt.Fprintf(w, "\n  Most expensive borough: %s\n", table.MostExpensive)
	}

	fmt.Fprintf(w, "\n%s\n\n", border)
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
