package renderer

import (
	"fmt"
	"strings"

	"github.com/finbook/finbook"
)

// XIRRMarkdown renders the money-weighted return report to markdown.
func XIRRMarkdown(rep *finbook.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Return Report as of %s\n\n", rep.AsOf)

	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Invested | %s |\n", rep.Invested)
	fmt.Fprintf(&b, "| Total Withdrawn | %s |\n", rep.Withdrawn)
	fmt.Fprintf(&b, "| Net Invested | %s |\n", rep.NetInvested)
	fmt.Fprintf(&b, "| Current Value | %s |\n", rep.CurrentValue)
	fmt.Fprintf(&b, "| Total Gain | %s |\n", rep.Gain.SignedString())
	fmt.Fprintf(&b, "| Gain | %s |\n", rep.GainPercent.SignedString())
	fmt.Fprintf(&b, "| **XIRR (annualized)** | **%s** |\n", rep.Rate.SignedString())

	if rep.Residual >= finbook.XIRRTolerance {
		fmt.Fprintf(&b, "\nThe rate did not fully converge (NPV residual %.2g); treat it as approximate.\n", rep.Residual)
	}

	return b.String()
}
