package cli

import (
	"Socialboard/internal/pkg/util"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard stats",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	d := newDashboard()
	defer d.Close()

	st, err := loadState(cmd.Context(), d)
	if err != nil {
		return err
	}
	s := st.Dashboard

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total Followers\t%s\t%s\n", util.FormatNumber(float64(s.TotalFollowers)), util.FormatPercent(s.FollowerGrowthTrend))
	fmt.Fprintf(w, "Engagement Rate\t%.1f%%\t%s\n", s.EngagementRate, util.FormatPercent(s.EngagementTrend))
	fmt.Fprintf(w, "Total Reach\t%s\t%s\n", util.FormatNumber(float64(s.TotalReach)), util.FormatPercent(s.ReachTrend))
	fmt.Fprintf(w, "Total Posts\t%d\t%d this month\n", s.TotalPosts, s.PostsThisMonth)
	fmt.Fprintf(w, "Growth Rate\t%.1f%%\t\n", s.GrowthRate)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PLATFORM\tFOLLOWERS\tPOSTS\tAVG ENGAGEMENT\tREACH")
	for _, p := range st.Platforms {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			p.Platform,
			util.FormatNumber(float64(p.TotalFollowers)),
			p.TotalPosts,
			util.FormatNumber(p.AvgEngagement),
			util.FormatNumber(float64(p.TotalReach)),
		)
	}
	return w.Flush()
}
