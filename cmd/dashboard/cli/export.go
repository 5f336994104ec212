package cli

import (
	"Socialboard/internal/client"
	"Socialboard/internal/model"
	"Socialboard/internal/pkg/export"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	exportTable    string
	exportOut      string
	exportPlatform string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export posts or follower records as CSV",
	Long: `Export the current posts or follower records as CSV.

Examples:
  dashboard export --table posts
  dashboard export --table followers --platform twitter --out -`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportTable, "table", "posts", "Table to export (posts or followers)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file, - for stdout (default: dated file name)")
	exportCmd.Flags().StringVar(&exportPlatform, "platform", "", "Only export one platform")
}

func runExport(cmd *cobra.Command, args []string) error {
	table, err := export.ParseTable(exportTable)
	if err != nil {
		return err
	}
	platform := model.Platform(exportPlatform)
	if platform != "" && !platform.Valid() {
		return fmt.Errorf("unknown platform %q", exportPlatform)
	}

	d := newDashboard()
	defer d.Close()
	st, err := loadState(cmd.Context(), d)
	if err != nil {
		return err
	}

	var csv string
	if table == export.TablePosts {
		csv, err = export.PostsCSV(client.FilterPosts(st.Posts, platform))
	} else {
		csv, err = export.FollowersCSV(client.FilterFollowers(st.Followers, platform))
	}
	if err != nil {
		return err
	}
	if csv == "" {
		fmt.Fprintln(os.Stderr, "Nothing to export")
		return nil
	}

	if exportOut == "-" {
		_, err = fmt.Fprintln(os.Stdout, csv)
		return err
	}
	out := exportOut
	if out == "" {
		out = export.FileName(table, time.Now())
	}
	if err = os.WriteFile(out, []byte(csv), 0644); err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", out)
	return nil
}
