package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sybil-dashboard/dashboard"
	"sybil-dashboard/db"
	"sybil-dashboard/logger"
	"sybil-dashboard/models"
	"sybil-dashboard/repository"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the ranked cluster stake distribution",
	Long:  "Print ranked cluster summaries for a dataset file, or for the stored dataset when no file is given",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().String("file", "", "Dataset JSON document (defaults to the stored dataset)")
	summaryCmd.Flags().String("sort", string(dashboard.SortStake), "Sort key: stake, validator-count, ip, jito-validator-count, jito-stake, sfdp-participant-count")
	summaryCmd.Flags().Int("limit", 20, "Number of clusters to print, 0 for all")
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer logger.Logger.Sync()

	file, _ := cmd.Flags().GetString("file")
	sortFlag, _ := cmd.Flags().GetString("sort")
	limit, _ := cmd.Flags().GetInt("limit")

	key, err := dashboard.ParseSortKey(sortFlag)
	if err != nil {
		return err
	}

	var summaries []models.ClusterSummary
	if file != "" {
		ds, _, err := readFile(file)
		if err != nil {
			return err
		}
		summaries = dashboard.ClusterSummaries(ds, key)
	} else {
		ldb, err := db.NewLevelDB(cfg.LevelDB.Path)
		if err != nil {
			return err
		}
		defer ldb.Close()

		d := dashboard.NewDashboard(repository.NewSnapshotRepository(ldb))
		if err := d.Restore(); err != nil {
			return err
		}
		if summaries, _, err = d.Clusters(key); err != nil {
			return err
		}
	}

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tIPS\tSTAKE\tSHARE\tVALIDATORS\tSTAKED IDS\tJITO\tJITO STAKE\tSFDP\t")
	for i, s := range summaries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f%%\t%d\t%d\t%d\t%s\t%d\t\n",
			i+1, strings.Join(s.DisplayIPs, ", "), dashboard.FormatStake(s.StakeUi), s.StakePercent,
			s.ValidatorCount, s.StakedIdentityCount, s.JitoValidatorCount,
			dashboard.FormatStake(s.JitoStakeUi), s.SfdpParticipantCount)
	}
	return tw.Flush()
}
