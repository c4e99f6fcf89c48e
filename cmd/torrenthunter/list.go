package main

import (
	"fmt"

	"TorrentHunter/internal/models"

	"github.com/spf13/cobra"
)

var listCond models.SearchCondition

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "列出本地数据库中的结果",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		torrents, total, err := app.List(cmd.Context(), listCond)
		if err != nil {
			return err
		}
		if err := printTorrents(cmd.OutOrStdout(), torrents); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "共 %d 条，显示 %d 条\n", total, len(torrents))
		return nil
	},
}

func addConditionFlags(cmd *cobra.Command, cond *models.SearchCondition) {
	cmd.Flags().StringSliceVar(&cond.Sources, "source", nil, "按平台过滤，可重复")
	cmd.Flags().StringVarP(&cond.Keyword, "keyword", "k", "", "标题关键词")
	cmd.Flags().IntVar(&cond.MinSeed, "min-seed", 0, "最少做种数")
	cmd.Flags().IntVarP(&cond.Limit, "limit", "n", 50, "最多返回条数（0 不限制）")
	cmd.Flags().IntVar(&cond.Offset, "offset", 0, "偏移量")
}

func init() {
	addConditionFlags(listCmd, &listCond)
	rootCmd.AddCommand(listCmd)
}
