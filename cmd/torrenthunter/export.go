package main

import (
	"fmt"

	"TorrentHunter/internal/models"

	"github.com/spf13/cobra"
)

var (
	exportCond   models.SearchCondition
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "导出本地数据库中的结果（csv/json）",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		output := exportOutput
		if output == "" {
			output = "torrents." + exportFormat
		}
		if err := app.Export(cmd.Context(), exportFormat, output, exportCond); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "已导出到 %s\n", output)
		return nil
	},
}

func init() {
	addConditionFlags(exportCmd, &exportCond)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "导出格式: csv, json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "输出文件路径（默认 torrents.<format>）")
	rootCmd.AddCommand(exportCmd)
}
