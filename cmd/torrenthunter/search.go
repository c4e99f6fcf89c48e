package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"TorrentHunter/internal/models"
	"TorrentHunter/internal/platform"
	"TorrentHunter/internal/platform/torrentz"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	searchPlatform string
	searchPage     int
	searchPages    int
	searchLimit    int
	searchSave     bool
)

var searchCmd = &cobra.Command{
	Use:   "search <keywords...>",
	Short: "在指定平台搜索种子",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, cfg, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if searchPages > 0 && searchPlatform == torrentz.Name {
			cfg.Torrentz.MaxPages = searchPages
			if err := cfg.Torrentz.Validate(); err != nil {
				return err
			}
		}

		q := platform.Query{Keywords: args, Page: searchPage, Limit: searchLimit}

		if searchSave {
			n, err := app.Crawl(cmd.Context(), searchPlatform, q)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已保存 %d 条结果\n", n)
			return nil
		}

		res, err := app.Search(cmd.Context(), searchPlatform, q)
		if err != nil {
			return err
		}
		return printTorrents(cmd.OutOrStdout(), res.Torrents)
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchPlatform, "platform", "p", torrentz.Name, "平台名称")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "起始页码（从 1 开始）")
	searchCmd.Flags().IntVar(&searchPages, "pages", 0, "最多翻页数（0 使用配置文件）")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "最多返回条数（0 不限制）")
	searchCmd.Flags().BoolVar(&searchSave, "save", false, "保存结果到本地数据库")
	rootCmd.AddCommand(searchCmd)
}

// printTorrents 缺失字段显示为 "-"
func printTorrents(out io.Writer, torrents []*models.Torrent) error {
	if len(torrents) == 0 {
		_, err := fmt.Fprintln(out, "没有找到结果")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tSIZE\tSEED\tLEECH\tPUBLISHED\tMAGNET")
	for i, t := range torrents {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, t.Title, formatSize(t.FileSize), formatCount(t.Seed), formatCount(t.Leech),
			formatPublished(t), formatMagnet(t))
	}
	return w.Flush()
}

func formatSize(v *int64) string {
	if v == nil {
		return "-"
	}
	return humanize.IBytes(uint64(*v))
}

func formatCount(v *int) string {
	if v == nil {
		return "-"
	}
	return humanize.Comma(int64(*v))
}

func formatPublished(t *models.Torrent) string {
	if t.PublishedDate == nil {
		return "-"
	}
	return humanize.Time(*t.PublishedDate)
}

func formatMagnet(t *models.Torrent) string {
	if !t.HasMagnet() {
		return "-"
	}
	return *t.MagnetLink
}

