package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"TorrentHunter/config"
	"TorrentHunter/internal/core"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "配置文件相关操作",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "生成示例配置文件（已存在则跳过）",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(config.DefaultConfigDir(), "config.yaml")
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.CreateExampleConfig(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "显示当前生效的配置文件路径",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}
		path := config.GetConfigPath()
		if path == "" {
			path = "(未找到配置文件，使用默认值)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "列出已注册的平台",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		for _, name := range core.List() {
			p, err := app.GetPlatform(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tpaging=%t\tcategories=%s\n",
				name, p.Paging(), strings.Join(p.Categories(), ","))
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd, platformsCmd)
}
