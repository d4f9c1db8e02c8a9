package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cholcombe973/ftlog/pkg/config/xconf"
	"github.com/cholcombe973/ftlog/pkg/observability/xrotate"
	"github.com/urfave/cli/v3"
)

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "ftlogctl",
		Usage:          "文件输出端维护工具",
		Version:        fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Commands:       createCommands(),
		DefaultCommand: "help",
	}
}

// createCommands 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createPruneCommand(),
		createNextCommand(),
		createNameCommand(),
	}
}

// createPruneCommand 创建 prune 子命令（一次性过期清理）。
func createPruneCommand() *cli.Command {
	return &cli.Command{
		Name:  "prune",
		Usage: "按命名模式删除过期的轮转文件",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "path",
				Aliases:  []string{"p"},
				Usage:    "基准文件路径",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "rotate",
				Aliases:  []string{"r"},
				Usage:    "轮转周期 (minute|hour|day|month|year)",
				Required: true,
			},
			&cli.DurationFlag{
				Name:     "expire",
				Aliases:  []string{"e"},
				Usage:    "过期阈值（最后修改时间距今严格大于该时长的文件被删除）",
				Required: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdPrune(cmd.Writer, cmd.String("path"), cmd.String("rotate"), cmd.Duration("expire"))
		},
	}
}

// createNextCommand 创建 next 子命令（打印下一个轮转边界）。
func createNextCommand() *cli.Command {
	return &cli.Command{
		Name:  "next",
		Usage: "打印指定周期的下一个轮转边界",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rotate",
				Aliases:  []string{"r"},
				Usage:    "轮转周期 (minute|hour|day|month|year)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "timezone",
				Aliases: []string{"z"},
				Usage:   "时区 (local|utc|±HH:MM)",
				Value:   "local",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdNext(cmd.Writer, cmd.String("rotate"), cmd.String("timezone"))
		},
	}
}

// createNameCommand 创建 name 子命令（打印当下会打开的文件名）。
func createNameCommand() *cli.Command {
	return &cli.Command{
		Name:  "name",
		Usage: "打印输出端当下会打开的文件名",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "path",
				Aliases:  []string{"p"},
				Usage:    "基准文件路径",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "rotate",
				Aliases:  []string{"r"},
				Usage:    "轮转周期 (minute|hour|day|month|year)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "timezone",
				Aliases: []string{"z"},
				Usage:   "时区 (local|utc|±HH:MM)",
				Value:   "local",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdName(cmd.Writer, cmd.String("path"), cmd.String("rotate"), cmd.String("timezone"))
		},
	}
}

// cmdPrune 执行一次过期清理扫描并打印结果。
func cmdPrune(w io.Writer, path, rotate string, expire time.Duration) error {
	period, err := xrotate.ParsePeriod(rotate)
	if err != nil {
		return err
	}
	removed := xrotate.CleanExpired(path, period, expire)
	if len(removed) == 0 {
		fmt.Fprintln(w, "nothing to prune")
		return nil
	}
	fmt.Fprintln(w, strings.Join(removed, "\n"))
	fmt.Fprintf(w, "pruned %d file(s)\n", len(removed))
	return nil
}

// cmdNext 打印下一个轮转边界。
func cmdNext(w io.Writer, rotate, timezone string) error {
	period, err := xrotate.ParsePeriod(rotate)
	if err != nil {
		return err
	}
	loc, err := xconf.ParseTimezone(timezone)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, xrotate.NextBoundary(time.Now().In(loc), period).Format(time.RFC3339))
	return nil
}

// cmdName 打印当下会打开的文件名。
func cmdName(w io.Writer, path, rotate, timezone string) error {
	period, err := xrotate.ParsePeriod(rotate)
	if err != nil {
		return err
	}
	loc, err := xconf.ParseTimezone(timezone)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, xrotate.RotatedPath(path, period, time.Now().In(loc)))
	return nil
}
