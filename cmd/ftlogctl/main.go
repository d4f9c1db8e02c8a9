// ftlogctl 是文件输出端的维护命令行工具。
//
// 用法:
//
//	ftlogctl <命令> [命令参数]
//
// 命令:
//
//	prune          一次性执行过期文件清理扫描
//	next           打印指定周期的下一个轮转边界
//	name           打印输出端当下会打开的文件名
//	help           显示帮助信息
//
// prune 命令说明:
//
//	按基准路径与周期匹配候选文件，删除最后修改时间距今严格大于
//	--expire 的文件，逐行打印被删除的文件名。
//
//	注意：匹配只看文件名模式，任何名字符合模式的文件都会被删除，
//	与轮转器运行时的清理行为一致。
//
// 退出码:
//
//	0: 命令执行成功
//	2: 参数错误（未知周期、缺少必需参数、无效时区等）
//
// 示例:
//
//	ftlogctl prune --path ./current.log --rotate day --expire 168h
//	ftlogctl next --rotate month --timezone utc
//	ftlogctl name --path ./current.log --rotate minute --timezone "+08:00"
package main

import (
	"context"
	"fmt"
	"os"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	app := createApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return 0
}
