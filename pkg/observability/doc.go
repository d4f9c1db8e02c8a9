// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xrotate: 日志文件轮转与过期清理
//
// 设计原则：
//   - 轮转器只负责字节落盘，不关心日志格式
//   - 故障通过回调上报，避免在日志路径上递归记日志
package observability
