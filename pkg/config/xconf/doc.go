// Package xconf 提供文件输出端的配置加载，基于 koanf 实现。
//
// # 设计理念
//
// xconf 定位为最小化配置加载器：把 YAML/JSON 配置映射为 [SinkConfig]，
// 再由 [SinkConfig.Build] 解析为具体的轮转器构造。
// 不负责配置治理（环境变量覆盖、热重载），这些能力由上层业务框架按需实现。
//
// # 配置面
//
//	sink:
//	  path: /var/log/app/current.log   # 必填，基准文件路径
//	  rotate: day                      # 可选，minute|hour|day|month|year，缺省不轮转
//	  expire: 168h                     # 可选，Go duration，仅与 rotate 搭配有意义
//	  timezone: local                  # 可选，local | utc | 固定偏移如 "+08:00"
//
// 顶层没有 "sink" 键时，按根节点解析相同字段。
//
// # 支持的格式
//
//   - YAML（默认，推荐）：.yaml, .yml
//   - JSON：.json
//
// # 字段解析
//
// 反序列化使用 mapstructure（koanf 默认），expire 这类时长字段接受
// Go duration 字符串（如 "168h"、"30m"）。rotate 与 timezone 的取值
// 校验发生在 [SinkConfig.Build]/[ParseTimezone]，错误支持 [errors.Is]。
package xconf
