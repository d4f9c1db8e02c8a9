// Package xrotate 提供日志文件轮转功能。
//
// Rotator 接口定义了轮转器的核心行为（Write/Flush/Close/Rotate），所有实现并发安全。
//
// # 当前实现
//
//   - [NewPeriodic]: 按日历周期（分钟/小时/天/月/年）轮转，支持过期文件自动清理
//   - [NewLumberjack]: 基于 lumberjack v2 的按大小轮转
//
// # 周期轮转的文件命名
//
// 周期轮转器按基准路径加时间戳片段派生实际文件名，时间戳形态由周期决定：
//
//	current-202210.log       // 按月
//	current-20221026.log     // 按天
//	current-20221026T13.log  // 按小时
//	current-20221026T1351.log // 按分钟
//	current-2022.log         // 按年
//	log-20221026T1353        // 基准路径无扩展名时直接追加
//
// 同一形态同时是过期清理的匹配谓词：命名与匹配永不分离。
//
// # 过期清理（注意）
//
// 清理按文件名模式匹配，不读取文件内容：任何名字符合模式的文件，
// 无论由谁创建，都可能被删除。若两个独立的轮转器共用同一文件主干和周期，
// 一方可能删除另一方的活动文件。本包不做跨实例协调，这是已知限制。
//
// # 时区
//
// 边界计算与文件命名默认使用本地时区，可通过 [WithLocation] 指定
// time.UTC 或 time.FixedZone 构造的固定偏移。边界计算不建模时区切换
// （如 DST），计算时刻的偏移被原样应用。
//
// # 内部错误上报
//
// 轮转器自身不使用日志库记录内部错误，避免作为日志输出目标时产生递归写入。
// 使用 [WithOnError] 与 [WithOnCleanup] 回调获取清理报告和被吞掉的非致命错误。
//
// # 扩展新实现
//
//  1. 创建新文件实现 Rotator 接口
//  2. 定义独立的 Config 和 Option
//  3. 提供独立的构造函数
//  4. 不修改 Rotator 接口
package xrotate
