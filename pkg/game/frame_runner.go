package game

import (
	"context"
	"fmt"
)

// ProgressFunc 无窗口运行时的进度回调
type ProgressFunc func(done, total int)

// FrameRunner 在没有窗口的情况下按固定步长推进若干帧
//
// 用于导出快照：粒子运动按帧定义，离线推进 N 帧与窗口中显示 N 帧的结果一致。
// 每帧之间检查 context，取消后立即停止。
type FrameRunner struct {
	target    Updater
	deltaTime float64
	progress  ProgressFunc
	frames    int
}

// NewFrameRunner 创建帧推进器
// tps 为每秒帧数，deltaTime = 1/tps
func NewFrameRunner(target Updater, tps int) *FrameRunner {
	if tps <= 0 {
		tps = 60
	}
	return &FrameRunner{target: target, deltaTime: 1 / float64(tps)}
}

// SetProgress 设置进度回调，回调在每帧之后调用
func (r *FrameRunner) SetProgress(fn ProgressFunc) {
	r.progress = fn
}

// Frames 已推进的帧数
func (r *FrameRunner) Frames() int {
	return r.frames
}

// Run 推进 frames 帧
//
// 返回:
//   - error: context 被取消时返回包装后的 ctx.Err()，已推进的帧不会回滚
func (r *FrameRunner) Run(ctx context.Context, frames int) error {
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("stopped after %d of %d frames: %w", i, frames, ctx.Err())
		default:
		}

		r.target.Update(r.deltaTime)
		r.frames++
		if r.progress != nil {
			r.progress(i+1, frames)
		}
	}
	return nil
}
