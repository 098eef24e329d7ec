// Package motion 粒子运动规则
//
// 每个粒子在创建时确定一种运动模式（Converging 或 Falling），之后不再改变。
// 每种模式由一个纯函数推进一帧：输入当前状态和参数，返回下一帧状态。
//
// 所有数值以"每帧"为单位（位置单位为像素），与显示刷新同步推进。
package motion

import "math"

// Mode 运动模式
type Mode uint8

const (
	// Converging 以弹簧方式趋向吸引点，带速度阻尼
	Converging Mode = iota
	// Falling 受恒定重力下落，越过目标线后逐渐淡出
	Falling
)

// String 返回模式名称
func (m Mode) String() string {
	switch m {
	case Converging:
		return "converging"
	case Falling:
		return "falling"
	default:
		return "unknown"
	}
}

// Body 粒子运动状态
type Body struct {
	X, Y   float64 // 位置（像素）
	VX, VY float64 // 速度（像素/帧）
	Alpha  float64 // 不透明度 [0, 1]
}

// ConvergingProfile 收敛模式参数
type ConvergingProfile struct {
	Stiffness float64 `yaml:"stiffness"` // 弹簧系数 k，a = k·(target − position)
	Damping   float64 `yaml:"damping"`   // 每帧速度乘数
	DeadZone  float64 `yaml:"deadZone"`  // 距离小于该值时不再施加吸引力
}

// FallingProfile 下落模式参数
type FallingProfile struct {
	Gravity           float64 `yaml:"gravity"`           // 每帧竖直加速度
	VerticalDamping   float64 `yaml:"verticalDamping"`   // 每帧竖直速度乘数
	Jitter            float64 `yaml:"jitter"`            // 水平抖动幅度（抖动取值范围 [-Jitter/2, Jitter/2)）
	HorizontalDamping float64 `yaml:"horizontalDamping"` // 每帧水平速度乘数
	FadeRate          float64 `yaml:"fadeRate"`          // 越过目标线后每帧不透明度乘数
}

// DefaultConverging 默认收敛参数
func DefaultConverging() ConvergingProfile {
	return ConvergingProfile{Stiffness: 0.0005, Damping: 0.92, DeadZone: 5}
}

// DefaultFalling 默认下落参数
func DefaultFalling() FallingProfile {
	return FallingProfile{
		Gravity:           0.15,
		VerticalDamping:   0.98,
		Jitter:            0.1,
		HorizontalDamping: 0.95,
		FadeRate:          0.98,
	}
}

// StepConverging 收敛模式推进一帧
//
// 距离目标大于 DeadZone 时施加比例加速度，然后施加阻尼并积分位置。
// 没有终止状态，粒子在平衡点附近逐渐静止。
func StepConverging(b Body, targetX, targetY float64, p ConvergingProfile) Body {
	dx := targetX - b.X
	dy := targetY - b.Y
	if math.Hypot(dx, dy) > p.DeadZone {
		b.VX += dx * p.Stiffness
		b.VY += dy * p.Stiffness
	}

	b.VX *= p.Damping
	b.VY *= p.Damping

	b.X += b.VX
	b.Y += b.VY
	return b
}

// StepFalling 下落模式推进一帧
//
// 参数:
//   - b: 当前状态
//   - line: 目标线的 Y 坐标，越过后不透明度按 FadeRate 衰减
//   - p: 下落参数
//   - noise: [0, 1) 范围内的随机数，用于水平抖动
//
// 不透明度只会减小，不会回升。
func StepFalling(b Body, line float64, p FallingProfile, noise float64) Body {
	b.VY += p.Gravity
	b.VY *= p.VerticalDamping
	b.VX += (noise - 0.5) * p.Jitter
	b.VX *= p.HorizontalDamping

	b.Y += b.VY
	b.X += b.VX

	if b.Y > line {
		b.Alpha *= p.FadeRate
	}
	return b
}

// ClampX 把水平位置限制在 [0, width] 内（保持在画面中）
func ClampX(b Body, width float64) Body {
	if b.X < 0 {
		b.X = 0
	}
	if b.X > width {
		b.X = width
	}
	return b
}

// Distance 到目标点的距离
func Distance(b Body, targetX, targetY float64) float64 {
	return math.Hypot(targetX-b.X, targetY-b.Y)
}
