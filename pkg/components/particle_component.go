// Package components 粒子场使用的纯数据组件
package components

import "github.com/VSrikar51/Pay-Gap-Scrolly/pkg/motion"

// ParticleComponent 单个粒子的运行时状态
//
// 每个粒子约代表 1 万美元的职业生涯收入。
// 位置、速度和不透明度保存在 Body 中，由 ParticleSystem 每帧推进；
// 分组不激活时 Body 保持不变。
//
// This is a pure data component following ECS principles - it contains no methods.
type ParticleComponent struct {
	// Body 位置 / 速度 / 不透明度（像素、像素每帧）
	Body motion.Body

	// Radius 绘制半径（像素）
	Radius float64

	// Group 所属分组下标（story.Group 在配置中的顺序）
	Group int
}

// ConvergingComponent 标记粒子处于收敛模式
// 粒子趋向画布上的吸引点 (width/2, height·anchorY)
type ConvergingComponent struct{}

// FallingComponent 标记粒子处于下落模式
// 只挂载在 fallAway 分组的损失粒子上
type FallingComponent struct {
	// Line 目标线位置（画布高度比例），越过后粒子逐渐淡出
	Line float64
}
