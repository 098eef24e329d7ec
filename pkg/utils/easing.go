package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 与 Progress 配合使用：先算出归一化进度，再套用缓动曲线。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
// 折线描边动画使用线性缓动
func EaseLinear(t float64) float64 {
	return t
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢（折线换色、数据点弹出、注释淡入）
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Progress 带延迟的动画进度
//
// 参数:
//   - elapsed: 动画开始后经过的时间（秒）
//   - delay: 延迟时间（秒）
//   - duration: 持续时间（秒），<= 0 时立即完成
//
// 返回 [0, 1] 范围内的进度，延迟期间为 0。
func Progress(elapsed, delay, duration float64) float64 {
	if elapsed < delay {
		return 0
	}
	if duration <= 0 {
		return 1
	}
	return Clamp01((elapsed - delay) / duration)
}
