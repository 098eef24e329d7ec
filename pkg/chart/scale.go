// Package chart 折线图的几何计算
//
// 包括线性比例尺与刻度、单调三次曲线插值、折线长度与前缀截取，
// 以及完整的图表布局（Layout）。本包不依赖 Ebitengine，
// 同一份布局既用于窗口内绘制，也用于导出 SVG。
package chart

import (
	"math"
)

// LinearScale 把数据域 [D0, D1] 线性映射到像素范围 [R0, R1]
type LinearScale struct {
	D0, D1 float64 // 数据域
	R0, R1 float64 // 像素范围
}

// Map 数据值到像素
func (s LinearScale) Map(v float64) float64 {
	if s.D1 == s.D0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (v-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}

// Invert 像素到数据值
func (s LinearScale) Invert(px float64) float64 {
	if s.R1 == s.R0 {
		return (s.D0 + s.D1) / 2
	}
	return s.D0 + (px-s.R0)/(s.R1-s.R0)*(s.D1-s.D0)
}

// Ticks 生成约 count 个"整齐"的刻度值（步长为 1、2、5 乘以 10 的幂）
func (s LinearScale) Ticks(count int) []float64 {
	start, stop := s.D0, s.D1
	if start > stop {
		start, stop = stop, start
	}
	if count <= 0 || start == stop {
		return []float64{start}
	}

	step := tickStep(start, stop, count)
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return nil
	}

	first := math.Ceil(start / step)
	last := math.Floor(stop / step)
	ticks := make([]float64, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		// 用乘法而不是累加，避免浮点误差积累
		ticks = append(ticks, roundTo(i*step, step))
	}
	return ticks
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickStep 计算刻度步长
func tickStep(start, stop float64, count int) float64 {
	raw := (stop - start) / float64(count)
	power := math.Floor(math.Log10(raw))
	base := math.Pow(10, power)
	errRatio := raw / base

	switch {
	case errRatio >= e10:
		base *= 10
	case errRatio >= e5:
		base *= 5
	case errRatio >= e2:
		base *= 2
	}
	return base
}

// roundTo 按步长的精度四舍五入，消除 0.30000000000000004 之类的误差
func roundTo(v, step float64) float64 {
	if step >= 1 {
		return math.Round(v)
	}
	digits := math.Ceil(-math.Log10(step))
	p := math.Pow(10, digits)
	return math.Round(v*p) / p
}
