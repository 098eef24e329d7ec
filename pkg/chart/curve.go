package chart

import "math"

// Point 像素坐标点
type Point struct {
	X, Y float64
}

// Segment 三次贝塞尔曲线段
type Segment struct {
	P0, C1, C2, P1 Point
}

// At 曲线段在参数 t ∈ [0, 1] 处的点
func (s Segment) At(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*s.P0.X + b*s.C1.X + c*s.C2.X + d*s.P1.X,
		Y: a*s.P0.Y + b*s.C1.Y + c*s.C2.Y + d*s.P1.Y,
	}
}

// MonotoneX 单调三次插值（x 方向单调）
//
// 切线由相邻两段斜率的调和形式确定（Steffen 方法），
// 保证插值曲线在数据单调的区间内不会过冲。
// 少于 2 个点时返回 nil；2 个点时退化为直线段。
func MonotoneX(pts []Point) []Segment {
	n := len(pts)
	if n < 2 {
		return nil
	}
	if n == 2 {
		return []Segment{lineSegment(pts[0], pts[1])}
	}

	tangents := make([]float64, n)
	for i := 1; i < n-1; i++ {
		tangents[i] = slope3(pts[i-1], pts[i], pts[i+1])
	}
	tangents[0] = slope2(pts[0], pts[1], tangents[1])
	tangents[n-1] = slope2(pts[n-2], pts[n-1], tangents[n-2])

	segments := make([]Segment, 0, n-1)
	for i := 0; i < n-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		dx := (p1.X - p0.X) / 3
		segments = append(segments, Segment{
			P0: p0,
			C1: Point{X: p0.X + dx, Y: p0.Y + dx*tangents[i]},
			C2: Point{X: p1.X - dx, Y: p1.Y - dx*tangents[i+1]},
			P1: p1,
		})
	}
	return segments
}

// slope3 内部点的切线斜率
func slope3(p0, p1, p2 Point) float64 {
	h0 := p1.X - p0.X
	h1 := p2.X - p1.X
	if h0 == 0 || h1 == 0 {
		return 0
	}
	s0 := (p1.Y - p0.Y) / h0
	s1 := (p2.Y - p1.Y) / h1
	p := (s0*h1 + s1*h0) / (h0 + h1)
	t := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(t) {
		return 0
	}
	return t
}

// slope2 端点的切线斜率（由相邻内部点的切线推出）
func slope2(p0, p1 Point, t float64) float64 {
	h := p1.X - p0.X
	if h == 0 {
		return t
	}
	return (3*(p1.Y-p0.Y)/h - t) / 2
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func lineSegment(p0, p1 Point) Segment {
	return Segment{
		P0: p0,
		C1: Point{X: p0.X + (p1.X-p0.X)/3, Y: p0.Y + (p1.Y-p0.Y)/3},
		C2: Point{X: p0.X + 2*(p1.X-p0.X)/3, Y: p0.Y + 2*(p1.Y-p0.Y)/3},
		P1: p1,
	}
}

// Polyline 折线
type Polyline []Point

// Flatten 把曲线段展开为折线，每段采样 steps 次
func Flatten(segments []Segment, steps int) Polyline {
	if len(segments) == 0 {
		return nil
	}
	if steps < 1 {
		steps = 1
	}
	line := make(Polyline, 0, len(segments)*steps+1)
	line = append(line, segments[0].P0)
	for _, s := range segments {
		for i := 1; i <= steps; i++ {
			line = append(line, s.At(float64(i)/float64(steps)))
		}
	}
	return line
}

// Length 折线总长度
func (pl Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl); i++ {
		total += math.Hypot(pl[i].X-pl[i-1].X, pl[i].Y-pl[i-1].Y)
	}
	return total
}

// Prefix 沿折线截取前 length 长度的部分
// 相当于描边虚线偏移动画中已显示的部分
func (pl Polyline) Prefix(length float64) Polyline {
	if len(pl) == 0 || length <= 0 {
		return nil
	}
	out := Polyline{pl[0]}
	remaining := length
	for i := 1; i < len(pl); i++ {
		a, b := pl[i-1], pl[i]
		seg := math.Hypot(b.X-a.X, b.Y-a.Y)
		if seg >= remaining {
			if seg == 0 {
				out = append(out, b)
				return out
			}
			t := remaining / seg
			out = append(out, Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t})
			return out
		}
		out = append(out, b)
		remaining -= seg
	}
	return out
}
