package story

// Marker 叙事卡片在文档坐标中的位置
type Marker struct {
	ID     int     // 步骤编号（data-step）
	Top    float64 // 卡片顶部
	Height float64 // 卡片高度
}

// Contains 文档坐标 y 是否落在卡片内
func (m Marker) Contains(y float64) bool {
	return y >= m.Top && y < m.Top+m.Height
}

// ScrollTracker 根据滚动位置判断进入了哪个步骤
//
// 触发线位于视口高度的 offset 比例处（默认 0.5，即视口中线）。
// 触发线进入某张卡片时（向下或向上滚动均可）产生一次进入事件；
// 停留在同一张卡片内不会重复触发，离开后再次进入会再次触发。
// 一次更新跨过多张卡片时，只报告沿滚动方向最后进入的那一张。
type ScrollTracker struct {
	markers  []Marker
	viewport float64
	offset   float64
	scroll   float64
	inside   int // 触发线当前所在卡片的下标，-1 表示位于卡片之间

	lastTrigger float64 // 上一次更新时触发线的位置
	tracking    bool    // lastTrigger 是否有效
}

// NewScrollTracker 创建滚动跟踪器
// offset 超出 [0, 1] 时按 0.5 处理
func NewScrollTracker(offset float64) *ScrollTracker {
	if offset < 0 || offset > 1 {
		offset = 0.5
	}
	return &ScrollTracker{offset: offset, inside: -1}
}

// SetMarkers 更新卡片布局（窗口尺寸变化后调用）
//
// 重置当前所在卡片，下一次 SetScroll 会对触发线所在卡片重新产生进入事件。
// 由于步骤处理是幂等的，重复进入没有可观察的差异。
func (t *ScrollTracker) SetMarkers(markers []Marker, viewportHeight float64) {
	t.markers = append(t.markers[:0], markers...)
	t.viewport = viewportHeight
	t.inside = -1
	t.tracking = false
}

// SetScroll 更新滚动位置
//
// 返回:
//   - int: 进入的步骤编号
//   - bool: 本次更新是否进入了新的卡片
func (t *ScrollTracker) SetScroll(y float64) (int, bool) {
	prev, hadPrev := t.lastTrigger, t.tracking
	t.scroll = y
	trigger := t.TriggerY()
	t.lastTrigger, t.tracking = trigger, true

	if idx := t.indexAt(trigger); idx >= 0 {
		if idx == t.inside {
			return 0, false
		}
		t.inside = idx
		return t.markers[idx].ID, true
	}

	t.inside = -1
	if !hadPrev {
		return 0, false
	}
	if idx := t.lastCrossed(prev, trigger); idx >= 0 {
		return t.markers[idx].ID, true
	}
	return 0, false
}

// indexAt 包含 y 的卡片下标，没有则为 -1
func (t *ScrollTracker) indexAt(y float64) int {
	for i, m := range t.markers {
		if m.Contains(y) {
			return i
		}
	}
	return -1
}

// lastCrossed 触发线从 from 移动到 to 的过程中，沿移动方向最后进入的卡片
//
// 向下移动时从卡片顶部进入，向上移动时从卡片底部进入；
// 出发时所在的卡片不算进入。没有则返回 -1。
func (t *ScrollTracker) lastCrossed(from, to float64) int {
	best := -1
	for i, m := range t.markers {
		bottom := m.Top + m.Height
		switch {
		case to > from:
			if m.Top > from && m.Top <= to && (best < 0 || m.Top > t.markers[best].Top) {
				best = i
			}
		case to < from:
			if bottom <= from && bottom > to && (best < 0 || bottom < t.markers[best].Top+t.markers[best].Height) {
				best = i
			}
		}
	}
	return best
}

// Scroll 当前滚动位置
func (t *ScrollTracker) Scroll() float64 {
	return t.scroll
}

// TriggerY 触发线在文档坐标中的位置
func (t *ScrollTracker) TriggerY() float64 {
	return t.scroll + t.viewport*t.offset
}

// Current 触发线当前所在的卡片
func (t *ScrollTracker) Current() (Marker, bool) {
	if t.inside < 0 || t.inside >= len(t.markers) {
		return Marker{}, false
	}
	return t.markers[t.inside], true
}
