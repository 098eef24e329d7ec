package utils

// Debouncer 帧时间驱动的去抖器
//
// 每次 Trigger 都会重新开始计时，计时结束后 Update 返回 true 一次，
// 携带的是最后一次 Trigger 的值（last call wins）。
// 所有方法都在游戏循环中调用，不需要加锁。
type Debouncer[T any] struct {
	delay   float64
	elapsed float64
	pending bool
	value   T
}

// NewDebouncer 创建去抖器，delay 单位为秒
func NewDebouncer[T any](delay float64) *Debouncer[T] {
	return &Debouncer[T]{delay: delay}
}

// Trigger 记录一次调用并重新计时
func (d *Debouncer[T]) Trigger(v T) {
	d.value = v
	d.elapsed = 0
	d.pending = true
}

// Pending 是否有尚未触发的调用
func (d *Debouncer[T]) Pending() bool {
	return d.pending
}

// Update 推进计时
// 返回:
//   - T: 最后一次 Trigger 的值
//   - bool: 本帧是否触发
func (d *Debouncer[T]) Update(deltaTime float64) (T, bool) {
	if !d.pending {
		var zero T
		return zero, false
	}
	d.elapsed += deltaTime
	if d.elapsed+1e-9 < d.delay {
		var zero T
		return zero, false
	}
	d.pending = false
	return d.value, true
}
