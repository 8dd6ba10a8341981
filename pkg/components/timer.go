package components

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDuration 计时器配置了非正数时长
// 这类计时器永远无法给出确定的触发语义，必须在构造时直接失败
var ErrInvalidDuration = errors.New("timer duration must be positive")

// TimerComponent 通用边沿触发计时器
// 用于处理需要时间间隔的行为（如生成周期、附着倒计时）
//
// 不变量：
//   - JustFinished 只在 Elapsed 跨过 Duration 的那一次 Tick 中为 true
//   - 重复计时器触发后 Elapsed 对 Duration 取模，落后的周期直接丢弃
//   - 一次性计时器触发后停在 Duration，之后不再触发
type TimerComponent struct {
	Name          string  // 计时器名称，如 "barnacle_attached"
	Duration      float64 // 目标时长（秒）
	Elapsed       float64 // 当前已过时间（秒）
	Repeating     bool    // 是否为重复计时器
	JustFinished  bool    // 本次 Tick 是否刚好触发
	TimesFinished uint64  // 累计触发次数
	Finished      bool    // 一次性计时器是否已经触发过
}

// NewTimerComponent 创建计时器
// duration 必须为正数，否则返回 ErrInvalidDuration
func NewTimerComponent(name string, duration float64, repeating bool) (*TimerComponent, error) {
	if !(duration > 0) {
		return nil, fmt.Errorf("timer %q: %w (got %v)", name, ErrInvalidDuration, duration)
	}
	return &TimerComponent{
		Name:      name,
		Duration:  duration,
		Repeating: repeating,
	}, nil
}

// Tick 推进计时器 delta 秒并重新计算 JustFinished
// 每次调用最多报告一次触发，即使 delta 跨越了多个周期
func (t *TimerComponent) Tick(delta float64) {
	t.JustFinished = false

	// 一次性计时器触发后保持暂停
	if t.Finished {
		return
	}
	if delta > 0 {
		t.Elapsed += delta
	}
	if t.Elapsed < t.Duration {
		return
	}

	t.JustFinished = true
	t.TimesFinished++
	if t.Repeating {
		t.Elapsed = math.Mod(t.Elapsed, t.Duration)
		return
	}
	t.Elapsed = t.Duration
	t.Finished = true
}

// Reset 将计时器恢复到初始状态
func (t *TimerComponent) Reset() {
	t.Elapsed = 0
	t.JustFinished = false
	t.TimesFinished = 0
	t.Finished = false
}
