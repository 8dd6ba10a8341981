package components

// BarnacleStatus 藤壶的生命周期状态
//
// 正常演化只允许 Attaching → Attached；
// 点击可以从任意状态强制进入 Gone，Gone 是终止状态。
type BarnacleStatus int

const (
	BarnacleAttaching BarnacleStatus = iota // 正在附着（初始状态）
	BarnacleAttached                        // 已附着
	BarnacleGone                            // 已移除（终止）
)

// String 返回状态名称（用于日志与调试输出）
func (s BarnacleStatus) String() string {
	switch s {
	case BarnacleAttaching:
		return "Attaching"
	case BarnacleAttached:
		return "Attached"
	case BarnacleGone:
		return "Gone"
	default:
		return "Unknown"
	}
}

// BarnacleComponent 标记实体为藤壶，并存储其生命周期状态
type BarnacleComponent struct {
	Status BarnacleStatus // 当前状态

	// AttachingTimer 短周期重复计时器，驱动附着期间的材质轮换
	AttachingTimer *TimerComponent
	// AttachedTimer 一次性计时器，到期后 Attaching → Attached
	AttachedTimer *TimerComponent

	// MaterialIndex 材质轮换索引 = AttachingTimer.TimesFinished mod MaterialCycle
	// 仅供渲染使用，不影响状态
	MaterialIndex int
	// MaterialCycle 材质轮换的材质数量
	MaterialCycle int
}

// IsGone 是否已进入终止状态
func (b *BarnacleComponent) IsGone() bool {
	return b.Status == BarnacleGone
}
