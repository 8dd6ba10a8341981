package components

import "github.com/decker502/barnacles/pkg/ecs"

// InteractionKind 指针交互事件类型
type InteractionKind int

const (
	InteractionSelection InteractionKind = iota // 选中目标变化（仅观测）
	InteractionHover                            // 悬停（仅观测）
	InteractionClicked                          // 点击，强制目标进入 Gone
)

// String 返回事件类型名称
func (k InteractionKind) String() string {
	switch k {
	case InteractionSelection:
		return "Selection"
	case InteractionHover:
		return "Hover"
	case InteractionClicked:
		return "Clicked"
	default:
		return "Unknown"
	}
}

// InteractionEvent 外部输入源产生的交互事件
type InteractionEvent struct {
	Kind   InteractionKind
	Target ecs.EntityID
}
