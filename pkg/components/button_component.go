package components

import "image/color"

// MenuAction 菜单按钮触发的动作
type MenuAction int

const (
	MenuActionPlay     MenuAction = iota // 开始新游戏
	MenuActionSettings                   // 进入设置页
	MenuActionBack                       // 返回主菜单
	MenuActionQuit                       // 退出程序
	MenuActionToggle                     // 切换某个设置项
)

// ButtonComponent 按钮组件（ECS 架构）
// 按钮以纯色矩形绘制，颜色随交互状态变化
type ButtonComponent struct {
	// X, Y 左上角屏幕坐标
	X, Y float64
	// Width, Height 按钮尺寸（像素）
	Width, Height float64

	// Text 按钮上显示的文字
	Text string
	// TextColor 文字颜色
	TextColor color.RGBA

	// Action 按钮对应的菜单动作
	Action MenuAction
	// Selected 是否为当前选中的选项（设置页使用）
	Selected bool

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// OnClick 点击回调函数（释放鼠标时触发）
	OnClick func()
}
