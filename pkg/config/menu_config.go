package config

// 菜单布局参数
// 按钮纵向排列，水平居中

const (
	// MenuButtonWidth 主菜单按钮宽度
	MenuButtonWidth = 250.0
	// MenuButtonHeight 主菜单按钮高度
	MenuButtonHeight = 65.0
	// MenuButtonMargin 按钮之间的间距
	MenuButtonMargin = 20.0
	// SettingsButtonWidth 设置页按钮宽度
	SettingsButtonWidth = 300.0
)

// SpawnIntervalOptions 设置页可选的生成间隔（秒）
var SpawnIntervalOptions = []float64{0.5, 1.0, 2.0}

// MenuButtonLayout 计算第 index 个按钮（共 count 个）的左上角坐标
// 按钮整体在屏幕中垂直居中
func MenuButtonLayout(index, count int, width float64) (float64, float64) {
	totalHeight := float64(count)*MenuButtonHeight + float64(count-1)*MenuButtonMargin
	startY := (float64(GameWindowHeight) - totalHeight) / 2
	x := (float64(GameWindowWidth) - width) / 2
	y := startY + float64(index)*(MenuButtonHeight+MenuButtonMargin)
	return x, y
}

// NextSpawnInterval 返回设置页中 current 之后的下一个生成间隔选项（循环）
// current 不在选项列表中时返回第一个选项
func NextSpawnInterval(current float64) float64 {
	for i, v := range SpawnIntervalOptions {
		if v == current {
			return SpawnIntervalOptions[(i+1)%len(SpawnIntervalOptions)]
		}
	}
	return SpawnIntervalOptions[0]
}
