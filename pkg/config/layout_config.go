package config

// 布局配置常量
// 本文件定义了窗口尺寸以及游戏场景中鲸鱼、HUD 的布局参数

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800
	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// WhaleCenterX 鲸鱼身体中心X坐标（屏幕坐标）
	WhaleCenterX = 400.0
	// WhaleCenterY 鲸鱼身体中心Y坐标，略高于屏幕中心，给 HUD 留出空间
	WhaleCenterY = 280.0
	// WhaleRadiusX 鲸鱼身体椭圆的水平半径
	WhaleRadiusX = 260.0
	// WhaleRadiusY 鲸鱼身体椭圆的垂直半径
	WhaleRadiusY = 120.0

	// BarnacleRadius 藤壶绘制半径（像素），同时作为点击拾取半径
	BarnacleRadius = 9.0

	// HUDMarginPercent HUD 文字距屏幕边缘的比例（5%）
	HUDMarginPercent = 0.05
)

// ProjectToScreen 将生成体积内的坐标投影到鲸鱼区域的屏幕坐标
//
// 投影是一个简单的斜二测：X 映射到身体宽度，Y 映射到身体高度，
// Z 产生一点纵深偏移，让背面的藤壶稍稍抬高。
// 参数 (x, y, z) 应位于 [0,1)^3；越界的值会被线性外推。
func ProjectToScreen(x, y, z float64) (float64, float64) {
	screenX := WhaleCenterX + (x-0.5)*WhaleRadiusX*1.2 + (z-0.5)*WhaleRadiusX*0.1
	screenY := WhaleCenterY - (y-0.5)*WhaleRadiusY*0.9 - (z-0.5)*WhaleRadiusY*0.15
	return screenX, screenY
}
