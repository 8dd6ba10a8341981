package components

// PositionComponent 实体在场景空间中的位置
// 藤壶的坐标位于生成体积内（默认单位立方体 [0,1)^3）
type PositionComponent struct {
	X, Y, Z float64
}

// WhaleComponent 标记实体为鲸鱼（藤壶的宿主）
// 宿主只是渲染用的锚点，不参与生命周期逻辑
type WhaleComponent struct {
	CenterX, CenterY float64 // 屏幕中心坐标（像素）
	RadiusX, RadiusY float64 // 椭圆半径（像素）
}
