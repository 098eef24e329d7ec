package config

// 布局配置常量
// 本文件定义了窗口的分栏和叙事卡片的排版参数
//
// 窗口分为左侧叙事栏（可滚动）和右侧图形面板（固定，相当于网页中的 sticky 元素）。
// 叙事栏使用"文档坐标系"：原点在叙事内容顶部，随滚动整体上移。
const (
	// DefaultWindowWidth 默认窗口宽度
	DefaultWindowWidth = 1280

	// DefaultWindowHeight 默认窗口高度
	DefaultWindowHeight = 720

	// MinPanelSize 图形面板的最小边长，窗口更小时按该尺寸布局
	MinPanelSize = 200
)

// Narrative Column (叙事栏)
const (
	// NarrativeWidthRatio 叙事栏占窗口宽度的比例
	NarrativeWidthRatio = 0.38

	// NarrativePadding 叙事栏内边距
	NarrativePadding = 24.0

	// CardGap 卡片之间的间距（相对视口高度的比例）
	// 卡片间距足够大，触发线每次只落在一张卡片上
	CardGap = 0.6

	// CardPadding 卡片内边距
	CardPadding = 18.0

	// CardTitleSize 卡片标题字号
	CardTitleSize = 20.0

	// CardBodySize 卡片正文字号
	CardBodySize = 15.0

	// CardLineHeight 正文行高倍数
	CardLineHeight = 1.45

	// IntroHeightRatio 开头标题区占视口高度的比例
	IntroHeightRatio = 0.9

	// OutroHeightRatio 结尾留白占视口高度的比例，保证最后一张卡片能滚到触发线
	OutroHeightRatio = 0.8
)

// Scrolling (滚动)
const (
	// WheelStep 鼠标滚轮每格滚动的像素
	WheelStep = 60.0

	// ArrowStep 方向键每帧滚动的像素（按住持续滚动）
	ArrowStep = 12.0

	// PageRatio PageUp / PageDown 滚动的视口比例
	PageRatio = 0.9

	// ScrollSmoothing 平滑滚动的每帧趋近比例
	ScrollSmoothing = 0.25
)

// Particle Canvas (粒子画布)
const (
	// CanvasBackground 粒子画布背景色
	CanvasBackground = "#1a1a2e"

	// BaselineCardWidth 顶部基线卡片宽度
	BaselineCardWidth = 300.0

	// BaselineCardHeight 顶部基线卡片高度
	BaselineCardHeight = 50.0

	// BaselineCardTop 顶部基线卡片的 Y 坐标
	BaselineCardTop = 20.0

	// GroupLabelWidth 分组损失标签宽度
	GroupLabelWidth = 200.0

	// GroupLabelHeight 分组损失标签高度
	GroupLabelHeight = 50.0

	// GroupLabelLeft 分组损失标签的 X 坐标
	GroupLabelLeft = 20.0
)
