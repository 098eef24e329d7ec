package story

// Step 叙事卡片
//
// ID 与页面上的 data-step 一致，由 Coordinator.HandleStep 解释。
type Step struct {
	ID    int    `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}
