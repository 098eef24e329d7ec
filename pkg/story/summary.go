package story

import "fmt"

// SummaryRow 分组年收入统计
type SummaryRow struct {
	Group        string  `yaml:"group"`
	PayGap       float64 `yaml:"payGap"`       // 相对参照组的差距百分比
	AnnualSalary float64 `yaml:"annualSalary"` // 年收入中位数（美元）
	Ratio        float64 `yaml:"ratio"`        // 每 1 美元对应的收入
}

// SummaryConfig 引言卡片的统计配置
type SummaryConfig struct {
	Focus     string       `yaml:"focus"`     // 关注的分组，如 "Black Women"
	Reference string       `yaml:"reference"` // 参照分组，如 "White Men"
	Rows      []SummaryRow `yaml:"rows"`
}

// Summary 引言卡片上显示的三个数字
type Summary struct {
	Gap    string // 差距百分比，如 "36%"
	Annual string // 年收入差额，如 "$28K"
	Ratio  string // 每美元收入，如 "$0.64"
}

// ComputeSummary 计算引言统计
// 关注组或参照组缺失时返回 false，卡片不显示
func ComputeSummary(cfg SummaryConfig) (Summary, bool) {
	focus, ok := findRow(cfg.Rows, cfg.Focus)
	if !ok {
		return Summary{}, false
	}
	reference, ok := findRow(cfg.Rows, cfg.Reference)
	if !ok {
		return Summary{}, false
	}

	return Summary{
		Gap:    FormatPercent(focus.PayGap),
		Annual: FormatThousandsK(reference.AnnualSalary - focus.AnnualSalary),
		Ratio:  fmt.Sprintf("$%.2f", focus.Ratio),
	}, true
}

func findRow(rows []SummaryRow, group string) (SummaryRow, bool) {
	for _, r := range rows {
		if r.Group == group {
			return r, true
		}
	}
	return SummaryRow{}, false
}
