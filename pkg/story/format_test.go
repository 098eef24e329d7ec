package story

import "testing"

// TestFormatters 测试显示文本格式化
func TestFormatters(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"基线百万", FormatMillions(3889600), "$3.89M"},
		{"不足一百万", FormatMillions(900640), "$0.90M"},
		{"损失标签", FormatLoss(2040480), "-$2.04M Lost"},
		{"百分比小数", FormatPercent(62.3), "62.3%"},
		{"百分比整数", FormatPercent(75), "75%"},
		{"千美元四舍五入", FormatThousandsK(27518), "$28K"},
		{"千位分隔符", FormatDollars(3889600), "$3,889,600"},
		{"计数", FormatCount(1301), "1,301"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("得到 %q, 期望 %q", tt.got, tt.want)
			}
		})
	}
}

// TestComputeSummary 测试引言统计
func TestComputeSummary(t *testing.T) {
	cfg := SummaryConfig{
		Focus:     "Black Women",
		Reference: "White Men",
		Rows: []SummaryRow{
			{Group: "White Men", PayGap: 0, AnnualSalary: 76440, Ratio: 1.0},
			{Group: "Black Women", PayGap: 36, AnnualSalary: 48922, Ratio: 0.64},
		},
	}

	s, ok := ComputeSummary(cfg)
	if !ok {
		t.Fatal("两组数据齐全时应返回统计")
	}
	if s.Gap != "36%" || s.Annual != "$28K" || s.Ratio != "$0.64" {
		t.Errorf("ComputeSummary = %+v", s)
	}

	cfg.Reference = "Nobody"
	if _, ok := ComputeSummary(cfg); ok {
		t.Error("参照组缺失时不应返回统计")
	}
}
