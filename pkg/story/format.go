package story

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatMillions 以百万美元显示金额，如 3889600 -> "$3.89M"
func FormatMillions(amount float64) string {
	return fmt.Sprintf("$%.2fM", amount/1_000_000)
}

// FormatLoss 分组标签中的损失文本，如 900640 -> "-$0.90M Lost"
func FormatLoss(loss float64) string {
	return "-" + FormatMillions(loss) + " Lost"
}

// FormatPercent 百分比文本，保留原始精度，如 62.3 -> "62.3%"、75 -> "75%"
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// FormatThousandsK 以千美元显示金额（四舍五入），如 27518 -> "$28K"
func FormatThousandsK(amount float64) string {
	return fmt.Sprintf("$%dK", int64(math.Round(amount/1000)))
}

// FormatDollars 带千位分隔符的整数金额，如 3889600 -> "$3,889,600"
func FormatDollars(amount float64) string {
	return "$" + humanize.Comma(int64(math.Round(amount)))
}

// FormatCount 带千位分隔符的计数，如 1301 -> "1,301"
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
