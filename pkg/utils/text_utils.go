package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 测量一行文本的像素宽度
type MeasureFunc func(s string) float64

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	if font == nil {
		return []string{textStr}
	}
	return WrapWords(textStr, func(s string) float64 { return text.Advance(s, font) }, maxWidth)
}

// WrapWords 按单词换行
//
// 换行规则:
//   - 在空白处断行，连续空白折叠为一个空格
//   - 单个单词超过最大宽度时独占一行，不拆分单词
//   - 空文本返回一个空行
func WrapWords(textStr string, measure MeasureFunc, maxWidth float64) []string {
	words := strings.Fields(textStr)
	if len(words) == 0 || measure == nil || maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	currentLine := words[0]
	for _, w := range words[1:] {
		testLine := currentLine + " " + w
		if measure(testLine) > maxWidth {
			lines = append(lines, currentLine)
			currentLine = w
			continue
		}
		currentLine = testLine
	}
	return append(lines, currentLine)
}
