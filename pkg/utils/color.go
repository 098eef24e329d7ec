package utils

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor 解析 "#rrggbb" 或 "#rgb" 形式的颜色
func ParseHexColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(expandShortHex(hex))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, nil
}

// MustParseHexColor 解析颜色，失败时返回中性灰
// 用于已经过配置校验的颜色
func MustParseHexColor(hex string) colorful.Color {
	c, err := ParseHexColor(hex)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}

// BlendHex 在两个颜色之间按 t 混合（RGB 空间）
func BlendHex(from, to string, t float64) colorful.Color {
	return MustParseHexColor(from).BlendRgb(MustParseHexColor(to), Clamp01(t))
}

// WithAlpha 转换为带不透明度的 NRGBA
func WithAlpha(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(Clamp01(alpha)*255 + 0.5)}
}

// expandShortHex "#abc" -> "#aabbcc"
func expandShortHex(hex string) string {
	if len(hex) != 4 || hex[0] != '#' {
		return hex
	}
	return string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
}
