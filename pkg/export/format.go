// Package export 离线导出折线图和粒子快照（SVG / PNG）
package export

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
)

// Format 导出格式
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat 解析格式名（不区分大小写）
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected svg or png)", s)
	}
}

// Write 按格式写出 SVG 文档，PNG 通过无头浏览器栅格化
func Write(ctx context.Context, svg string, format Format, w io.Writer) error {
	switch format {
	case FormatSVG:
		if _, err := io.WriteString(w, svg); err != nil {
			return fmt.Errorf("failed to write SVG: %w", err)
		}
		return nil
	case FormatPNG:
		return RasterizeSVG(ctx, svg, w)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func logf(format string, args ...any) {
	log.Printf("[Export] "+format, args...)
}
