// Package story 定义薪酬差距叙事的领域模型
//
// 包括时间序列数据点（TimePoint）、粒子分组（Group）、
// 激活分组快照（ActiveSet）、滚动步骤协调器（Coordinator）
// 以及滚动位置到步骤的映射（ScrollTracker）。
//
// 本包不依赖 Ebitengine，所有逻辑均可在无窗口环境下测试。
package story

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrBadHeader CSV 表头缺少 year 或 ratio 列
	ErrBadHeader = errors.New("timeline header must contain year and ratio columns")

	// ErrYearNotFound 时间序列中不存在指定年份
	ErrYearNotFound = errors.New("year not found in timeline")
)

// TimePoint 时间序列中的一个数据点
// 加载后不可变，仅用于渲染
type TimePoint struct {
	Year  int     // 年份
	Ratio float64 // 女性收入占男性收入的百分比（如 62.3）
}

// ParseTimeline 解析 year,ratio 格式的 CSV
//
// 表头列顺序不限，列名大小写与首尾空白会被忽略。
// 按年份排序是单调曲线拟合的前提，但这里不强制检查。
//
// 参数:
//   - r: CSV 数据源
//
// 返回:
//   - []TimePoint: 按文件顺序排列的数据点
//   - error: 表头缺失或任一行无法解析时返回错误
func ParseTimeline(r io.Reader) ([]TimePoint, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrBadHeader
		}
		return nil, fmt.Errorf("failed to read timeline header: %w", err)
	}

	yearCol, ratioCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "year":
			yearCol = i
		case "ratio":
			ratioCol = i
		}
	}
	if yearCol < 0 || ratioCol < 0 {
		return nil, ErrBadHeader
	}

	var points []TimePoint
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read timeline row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		year, err := strconv.Atoi(strings.TrimSpace(record[yearCol]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid year %q: %w", line, record[yearCol], err)
		}
		ratio, err := strconv.ParseFloat(strings.TrimSpace(record[ratioCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid ratio %q: %w", line, record[ratioCol], err)
		}
		points = append(points, TimePoint{Year: year, Ratio: ratio})
	}

	return points, nil
}

// FindYear 查找指定年份的数据点
// 不存在时返回 ErrYearNotFound
func FindYear(points []TimePoint, year int) (TimePoint, error) {
	for _, p := range points {
		if p.Year == year {
			return p, nil
		}
	}
	return TimePoint{}, fmt.Errorf("%w: %d", ErrYearNotFound, year)
}
