package utils

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontWeight 字重
type FontWeight int

const (
	FontRegular FontWeight = iota
	FontBold
)

// Fonts 界面字体集合
//
// 使用 Go 字体族（随 golang.org/x/image 分发），不依赖系统字体。
// 同一字号的 Face 会被缓存复用。
type Fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

type faceKey struct {
	weight FontWeight
	size   float64
}

// LoadFonts 加载内置字体
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return &Fonts{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]*text.GoTextFace),
	}, nil
}

// Face 返回指定字重和字号的字体
func (f *Fonts) Face(weight FontWeight, size float64) *text.GoTextFace {
	key := faceKey{weight: weight, size: size}
	if face, ok := f.faces[key]; ok {
		return face
	}

	source := f.regular
	if weight == FontBold {
		source = f.bold
	}
	face := &text.GoTextFace{Source: source, Size: size}
	f.faces[key] = face
	return face
}
