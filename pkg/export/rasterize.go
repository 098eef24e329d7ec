package export

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/chromedp/chromedp"
)

// ErrEmptyScreenshot 浏览器没有返回截图数据
var ErrEmptyScreenshot = errors.New("screenshot buffer is empty")

// RasterizeSVG 用无头 Chrome 把 SVG 渲染为 PNG
//
// SVG 以 data URI 加载，不写临时文件；截图区域为第一个 svg 元素。
// ctx 取消时浏览器进程随之退出。
func RasterizeSVG(ctx context.Context, svg string, w io.Writer) error {
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.DisableGPU,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var buf []byte
	logf("rasterizing %d bytes of SVG with headless chrome", len(svg))
	if err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &buf, chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(buf) == 0 {
		return ErrEmptyScreenshot
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	logf("wrote %d bytes of PNG", len(buf))
	return nil
}
