package main

import (
	"os"

	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/cli"
	"github.com/VSrikar51/Pay-Gap-Scrolly/pkg/embedded"
)

func main() {
	// 必须在任何数据加载之前初始化嵌入资源
	embedded.Init(dataFS)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
