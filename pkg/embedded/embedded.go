// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的数据文件。
//
// 以 "data/" 开头的路径从嵌入资源读取；其他路径（用户通过配置
// 指定的 CSV 或 YAML）直接从磁盘读取。
//
// 使用嵌入资源前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// errNotInitialized 在 Init() 之前访问嵌入资源时返回
var errNotInitialized = fmt.Errorf("embedded package not initialized, call Init() first")

// Init 初始化嵌入的文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// IsEmbeddedPath 判断路径是否指向嵌入资源
func IsEmbeddedPath(path string) bool {
	return strings.HasPrefix(normalize(path), "data/")
}

// Open 打开文件
// "data/" 前缀的路径从嵌入资源打开，其余路径从磁盘打开
func Open(path string) (fs.File, error) {
	if !IsEmbeddedPath(path) {
		return os.Open(path)
	}
	if !initialized {
		return nil, errNotInitialized
	}
	return dataFS.Open(normalize(path))
}

// ReadFile 读取文件内容
// "data/" 前缀的路径从嵌入资源读取，其余路径从磁盘读取
func ReadFile(path string) ([]byte, error) {
	if !IsEmbeddedPath(path) {
		return os.ReadFile(path)
	}
	if !initialized {
		return nil, errNotInitialized
	}
	return fs.ReadFile(dataFS, normalize(path))
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// normalize 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠）并移除 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}
