package embedded

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// 测试用的内存文件系统，代替项目根目录的 embed.FS
func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/timeline-data.csv": &fstest.MapFile{Data: []byte("year,ratio\n1979,62.3\n")},
		"data/story.yaml":        &fstest.MapFile{Data: []byte("title: test\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时读取嵌入资源
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/story.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFileEmbedded 测试从嵌入资源读取
func TestReadFileEmbedded(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"标准路径", "data/story.yaml", "title: test\n"},
		{"带 ./ 前缀", "./data/story.yaml", "title: test\n"},
		{"CSV 文件", "data/timeline-data.csv", "year,ratio\n1979,62.3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if err != nil {
				t.Fatalf("ReadFile(%q) 返回错误: %v", tt.path, err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, 期望 %q", tt.path, data, tt.want)
			}
		})
	}
}

// TestReadFileFromDisk 测试非 data/ 路径从磁盘读取
func TestReadFileFromDisk(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	path := filepath.Join(t.TempDir(), "custom.csv")
	if err := os.WriteFile(path, []byte("year,ratio\n2000,76.9\n"), 0o644); err != nil {
		t.Fatalf("写入临时文件失败: %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q) 返回错误: %v", path, err)
	}
	if string(data) != "year,ratio\n2000,76.9\n" {
		t.Errorf("磁盘文件内容不匹配: %q", data)
	}
}

// TestExists 测试文件存在性检查
func TestExists(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	if !Exists("data/story.yaml") {
		t.Error("data/story.yaml 应该存在")
	}
	if Exists("data/missing.yaml") {
		t.Error("data/missing.yaml 不应该存在")
	}
	if Exists(filepath.Join(t.TempDir(), "nope.csv")) {
		t.Error("不存在的磁盘文件不应该存在")
	}
}
