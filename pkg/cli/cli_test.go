package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI 执行命令，返回标准输出和标准错误
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("PAYGAP_CONFIG", "")
	t.Setenv("PAYGAP_STORY_PATH", filepath.Join("..", "..", "data", "story.yaml"))
	t.Setenv("PAYGAP_TIMELINE_PATH", filepath.Join("..", "..", "data", "timeline-data.csv"))
	t.Setenv("CI", "1")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version 返回错误: %v", err)
	}
	if strings.TrimSpace(stdout) != "paygap dev" {
		t.Errorf("输出 = %q, 期望 \"paygap dev\"", stdout)
	}
}

func TestExportChartSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.svg")
	_, stderr, err := runCLI(t, "export", "chart", "--format", "svg", "--out", out, "--step", "1")
	if err != nil {
		t.Fatalf("export chart 返回错误: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("读取输出文件失败: %v", err)
	}
	svg := string(data)
	for _, want := range []string{"<svg", "#ef4444", "Progress slows after 2000"} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG 缺少 %q", want)
		}
	}
	if !strings.Contains(stderr, "wrote "+out) {
		t.Errorf("标准错误 = %q, 期望包含写出提示", stderr)
	}
}

func TestExportParticlesStdout(t *testing.T) {
	stdout, stderr, err := runCLI(t, "export", "particles", "--format", "svg", "--out", "-",
		"--frames", "20", "--step", "6", "--seed", "3")
	if err != nil {
		t.Fatalf("export particles 返回错误: %v", err)
	}
	if !strings.HasPrefix(stdout, "<svg") || !strings.Contains(stdout, "Hispanic Women") {
		t.Errorf("标准输出应为包含全部标签的 SVG, 实际前缀 %.40q", stdout)
	}
	for _, want := range []string{"Simulating particles: 20 frames", "White Men BA", "simulation complete"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("标准错误缺少 %q", want)
		}
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, _, err := runCLI(t, "export", "chart", "--format", "gif", "--out", "-")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("错误 = %v, 期望 unsupported format", err)
	}
}

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{w: &buf}
	r.Start(100, "Simulating")
	for i := 1; i <= 100; i++ {
		r.Update(i)
	}
	r.Finish()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// 标题 + 每十分之一一行（含第 1 帧） + 结束
	if len(lines) != 13 {
		t.Errorf("输出行数 = %d, 期望 13:\n%s", len(lines), buf.String())
	}
	if lines[len(lines)-2] != "[100/100]" {
		t.Errorf("最后进度行 = %q, 期望 [100/100]", lines[len(lines)-2])
	}
}

func TestValidateCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "validate")
	if err != nil {
		t.Fatalf("validate 返回错误: %v", err)
	}
	for _, want := range []string{"4 groups", "1,556 particles", "7 steps", "annotation year 2000 found"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("输出缺少 %q:\n%s", want, stdout)
		}
	}
}
