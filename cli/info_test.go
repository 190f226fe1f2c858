package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestInfoCommand_PrintsConfigAndAssetCount(t *testing.T) {
	tmp := t.TempDir()
	outputDir := filepath.Join(tmp, "out")
	_ = os.MkdirAll(filepath.Join(outputDir, "static"), 0755)
	_ = os.WriteFile(filepath.Join(outputDir, "static", "app.min.css"), []byte("body{}"), 0644)
	_ = os.WriteFile(filepath.Join(outputDir, "static", "app.min.css.gz"), []byte("gz"), 0644)

	configPath := filepath.Join(tmp, "hello.config.yml")
	config := "apiBase: http://api.internal:9000\n" +
		"outputDir: " + outputDir + "\n" +
		"publicDir: assets\n" +
		"cache: true\n" +
		"debugHeaders: true\n" +
		"waitForAPI: true\n" +
		"viewTTLSeconds: 45\n"
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	output := captureStdout(t, func() {
		app := &cli.App{Commands: []*cli.Command{InfoCommand}}
		_ = app.Run([]string{"hello", "info", "--config", configPath})
	})

	expected := []string{
		"🌐 API Endpoint: http://api.internal:9000/api/",
		"📁 Output Directory: " + outputDir,
		"🗂️  Public Directory: assets",
		"🔁 Cache Enabled: true",
		"🔁 Debug Headers Enabled: true",
		"🔁 Debug Logs Enabled: false",
		"⏳ Wait For API: true",
		"⏱️  View TTL: 45s",
		"💾 Cached Assets: 1",
	}
	for _, line := range expected {
		if !strings.Contains(output, line) {
			t.Errorf("expected output to contain %q, got:\n%s", line, output)
		}
	}
}

func TestInfoCommand_EnvOverridesFile(t *testing.T) {
	tmp := t.TempDir()
	configPath := filepath.Join(tmp, "hello.config.yml")
	_ = os.WriteFile(configPath, []byte("apiBase: http://from-file\ncache: false\n"), 0644)

	t.Setenv("HELLO_API_BASE", "http://from-env/")
	t.Setenv("HELLO_CACHE", "true")
	t.Setenv("HELLO_OUTPUT_DIR", filepath.Join(tmp, "missing"))

	output := captureStdout(t, func() {
		app := &cli.App{Commands: []*cli.Command{InfoCommand}}
		_ = app.Run([]string{"hello", "info", "-c", configPath})
	})

	if !strings.Contains(output, "🌐 API Endpoint: http://from-env/api/") {
		t.Errorf("expected env api base, got:\n%s", output)
	}
	if !strings.Contains(output, "🔁 Cache Enabled: true") {
		t.Errorf("expected env cache override, got:\n%s", output)
	}
	if !strings.Contains(output, "💾 Cached Assets: 0") {
		t.Errorf("expected zero cached assets, got:\n%s", output)
	}
}
