package cli

import (
	"testing"

	"github.com/helloproject/hello"
	"github.com/urfave/cli/v2"
)

var recordedConfig *hello.RuntimeConfig

func mockStart(cfg hello.RuntimeConfig) {
	recordedConfig = &cfg
}

func overrideStart(t *testing.T) {
	t.Helper()
	original := hello.Start
	hello.Start = mockStart
	t.Cleanup(func() {
		hello.Start = original
		recordedConfig = nil
	})
}

func TestDevCommand_UsesDevConfig(t *testing.T) {
	overrideStart(t)

	app := &cli.App{Commands: []*cli.Command{DevCommand}}

	err := app.Run([]string{"hello", "dev"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if recordedConfig == nil {
		t.Fatal("expected Start to be called, but it was not")
	}

	if recordedConfig.Env != "dev" || recordedConfig.EnableCache != false || recordedConfig.Port != 8080 {
		t.Errorf("unexpected dev config: %+v", recordedConfig)
	}
	if recordedConfig.ConfigPath != "hello.config.yml" {
		t.Errorf("expected default config path, got %q", recordedConfig.ConfigPath)
	}
}

func TestProdCommand_UsesProdConfig(t *testing.T) {
	overrideStart(t)

	app := &cli.App{Commands: []*cli.Command{ProdCommand}}

	err := app.Run([]string{"hello", "prod"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if recordedConfig == nil {
		t.Fatal("expected Start to be called, but it was not")
	}

	if recordedConfig.Env != "prod" || recordedConfig.EnableCache != true || recordedConfig.Port != 8080 {
		t.Errorf("unexpected prod config: %+v", recordedConfig)
	}
}

func TestProdCommand_PortAndConfigFlags(t *testing.T) {
	overrideStart(t)

	app := &cli.App{Commands: []*cli.Command{ProdCommand}}

	err := app.Run([]string{"hello", "prod", "--port", "9090", "-c", "other.yml"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if recordedConfig.Port != 9090 {
		t.Errorf("expected port 9090, got %d", recordedConfig.Port)
	}
	if recordedConfig.ConfigPath != "other.yml" {
		t.Errorf("expected other.yml, got %q", recordedConfig.ConfigPath)
	}
}

func TestDevCommand_PortFromEnv(t *testing.T) {
	overrideStart(t)
	t.Setenv("HELLO_PORT", "7070")

	app := &cli.App{Commands: []*cli.Command{DevCommand}}
	if err := app.Run([]string{"hello", "dev"}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if recordedConfig.Port != 7070 {
		t.Errorf("expected port 7070 from env, got %d", recordedConfig.Port)
	}
}
