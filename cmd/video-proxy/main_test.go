package main

import (
	"bytes"
	"strings"
	"testing"

	"video-proxy-go/pkg/appctx"
)

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("LOG_LEVEL", "warn")

	if err := rootCmd.ParseFlags([]string{"--log-level", "debug"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	cfg := loadConfig(rootCmd)

	if cfg.Port != 4000 {
		t.Errorf("Port = %d, want 4000 from env", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want flag value", cfg.LogLevel)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	if !strings.Contains(out.String(), appctx.Version) {
		t.Errorf("output %q missing version", out.String())
	}
}
