package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cfg "docsmith/internal/config"
	"docsmith/internal/topic"
)

func TestInitScaffoldsTemplatesAndConfig(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "tpl")
	conf := filepath.Join(dir, "docsmith.yaml")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"init", "-t", tpl, "-c", conf, "-f", "GUIDE.md"})
	if err := root.Execute(); err != nil {
		t.Fatalf("init: %v", err)
	}
	for _, tp := range topic.All {
		if _, err := os.Stat(filepath.Join(tpl, tp.FileName())); err != nil {
			t.Fatalf("template %s missing: %v", tp.FileName(), err)
		}
	}
	c, err := cfg.Load(conf, true)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if c.TemplatesDir != tpl || c.FileName != "GUIDE.md" {
		t.Fatalf("config = %+v", c)
	}

	root = newRootCmd()
	out.Reset()
	root.SetOut(&out)
	root.SetArgs([]string{"init", "-t", tpl, "-c", conf})
	if err := root.Execute(); err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Fatalf("second init should not overwrite, output:\n%s", out.String())
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "c.yaml")
	if err := os.WriteFile(conf, []byte("output_dir: from-file\nfile_name: FILE.md\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	root := newRootCmd()
	if err := root.ParseFlags([]string{"-c", conf, "-f", "FLAG.md"}); err != nil {
		t.Fatal(err)
	}
	var f flags
	f.configPath = conf
	f.fileName = "FLAG.md"
	c, err := loadConfig(root, f, true)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if c.OutputDir != "from-file" || c.FileName != "FLAG.md" {
		t.Fatalf("config = %+v", c)
	}
}

func TestInvalidFileNameRejected(t *testing.T) {
	root := newRootCmd()
	if err := root.ParseFlags([]string{"-f", "a/b.md"}); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOCSMITH_CONFIG", filepath.Join(t.TempDir(), "none.yaml"))
	if _, err := loadConfig(root, flags{fileName: "a/b.md"}, false); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "docsmith "+Version {
		t.Fatalf("output = %q", out.String())
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	c := cfg.Default()
	c.LogLevel = "loud"
	if _, _, err := newLogger(c); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	c := cfg.Default()
	c.LogFile = filepath.Join(t.TempDir(), "logs", "docsmith.log")
	logger, closeLog, err := newLogger(c)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello", "k", "v")
	closeLog()
	data, err := os.ReadFile(c.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "k=v") {
		t.Fatalf("log = %q", data)
	}
}
