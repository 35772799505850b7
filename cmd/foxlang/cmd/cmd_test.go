package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/foxlang/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	out, err := execute(t, "run", "-e", "LOCAL x = 20; RETURN x * 2 + 2")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(out, "42") || !strings.Contains(out, "integer") {
		t.Errorf("unexpected output: %q", out)
	}
	runExec = ""
}

func TestFmt(t *testing.T) {
	file := filepath.Join(t.TempDir(), "script.prg")
	if err := os.WriteFile(file, []byte("local a=1\nif a then\nreturn a+1\nendif"), 0o644); err != nil {
		t.Fatalf("writing script: %s", err)
	}
	out, err := execute(t, "fmt", file)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := "LOCAL a = 1\nIF a THEN\n  RETURN a + 1\nENDIF\n"
	if out != want {
		t.Errorf("format mismatched\nwant: %q\ngot:  %q", want, out)
	}
}

func TestScript(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "foxlang.yaml")
	src := filepath.Join(dir, "answer.prg")
	if err := os.WriteFile(cfg, []byte("store: "+filepath.Join(dir, "scripts.db")+"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %s", err)
	}
	if err := os.WriteFile(src, []byte("RETURN 6 * 7"), 0o644); err != nil {
		t.Fatalf("writing script: %s", err)
	}
	t.Setenv(config.EnvConfig, cfg)

	if _, err := execute(t, "script", "put", "answer", src); err != nil {
		t.Fatalf("put: unexpected error: %s", err)
	}
	out, err := execute(t, "script", "list")
	if err != nil {
		t.Fatalf("list: unexpected error: %s", err)
	}
	if strings.TrimSpace(out) != "answer" {
		t.Errorf("list: unexpected output %q", out)
	}
	if out, err = execute(t, "script", "run", "ANSWER"); err != nil || !strings.Contains(out, "42") {
		t.Errorf("run: unexpected output %q (%v)", out, err)
	}
	if out, err = execute(t, "script", "result", "answer"); err != nil || !strings.Contains(out, "42") {
		t.Errorf("result: unexpected output %q (%v)", out, err)
	}
	if _, err = execute(t, "script", "rm", "answer"); err != nil {
		t.Errorf("rm: unexpected error: %s", err)
	}
	if _, err = execute(t, "script", "get", "answer"); err == nil {
		t.Errorf("get: removed script should not be found")
	}
}
