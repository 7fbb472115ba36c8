package main

import (
	"bytes"
	"strings"
	"testing"

	"portfolio-term/internal/config"
)

func TestExecMainArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	code := execMain(config.Default(), []string{"-greeting=false", "whoami", "nope"}, strings.NewReader(""), &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code = %d stderr=%s", code, errOut.String())
	}
	want := "arul@portfolio:~$ whoami\nArulmozhikumar\narul@portfolio:~$ nope\nCommand not found\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestExecMainStdinSkipsBlankLines(t *testing.T) {
	var out, errOut bytes.Buffer
	stdin := strings.NewReader("about\n\n   \r\nweb\r\n")
	code := execMain(config.Default(), nil, stdin, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code = %d stderr=%s", code, errOut.String())
	}
	got := out.String()
	if !strings.HasPrefix(got, "arul@portfolio:~$ Hello Human\n") {
		t.Fatalf("missing greeting: %q", got)
	}
	if strings.Count(got, "arul@portfolio:~$") != 3 {
		t.Fatalf("expected greeting plus two commands, got %q", got)
	}
	if !strings.Contains(got, "https://www.arulmozhikumar.online\n") {
		t.Fatalf("missing web output: %q", got)
	}
}

func TestExecMainFinalHonoursClear(t *testing.T) {
	var out, errOut bytes.Buffer
	code := execMain(config.Default(), []string{"-final", "whoami", "clear", "about"}, strings.NewReader(""), &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	want := "arul@portfolio:~$ about\nAssociate Software Engineer @Presidio\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestExecMainFinalWithoutGreeting(t *testing.T) {
	var out, errOut bytes.Buffer
	code := execMain(config.Default(), []string{"-final", "-greeting=false", "youtube"}, strings.NewReader(""), &out, &errOut)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if out.String() != "arul@portfolio:~$ youtube\n\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestExecMainUsesConfiguredPrompt(t *testing.T) {
	cfg := config.ApplyKVOverrides(config.Default(), []string{"prompt.user=guest", "prompt.dir=/srv"})
	var out, errOut bytes.Buffer
	execMain(cfg, []string{"-greeting=false", "web"}, strings.NewReader(""), &out, &errOut)
	if !strings.HasPrefix(out.String(), "guest@portfolio:/srv$ web\n") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestExecMainBadFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := execMain(config.Default(), []string{"-nope"}, strings.NewReader(""), &out, &errOut); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}
