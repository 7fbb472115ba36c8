package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestPlainFormatterLayout(t *testing.T) {
	l := logrus.New()
	entry := logrus.NewEntry(l).WithFields(logrus.Fields{
		"component": "tui",
		"session":   "abc",
		"cmd":       "whoami",
	})
	entry.Time = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	entry.Level = logrus.InfoLevel
	entry.Message = "submit"

	out, err := PlainFormatter{}.Format(entry)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "[2024-01-02T03:04:05Z] [INFO] [tui] submit cmd=whoami session=abc\n"
	if string(out) != want {
		t.Fatalf("Format = %q, want %q", out, want)
	}
}

func TestShortenFilePath(t *testing.T) {
	cases := map[string]string{
		"/src/portfolio-term/internal/term/session.go": "internal/term/session.go",
		"/src/portfolio-term/cmd/portfolio-term/main.go": "cmd/portfolio-term/main.go",
		"/tmp/other.go": "other.go",
	}
	for in, want := range cases {
		if got := shortenFilePath(in); got != want {
			t.Fatalf("shortenFilePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSetupFileWritesToPath(t *testing.T) {
	l := logrus.New()
	SetRoot(l)
	t.Cleanup(func() { SetRoot(nil) })
	Configure()

	path := filepath.Join(t.TempDir(), "nested", "app.log")
	closer, resolved, err := SetupFile(path)
	if err != nil {
		t.Fatalf("SetupFile: %v", err)
	}
	if resolved != path {
		t.Fatalf("resolved = %q, want %q", resolved, path)
	}
	Named("test").Info("hello")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[test] hello") {
		t.Fatalf("log content = %q", data)
	}
}

func TestSetLevel(t *testing.T) {
	l := logrus.New()
	SetRoot(l)
	t.Cleanup(func() { SetRoot(nil) })

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v", l.GetLevel())
	}
	if err := SetLevel(""); err != nil || l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("empty level should be ignored: err=%v level=%v", err, l.GetLevel())
	}
	if err := SetLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
