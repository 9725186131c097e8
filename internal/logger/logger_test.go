package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetupLevels(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	tests := map[string]logrus.Level{
		"":      logrus.InfoLevel,
		"debug": logrus.DebugLevel,
		"WARN":  logrus.WarnLevel,
		"trace": logrus.TraceLevel,
	}
	for name, want := range tests {
		if err := Setup(name); err != nil {
			t.Fatalf("Setup(%q): %v", name, err)
		}
		if got := Log.GetLevel(); got != want {
			t.Errorf("Setup(%q) level = %v, want %v", name, got, want)
		}
	}

	if err := Setup("loud"); err == nil {
		t.Error("expected error for an unknown level")
	}
}

func TestForTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	For("raycast").Info("hello")
	out := buf.String()
	if !strings.Contains(out, "component=raycast") || !strings.Contains(out, "msg=hello") {
		t.Errorf("unexpected log line %q", out)
	}
}
