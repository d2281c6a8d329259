package logx

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func TestCDisabledReturnsPlainString(t *testing.T) {
	prev := enableColor
	enableColor = false
	defer func() { enableColor = prev }()

	if got := C(red, "hi"); got != "hi" {
		t.Errorf("C() with color disabled = %q, want %q", got, "hi")
	}
}

func TestCEnabledWrapsInEscapeCodes(t *testing.T) {
	prev := enableColor
	enableColor = true
	defer func() { enableColor = prev }()

	got := C(red, "hi")
	if !strings.Contains(got, "hi") || !strings.HasPrefix(got, red) || !strings.HasSuffix(got, reset) {
		t.Errorf("C() with color enabled = %q, want wrapped in escape codes", got)
	}
}

func TestChannelPadsToFourChars(t *testing.T) {
	got := Channel("GEN ")
	if !strings.Contains(got, "[GEN ]") {
		t.Errorf("Channel(\"GEN \") = %q, want to contain [GEN ]", got)
	}
}

func TestFitnessColorThresholds(t *testing.T) {
	prev := enableColor
	enableColor = false
	defer func() { enableColor = prev }()

	if got := FitnessColor(0, 1.0); got != "0" {
		t.Errorf("FitnessColor(0, 1.0) = %q, want %q", got, "0")
	}
	if got := FitnessColor(0.5, 1.0); got != "0.5" {
		t.Errorf("FitnessColor(0.5, 1.0) = %q, want %q", got, "0.5")
	}
	if got := FitnessColor(5, 1.0); got != "5" {
		t.Errorf("FitnessColor(5, 1.0) = %q, want %q", got, "5")
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m"},
		{90 * time.Minute, "1h30m"},
		{3 * time.Hour, "3h"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.d); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestLoggerDisabledByDefaultEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{w: &buf}
	l.RunStart(2, 10)
	l.BestUpdate(1, 0.5)
	l.FitnessFailure(nil)
	if buf.Len() != 0 {
		t.Errorf("disabled Logger wrote %q, want nothing", buf.String())
	}
}

func TestLoggerEnabledEmitsLines(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{w: &buf}
	l.Enable(true)
	l.RunStart(2, 10)
	if buf.Len() == 0 {
		t.Error("enabled Logger wrote nothing")
	}
	if !strings.Contains(buf.String(), "RUN") {
		t.Errorf("RunStart output = %q, want it to mention the RUN channel", buf.String())
	}
}

func TestEnableFromEnvRespectsGOGPLog(t *testing.T) {
	old, had := os.LookupEnv("GOGP_LOG")
	defer func() {
		if had {
			os.Setenv("GOGP_LOG", old)
		} else {
			os.Unsetenv("GOGP_LOG")
		}
	}()

	os.Unsetenv("GOGP_LOG")
	l := New().EnableFromEnv()
	if l.enabled {
		t.Error("EnableFromEnv enabled the logger with GOGP_LOG unset")
	}

	os.Setenv("GOGP_LOG", "1")
	l = New().EnableFromEnv()
	if !l.enabled {
		t.Error("EnableFromEnv did not enable the logger with GOGP_LOG=1")
	}
}

func TestNilLoggerMethodsAreNoOps(t *testing.T) {
	var l *Logger
	l.RunStart(1, 1)
	l.BestUpdate(0, 0)
	l.Migration(0, 1)
	l.FitnessFailure(nil)
	l.Generation(0, 0, 0)
	l.Done(time.Second, 0)
}
