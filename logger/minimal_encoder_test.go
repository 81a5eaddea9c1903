package logger

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

// TestMinimalEncoderNeverDiscardsFields ensures the minimal encoder never
// silently drops log fields it doesn't recognize.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "test",
		Message:    "Testing field preservation",
	}

	testFields := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String("random_field_xyz", "important_data"), "random_field_xyz=important_data"},
		{zap.Int("critical_count", 999), "critical_count=999"},
		{zap.Bool("deprecated", true), "deprecated=true"},
		{zap.String("field_with_underscores", "test"), "field_with_underscores=test"},
	}

	for _, tf := range testFields {
		buf, err := encoder.EncodeEntry(entry, []zapcore.Field{tf.field})
		if err != nil {
			t.Fatalf("EncodeEntry failed: %v", err)
		}

		output := stripANSI(buf.String())
		if !strings.Contains(output, tf.mustFind) {
			t.Errorf("encoder dropped field: want %q in output %q", tf.mustFind, output)
		}
	}
}

func TestMinimalEncoderKnownFields(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "profiler",
		Message:    "Built symbol table",
	}

	buf, err := encoder.EncodeEntry(entry, []zapcore.Field{
		zap.String(FieldDocument, "symbology.jsonld"),
		zap.Int(FieldSymbolLen, 42),
	})
	if err != nil {
		t.Fatalf("EncodeEntry failed: %v", err)
	}

	output := stripANSI(buf.String())
	if !strings.Contains(output, "symbology.jsonld") {
		t.Errorf("missing document value in output %q", output)
	}
	if !strings.Contains(output, "(42 symbols)") {
		t.Errorf("missing symbol count in output %q", output)
	}
	if !strings.Contains(output, "Built symbol table") {
		t.Errorf("missing message in output %q", output)
	}
}

func TestMinimalEncoderLevelDisplay(t *testing.T) {
	encoder := newMinimalEncoder()

	infoEntry := zapcore.Entry{Level: zapcore.InfoLevel, Time: time.Now(), Message: "info line"}
	buf, err := encoder.EncodeEntry(infoEntry, nil)
	if err != nil {
		t.Fatalf("EncodeEntry failed: %v", err)
	}
	if strings.Contains(stripANSI(buf.String()), "INFO") {
		t.Error("INFO level marker should be suppressed for calm output")
	}

	warnEntry := zapcore.Entry{Level: zapcore.WarnLevel, Time: time.Now(), Message: "warn line"}
	buf, err = encoder.EncodeEntry(warnEntry, nil)
	if err != nil {
		t.Fatalf("EncodeEntry failed: %v", err)
	}
	if !strings.Contains(stripANSI(buf.String()), "WARN") {
		t.Error("WARN level marker should be shown")
	}
}

func TestAbbreviateName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"profiler", "profiler"},
		{"cmd.profile", "c.profile"},
		{"symbology.loader", "s.loader"},
	}

	for _, tt := range tests {
		if got := abbreviateName(tt.in); got != tt.want {
			t.Errorf("abbreviateName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
