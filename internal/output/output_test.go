package output

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinterPlainOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), PlainText())

	printer.Echo("guest@portfolio:~$ ls")
	printer.Text("about\nexperience")
	printer.Markup("\x1b[1mPlatform\x1b[0m")

	expected := []string{"guest@portfolio:~$ ls", "about", "experience", "Platform"}
	lines := buffer.Lines()
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %v", len(expected), len(lines), lines)
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("Line %d: expected '%s', got '%s'", i, want, lines[i])
		}
	}
}

func TestPrinterSkipEcho(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), PlainText(), SkipEcho())

	printer.Echo("guest@portfolio:~$ whoami")
	printer.Text("guest")

	if got := buffer.String(); got != "guest\n" {
		t.Errorf("Expected only command output, got %q", got)
	}
}

func TestPrinterStyledOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(NewMockStyleProvider()))

	if !printer.IsStylable() {
		t.Fatal("Expected printer to be stylable")
	}

	printer.Text("a\nb")
	printer.Markup("table")

	want := "[text]a[/text]\n[text]b[/text]\ntable\n"
	if got := buffer.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestPrinterUnavailableStyles(t *testing.T) {
	provider := NewMockStyleProvider()
	provider.SetAvailable(false)
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(provider))

	printer.Text("plain")
	if printer.IsStylable() {
		t.Error("Expected printer not to be stylable")
	}
	if got := buffer.String(); got != "plain\n" {
		t.Errorf("Expected plain output, got %q", got)
	}
}

func TestPrinterJSONOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), JSON())

	printer.Echo("guest@portfolio:~$ date")
	printer.Markup("\x1b[32mok\x1b[0m")

	lines := buffer.Lines()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 JSON lines, got %d", len(lines))
	}

	var payload map[string]string
	if err := json.Unmarshal([]byte(lines[1]), &payload); err != nil {
		t.Fatalf("Invalid JSON %q: %v", lines[1], err)
	}
	if payload["type"] != "markup" || payload["message"] != "ok" {
		t.Errorf("Unexpected payload: %v", payload)
	}
}

func TestPrinterPrefix(t *testing.T) {
	out := CaptureOutput(func(p *Printer) {
		WithPrefix("> ")(p)
		p.Text("hi")
	})
	if !strings.HasPrefix(out, "> hi") {
		t.Errorf("Expected prefixed output, got %q", out)
	}
}
