package output

import (
	"bytes"
	"strings"
	"sync"
)

// CaptureBuffer is a thread-safe buffer for capturing output during tests.
type CaptureBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewCaptureBuffer creates a new capture buffer.
func NewCaptureBuffer() *CaptureBuffer {
	return &CaptureBuffer{}
}

// Write implements io.Writer for capturing output.
func (c *CaptureBuffer) Write(p []byte) (n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// String returns the captured output as a string.
func (c *CaptureBuffer) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Lines returns the captured output split into lines.
func (c *CaptureBuffer) Lines() []string {
	content := c.String()
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// Reset clears the captured output.
func (c *CaptureBuffer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Reset()
}

// Len returns the number of bytes captured.
func (c *CaptureBuffer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Len()
}

// Contains checks if the captured output contains the given text.
func (c *CaptureBuffer) Contains(text string) bool {
	return strings.Contains(c.String(), text)
}

// CaptureOutput captures plain output from a function that uses a Printer.
func CaptureOutput(fn func(*Printer)) string {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), PlainText())
	fn(printer)
	return buffer.String()
}

// MockStyleProvider wraps text in semantic tags.
type MockStyleProvider struct {
	available bool
}

// NewMockStyleProvider creates an available mock provider.
func NewMockStyleProvider() *MockStyleProvider {
	return &MockStyleProvider{available: true}
}

// SetAvailable sets whether the provider is available.
func (m *MockStyleProvider) SetAvailable(available bool) {
	m.available = available
}

// GetStyle implements StyleProvider.
func (m *MockStyleProvider) GetStyle(semantic string) TextStyle {
	return &MockTextStyle{semantic: semantic}
}

// IsAvailable implements StyleProvider.
func (m *MockStyleProvider) IsAvailable() bool {
	return m.available
}

// MockTextStyle wraps text as [semantic]text[/semantic].
type MockTextStyle struct {
	semantic string
}

// Render implements TextStyle.
func (m *MockTextStyle) Render(strs ...string) string {
	text := strings.Join(strs, " ")
	return "[" + m.semantic + "]" + text + "[/" + m.semantic + "]"
}
