package notify

import (
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("Lost & Found Desk", "noreply@test", "ana@test", "Match found", "Hi Ana,\nGood news."))

	for _, want := range []string{
		"From: Lost & Found Desk <noreply@test>\r\n",
		"To: ana@test\r\n",
		"Subject: Match found\r\n",
		"Content-Type: text/plain; charset=utf-8\r\n",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}

	// Body follows the blank line with CRLF line endings throughout.
	parts := strings.SplitN(msg, "\r\n\r\n", 2)
	if len(parts) != 2 {
		t.Fatal("expected header/body separator")
	}
	if parts[1] != "Hi Ana,\r\nGood news." {
		t.Errorf("unexpected body: %q", parts[1])
	}
}
