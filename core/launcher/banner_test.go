package launcher_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"devserver/core/launcher"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintBanner(t *testing.T) {
	color.NoColor = true
	out := new(bytes.Buffer)

	launcher.PrintBanner(out, "1.0.0", fixedTime, "127.0.0.1", 8000, "/var/www")

	title := "devserver 1.0.0 started at Tue Mar 5 9:07:03 UTC 2024"
	border := strings.Repeat("*", len(title))
	want := strings.Join([]string{
		"",
		border,
		title,
		border,
		"",
		"Listening on http://127.0.0.1:8000/",
		"Document root is /var/www",
		"",
		border,
		"Press Ctrl-C to quit.",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestPrintBanner_AfternoonHour(t *testing.T) {
	color.NoColor = true
	out := new(bytes.Buffer)

	at := time.Date(2024, time.December, 31, 17, 0, 9, 0, time.UTC)
	launcher.PrintBanner(out, "1.0.0", at, "127.0.0.1", 8000, "/var/www")

	assert.Contains(t, out.String(), "devserver 1.0.0 started at Tue Dec 31 17:00:09 UTC 2024\n")
}

func TestURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8000/", launcher.URL("localhost", 8000))
	assert.Equal(t, "http://[::1]:8080/", launcher.URL("::1", 8080))
}
