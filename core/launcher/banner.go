package launcher

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Name is the program name shown in the banner.
const Name = "devserver"

// bannerTime renders e.g. "Tue Mar 5 9:07:03 UTC 2024". The hour is not
// zero padded, which no Go layout verb does for a 24-hour clock.
func bannerTime(at time.Time) string {
	return at.Format("Mon Jan 2 ") + strconv.Itoa(at.Hour()) + at.Format(":04:05 MST 2006")
}

// URL returns the address the child server is reachable at.
func URL(host string, port int) string {
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/"
}

// PrintBanner writes the startup banner.
func PrintBanner(w io.Writer, version string, at time.Time, host string, port int, directory string) {
	title := fmt.Sprintf("%s %s started at %s", Name, version, bannerTime(at))
	border := strings.Repeat("*", len(title))

	frame := color.New(color.FgCyan)
	bold := color.New(color.Bold)

	fmt.Fprintln(w)
	frame.Fprintln(w, border)
	bold.Fprintln(w, title)
	frame.Fprintln(w, border)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Listening on %s\n", color.GreenString(URL(host, port)))
	fmt.Fprintf(w, "Document root is %s\n", directory)
	fmt.Fprintln(w)
	frame.Fprintln(w, border)
	fmt.Fprintln(w, "Press Ctrl-C to quit.")
	fmt.Fprintln(w)
}

// printExhausted writes the diagnostic shown when no port could be found.
func printExhausted(w io.Writer, from, to int) {
	fmt.Fprintln(w, color.RedString("Port from %d to %d are not available.", from, to))
}
