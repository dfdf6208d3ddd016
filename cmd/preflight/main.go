// cmd/preflight/main.go
package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	relay := strings.TrimSpace(os.Getenv("RELAY_URL"))
	feed := strings.TrimSpace(os.Getenv("STATUS_FEED_URL"))
	probe := strings.TrimSpace(os.Getenv("PROBE_URL"))
	addr := strings.TrimSpace(os.Getenv("ADDR"))
	slack := strings.TrimSpace(os.Getenv("SLACK_WEBHOOK"))

	for name, v := range map[string]string{"RELAY_URL": relay, "STATUS_FEED_URL": feed, "PROBE_URL": probe} {
		if v == "" {
			warn(name + " is empty; the built-in default will be used.")
			continue
		}
		if _, err := url.ParseRequestURI(v); err != nil {
			fail(name + " is not a valid URL: " + v)
		}
		ok(name + "=" + v)
	}

	if addr == "" {
		warn("ADDR is empty; default in your app may be used.")
	} else {
		ok("ADDR=" + addr)
	}

	if slack == "" {
		warn("SLACK_WEBHOOK empty — offline notifications are disabled.")
	} else {
		ok("SLACK_WEBHOOK present")
	}

	ok("preflight passed")
}
