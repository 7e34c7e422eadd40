package utils

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"Bearer   padded ", "padded", true},
		{"Basic dXNlcjpwdw==", "", false},
		{"bearer abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		token, ok := BearerToken(tc.header)
		if token != tc.token || ok != tc.ok {
			t.Fatalf("BearerToken(%q) = %q, %v; want %q, %v", tc.header, token, ok, tc.token, tc.ok)
		}
	}
}

func TestFormatting(t *testing.T) {
	if got := FormatMoney(12.5); got != "12.50" {
		t.Fatalf("FormatMoney = %q", got)
	}
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	if got := FormatDateTime(ts); got != "2026-03-04 05:06:07" {
		t.Fatalf("FormatDateTime = %q", got)
	}
}

func TestLogEventKeepsMessageOnOneLine(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})

	LogEvent("", "auth", "login_rejected", "bad\ninput")

	got := strings.TrimSpace(buf.String())
	want := `[AUTH] action=login_rejected request_id=- msg="bad\ninput"`
	if got != want {
		t.Fatalf("log line = %q, want %q", got, want)
	}
}
