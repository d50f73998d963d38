package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    hclog.Level
		wantErr bool
	}{
		{in: "", want: hclog.Warn},
		{in: "debug", want: hclog.Debug},
		{in: "TRACE", want: hclog.Trace},
		{in: "off", want: hclog.Off},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want hclog.Level
	}{
		{name: "default", opts: Options{}, want: hclog.Warn},
		{name: "verbose", opts: Options{Verbose: true}, want: hclog.Debug},
		{name: "verbose keeps trace", opts: Options{Level: "trace", Verbose: true}, want: hclog.Trace},
		{name: "quiet wins", opts: Options{Verbose: true, Quiet: true}, want: hclog.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Output = &bytes.Buffer{}
			logger, err := New(tt.opts)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("GetLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", JSON: true, Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Named("extract").Info("extracted palette", "colours", 5)

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["@module"] != Name+".extract" {
		t.Errorf("@module = %v, want %s.extract", entry["@module"], Name)
	}
	if entry["colours"] != float64(5) {
		t.Errorf("colours = %v, want 5", entry["colours"])
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(Options{Level: "chatty"}); err == nil {
		t.Error("New() expected error for invalid level")
	}
}
