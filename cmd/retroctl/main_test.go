package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestComposePrintsPrompt(t *testing.T) {
	out, err := run(t, "", "compose", "--pain-points", "reviews stall", "--mood-note", "tired")
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !strings.Contains(out, "Recent pain points: reviews stall") || !strings.Contains(out, "Recent emotional note: tired") {
		t.Fatalf("unexpected prompt %q", out)
	}
}

func TestComposeRequiresInput(t *testing.T) {
	if _, err := run(t, "", "compose"); err == nil {
		t.Fatalf("expected error when no notes are given")
	}
}

func TestParseReadsStdin(t *testing.T) {
	out, err := run(t, "Sure!\n1. Walk daily.\n2. Sleep early.\n", "parse")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var got []string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if len(got) != 2 || got[0] != "Walk daily." || got[1] != "Sleep early." {
		t.Fatalf("unexpected items %q", got)
	}
}
