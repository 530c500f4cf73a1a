package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func newTestCommand() (cmd *ExturlCommand, out, err *bytes.Buffer) {
	out = &bytes.Buffer{}
	err = &bytes.Buffer{}
	return &ExturlCommand{OutStream: out, ErrStream: err}, out, err
}

func TestExturlCommand_ParseArgs(t *testing.T) {
	tests := []struct {
		Args []string
		Code int
	}{
		{[]string{"exturl", "rewrite", "jdbc:mysql://localhost/db"}, 0},
		{[]string{"exturl", "-p", "8080", "serve"}, 0},
		{[]string{"exturl", "-v"}, 0},
		{[]string{"exturl", "-h"}, 0},
		{[]string{"exturl"}, 2},
		{[]string{"exturl", "--no-such-flag"}, 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(strings.Join(tt.Args, " "), func(t *testing.T) {
			cmd, _, _ := newTestCommand()
			if code := cmd.ParseArgs(tt.Args); code != tt.Code {
				t.Errorf("expected exit code %d but got %d", tt.Code, code)
			}
		})
	}
}

func TestExturlCommand_RunRewrite(t *testing.T) {
	cmd, out, _ := newTestCommand()

	code := cmd.Run([]string{"exturl", "rewrite", "jdbc:mysql://localhost:3307/mydb?charset=UTF-8#top"})
	if code != 0 {
		t.Fatalf("unexpected exit code: %d", code)
	}

	expect := "jdbc://localhost:3307/mydb;_sp=mysql?charset=UTF-8#top\n"
	if out.String() != expect {
		t.Errorf("expected %q but got %q", expect, out.String())
	}
}

func TestExturlCommand_RunRewrite_invalid(t *testing.T) {
	cmd, out, errOut := newTestCommand()

	code := cmd.Run([]string{"exturl", "rewrite", "jdbc:mysql://localhost/db", "://", "%"})
	if code != 1 {
		t.Fatalf("unexpected exit code: %d", code)
	}

	if expect := "jdbc://localhost/db;_sp=mysql\n"; out.String() != expect {
		t.Errorf("expected %q but got %q", expect, out.String())
	}

	if !strings.HasPrefix(errOut.String(), "invalid URL:\n") {
		t.Errorf("expected an aggregated error report but got %q", errOut.String())
	}
	if n := strings.Count(errOut.String(), "\n  "); n != 2 {
		t.Errorf("expected 2 reported URLs but got %d:\n%s", n, errOut.String())
	}
}

func TestExturlCommand_RunResolve(t *testing.T) {
	cmd, out, _ := newTestCommand()

	code := cmd.Run([]string{"exturl", "resolve", "jdbc:mysql:failover://root@localhost:3307/mydb?x=1"})
	if code != 0 {
		t.Fatalf("unexpected exit code: %d", code)
	}

	var got resolvedURL
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode output: %s", err)
	}

	expect := resolvedURL{
		Input:        "jdbc:mysql:failover://root@localhost:3307/mydb?x=1",
		Canonical:    "jdbc://root@localhost:3307/mydb;_sp=mysql,failover?x=1",
		Scheme:       "jdbc",
		SubProtocols: []string{"mysql", "failover"},
		Authority:    "root@localhost:3307",
		Path:         "/mydb",
		Query:        "x=1",
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Errorf("unexpected output:\n%s", diff)
	}
}

func TestExturlCommand_RunResolve_invalid(t *testing.T) {
	cmd, out, errOut := newTestCommand()

	if code := cmd.Run([]string{"exturl", "resolve", "://"}); code != 1 {
		t.Fatalf("unexpected exit code: %d", code)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output but got %q", out.String())
	}
	if !strings.HasPrefix(errOut.String(), "invalid URL:\n") {
		t.Errorf("expected an aggregated error report but got %q", errOut.String())
	}
}

func TestExturlCommand_unknownCommand(t *testing.T) {
	cmd, _, errOut := newTestCommand()

	if code := cmd.Run([]string{"exturl", "frobnicate"}); code != 2 {
		t.Fatalf("unexpected exit code: %d", code)
	}
	if !strings.Contains(errOut.String(), "unknown command") {
		t.Errorf("expected an unknown command report but got %q", errOut.String())
	}
}
