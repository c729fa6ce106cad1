package cmd

import (
	"reflect"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantOpts      options
		wantSub       string
		wantForwarded []string
	}{
		{
			name: "no args",
			args: nil,
		},
		{
			name:     "project flag with value",
			args:     []string{"--project", "alpha"},
			wantOpts: options{project: "alpha"},
		},
		{
			name:     "project flag equals form",
			args:     []string{"--project=beta"},
			wantOpts: options{project: "beta"},
		},
		{
			name:     "log level and no-input",
			args:     []string{"--log-level=debug", "--no-input"},
			wantOpts: options{logLevel: "debug", noInput: true},
		},
		{
			name:    "doctor subcommand",
			args:    []string{"doctor"},
			wantSub: "doctor",
		},
		{
			name:    "projects subcommand",
			args:    []string{"projects"},
			wantSub: "projects",
		},
		{
			name:     "version flags",
			args:     []string{"-v"},
			wantOpts: options{showVersion: true},
		},
		{
			name:     "help flag",
			args:     []string{"--help"},
			wantOpts: options{showHelp: true},
		},
		{
			name:          "explicit passthrough",
			args:          []string{"--project", "alpha", "--", "--resume", "-p", "hi"},
			wantOpts:      options{project: "alpha"},
			wantForwarded: []string{"--resume", "-p", "hi"},
		},
		{
			name:          "unknown token starts passthrough",
			args:          []string{"--resume", "--project", "alpha"},
			wantForwarded: []string{"--resume", "--project", "alpha"},
		},
		{
			name:          "claudio flags after unknown token are forwarded",
			args:          []string{"-p", "hi", "--no-input"},
			wantForwarded: []string{"-p", "hi", "--no-input"},
		},
		{
			name:          "subcommand name after passthrough is forwarded",
			args:          []string{"--", "doctor"},
			wantForwarded: []string{"doctor"},
		},
		{
			name:          "claudio flags before unknown token still apply",
			args:          []string{"--no-input", "chat"},
			wantOpts:      options{noInput: true},
			wantForwarded: []string{"chat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, sub, forwarded := parseArgs(tt.args)
			if opts != tt.wantOpts {
				t.Errorf("options: got %+v, want %+v", opts, tt.wantOpts)
			}
			if sub != tt.wantSub {
				t.Errorf("subcommand: got %q, want %q", sub, tt.wantSub)
			}
			if !reflect.DeepEqual(forwarded, tt.wantForwarded) {
				t.Errorf("forwarded: got %v, want %v", forwarded, tt.wantForwarded)
			}
		})
	}
}

func TestIsSubcommand(t *testing.T) {
	for _, name := range []string{"doctor", "projects", "version", "help"} {
		if !isSubcommand(name) {
			t.Errorf("isSubcommand(%q): got false", name)
		}
	}
	for _, name := range []string{"", "launch", "--project", "chat"} {
		if isSubcommand(name) {
			t.Errorf("isSubcommand(%q): got true", name)
		}
	}
}
