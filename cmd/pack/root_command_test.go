package main

import (
	"testing"
)

func TestCreateRootCommand_Wiring(t *testing.T) {
	root := createRootCommand()

	// Check global flags
	if f := root.PersistentFlags().Lookup("config"); f == nil {
		t.Fatalf("--config flag missing")
	}
	if f := root.PersistentFlags().Lookup("log-level"); f == nil {
		t.Fatalf("--log-level flag missing")
	}

	// Expected subcommands
	want := map[string]bool{
		"init":               false,
		"build":              false,
		"install":            false,
		"uninstall":          false,
		"list":               false,
		"show":               false,
		"check":              false,
		"sign":               false,
		"verify":             false,
		"upload":             false,
		"repo":               false,
		"ui":                 false,
		"version":            false,
		"config":             false,
		"install-completion": false,
	}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("expected subcommand %q to be registered", name)
		}
	}
}

func TestRepoCommand_Wiring(t *testing.T) {
	repo := createRepoCommand()

	want := map[string]bool{
		"add":         false,
		"remove":      false,
		"list":        false,
		"set-default": false,
	}
	for _, c := range repo.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("expected repo subcommand %q to be registered", name)
		}
	}
}
