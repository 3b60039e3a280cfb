package util
import (
	"os"
	"errors"
	"testing"
	"path/filepath"
)

func writeEditor( t *testing.T, body string ) string {
	t.Helper()
	editor := filepath.Join( t.TempDir(), "editor.sh" )
	if err := os.WriteFile( editor, []byte("#!/bin/sh\n" + body + "\n"), 0755 ); err != nil {
		t.Fatalf("Failed to create editor script: %v", err)
	}
	return editor
}

func TestEditConfig( t *testing.T ) {
	conf := filepath.Join( t.TempDir(), "config.yaml" )
	if err := os.WriteFile( conf, []byte("a: 1\n"), 0600 ); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	validate := func( data []byte ) error {
		if string(data) == "broken\n" {
			return errors.New("broken")
		}
		return nil
	}

	t.Setenv( TextEditorVariableName, writeEditor( t, `echo "a: 2" > "$1"` ) )
	if err := EditConfig( conf, validate ); err != nil {
		t.Errorf("Failed to edit configuration: %v", err)
	}
	if data, _ := os.ReadFile( conf ); string(data) != "a: 2\n" {
		t.Errorf("Configuration was not edited: %q", data)
	}

	t.Setenv( TextEditorVariableName, writeEditor( t, `echo "broken" > "$1"` ) )
	if err := EditConfig( conf, validate ); err == nil {
		t.Errorf("Broken configuration was accepted")
	}
	if data, _ := os.ReadFile( conf ); string(data) != "a: 2\n" {
		t.Errorf("Configuration was not reverted: %q", data)
	}

	if err := EditConfig( filepath.Join( t.TempDir(), "missing.yaml" ), nil ); err == nil {
		t.Errorf("Edited a missing file")
	}
}

func TestReadLog( t *testing.T ) {
	if err := ReadLog( filepath.Join( t.TempDir(), "missing.log" ) ); err == nil {
		t.Errorf("Read a missing log file")
	}
}
