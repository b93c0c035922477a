package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/df07/go-interactive-raytracer/pkg/log"
)

func TestNewApp(t *testing.T) {
	app := newApp()

	tests := []struct {
		command string
		flags   []string
	}{
		{"render", []string{"width", "height", "spp", "seed", "scene", "mode", "workers"}},
		{"scenes", nil},
		{"serve", []string{"port", "workers"}},
		{"view", []string{"size", "spp", "scene", "mode", "workers"}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			command := app.Command(tt.command)
			if command == nil {
				t.Fatalf("Expected command %q", tt.command)
			}
			if command.Action == nil {
				t.Errorf("Command %q has no action", tt.command)
			}

			names := make(map[string]bool)
			for _, flag := range command.Flags {
				names[flag.GetName()] = true
			}
			for _, name := range tt.flags {
				if !hasFlag(names, name) {
					t.Errorf("Command %q is missing flag %q", tt.command, name)
				}
			}
		})
	}
}

// hasFlag matches a flag by its long name; registered names may carry a
// short alias such as "scene, s".
func hasFlag(names map[string]bool, name string) bool {
	for registered := range names {
		if registered == name || strings.HasPrefix(registered, name+",") {
			return true
		}
	}
	return false
}

func TestRenderCommand(t *testing.T) {
	args := []string{"raytracer", "render", "--width", "4", "--height", "4", "--spp", "1", "--scene", "plane", "--mode", "normals"}
	if err := newApp().Run(args); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	bad := []string{"raytracer", "render", "--spp", "0"}
	if err := newApp().Run(bad); err == nil {
		t.Error("Expected error for zero samples")
	}
}

func TestRunLogsErrors(t *testing.T) {
	var buf bytes.Buffer
	log.SetSink(&buf)
	defer log.SetSink(os.Stdout)

	if err := run([]string{"raytracer", "render", "--spp", "0"}); err == nil {
		t.Fatal("Expected error for zero samples")
	}
	if !strings.Contains(buf.String(), "invalid render request") {
		t.Errorf("Expected the validation error in the log, got %q", buf.String())
	}
}
