package cli

import (
	"errors"
	"reflect"
	"testing"

	"github.com/imgstack/imgstack/internal/stack"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "long flags",
			args: []string{"--output", "out.png", "--mode", "max", "--overwrite", "a.png", "b.png"},
			want: Options{Output: "out.png", Inputs: []string{"a.png", "b.png"}, Mode: stack.ModeMax, Overwrite: true},
		},
		{
			name: "short flags",
			args: []string{"-o", "out.png", "-m", "avg", "-y", "a.png"},
			want: Options{Output: "out.png", Inputs: []string{"a.png"}, Mode: stack.ModeAverage, Overwrite: true},
		},
		{
			name: "defaults to sum without overwrite",
			args: []string{"-o", "out.png", "a.png"},
			want: Options{Output: "out.png", Inputs: []string{"a.png"}, Mode: stack.ModeSum},
		},
		{
			name: "flags and inputs interleaved",
			args: []string{"a.png", "-o", "out.png", "b.png", "-m", "min", "c.png"},
			want: Options{Output: "out.png", Inputs: []string{"a.png", "b.png", "c.png"}, Mode: stack.ModeMin},
		},
		{
			name: "min seed first",
			args: []string{"-o", "out.png", "-m", "min", "--min-seed-first", "a.png"},
			want: Options{Output: "out.png", Inputs: []string{"a.png"}, Mode: stack.ModeMin, SeedMinFromFirst: true},
		},
		{
			name: "equals form",
			args: []string{"--output=out.png", "--mode=sum-overflow", "a.png"},
			want: Options{Output: "out.png", Inputs: []string{"a.png"}, Mode: stack.ModeSumOverflow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if !reflect.DeepEqual(*got, tt.want) {
				t.Errorf("Parse(%v):\n got %+v\nwant %+v", tt.args, *got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing output", []string{"a.png"}},
		{"no inputs", []string{"-o", "out.png"}},
		{"unknown mode", []string{"-o", "out.png", "-m", "multiply", "a.png"}},
		{"case sensitive mode", []string{"-o", "out.png", "-m", "SUM", "a.png"}},
		{"unknown flag", []string{"-o", "out.png", "--bogus", "a.png"}},
		{"empty command line", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.args); err == nil {
				t.Errorf("Parse(%v) should fail", tt.args)
			}
		})
	}
}

func TestParse_Version(t *testing.T) {
	// --version wins without output or inputs being present.
	got, err := Parse([]string{"-V"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !got.ShowVersion {
		t.Error("ShowVersion should be set")
	}
}

func TestParse_Help(t *testing.T) {
	_, err := Parse([]string{"--help"})
	if !errors.Is(err, ErrHelp) {
		t.Errorf("expected ErrHelp, got %v", err)
	}
}
