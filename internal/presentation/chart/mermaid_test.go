package chart_test

import (
	"strings"
	"testing"

	"github.com/aretw0/atlas/internal/presentation/chart"
)

func TestGeneratePie(t *testing.T) {
	out := chart.GeneratePie("States by \"initial\"", map[string]int{"C": 1, "A": 2})

	want := "pie showData\n" +
		"    title States by 'initial'\n" +
		"    \"A\" : 2\n" +
		"    \"C\" : 1\n"
	if out != want {
		t.Errorf("GeneratePie() =\n%s\nwant\n%s", out, want)
	}
}

func TestGeneratePie_Empty(t *testing.T) {
	out := chart.GeneratePie("", nil)
	if strings.Contains(out, "title") {
		t.Errorf("expected no title line, got %q", out)
	}
	if out != "pie showData\n" {
		t.Errorf("unexpected output %q", out)
	}
}
