package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/ikreport/pkg/errors"
	"github.com/matzehuels/ikreport/pkg/kin/kintest"
	"github.com/matzehuels/ikreport/pkg/solgraph"
)

func twoLinkGraph(t *testing.T) *solgraph.Graph {
	t.Helper()
	g, err := solgraph.FromEdges(kintest.TwoLink().Robot.NotationGraph)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(twoLinkGraph(t), Options{})

	for _, want := range []string{
		"digraph G {",
		`"th_1s1" [label="th_1s1", fillcolor=lightblue, penwidth=2];`,
		`"th_2s1" [label="th_2s1"];`,
		`{ rank=same; "th_1s1"; "th_1s2"; }`,
		`{ rank=same; "th_2s1"; "th_2s2"; }`,
		`"th_1s1" -> "th_2s1";`,
		`"th_1s1" -> "th_2s2";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `"-1"`) {
		t.Error("root marker drawn as a node")
	}
	if strings.Contains(dot, "labelloc") {
		t.Error("title emitted without Options.Title")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(twoLinkGraph(t), Options{Detailed: true, Title: "Two_Link"})
	if !strings.Contains(dot, `label="th_2s2\nlevel: 1"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
	if !strings.Contains(dot, `label="Two_Link";`) {
		t.Errorf("title missing:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(solgraph.New(), Options{})
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT(empty) = %q", dot)
	}
	if strings.Contains(dot, "->") || strings.Contains(dot, "rank=same") {
		t.Errorf("empty graph has content: %q", dot)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"dot", "svg", "png"} {
		if f, err := ParseFormat(s); err != nil || string(f) != s {
			t.Errorf("ParseFormat(%q) = %q, %v", s, f, err)
		}
	}
	if _, err := ParseFormat("pdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormat(pdf) error = %v", err)
	}
	if FormatPNG.ContentType() != "image/png" || FormatSVG.ContentType() != "image/svg+xml" {
		t.Error("unexpected content types")
	}
}

func TestRender(t *testing.T) {
	ctx := context.Background()
	dot := ToDOT(twoLinkGraph(t), Options{})

	out, err := Render(ctx, dot, FormatDOT)
	if err != nil || string(out) != dot {
		t.Errorf("Render(dot) = %q, %v", out, err)
	}

	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) || !bytes.Contains(svg, []byte("th_2s2")) {
		t.Errorf("unexpected SVG output: %.200s", svg)
	}

	png, err := RenderPNG(ctx, dot)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("PNG output lacks signature: % x", png[:min(8, len(png))])
	}

	if _, err := Render(ctx, dot, "gif"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(gif) error = %v", err)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}
	if plain := []byte("<svg><g/></svg>"); !bytes.Equal(normalizeViewBox(plain), plain) {
		t.Error("svg without viewBox changed")
	}
}
