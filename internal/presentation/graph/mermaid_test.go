package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/lcsviz/internal/presentation/graph"
	"github.com/aretw0/lcsviz/internal/runtime"
	"github.com/aretw0/lcsviz/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	classic := runtime.Compute([]rune("ABCBDAB"), []rune("BDCABA"))

	tests := []struct {
		name     string
		res      domain.Result
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Trail Nodes",
			res:  classic,
			contains: []string{
				"graph TD\n",
				`c7_6["(7,6) = 4"]`,
				`c7_5(("B (7,5) = 4"))`,
				`c5_3["(5,3) = 2"]`,
				`c4_1(("B (4,1) = 1"))`,
			},
			excludes: []string{"c3_0", "Overlay Styles"},
		},
		{
			name: "Edge Labels",
			res:  classic,
			contains: []string{
				`c7_6 -- "left" --> c7_5`,
				`c7_5 -- "match B" --> c6_4`,
				`c5_3 -- "left" --> c5_2`,
			},
		},
		{
			name: "Match Classes",
			res:  classic,
			contains: []string{
				"class c4_1 match;",
				"class c7_5 match;",
			},
			excludes: []string{"class c7_6 match;"},
		},
		{
			name:    "Path Overlay",
			res:     classic,
			overlay: &graph.Overlay{ShowPath: true},
			contains: []string{
				"classDef path",
				"class c6_4 path;",
				"class c5_2 path;",
			},
			excludes: []string{"class c5_3 path;", "current;"},
		},
		{
			name:     "Current Overlay",
			res:      classic,
			overlay:  &graph.Overlay{Current: &domain.Cell{I: 5, J: 3}},
			contains: []string{"class c5_3 current;"},
			excludes: []string{"class c6_4 path;"},
		},
		{
			name:     "Current Off Trail",
			res:      classic,
			overlay:  &graph.Overlay{Current: &domain.Cell{I: 1, J: 1}},
			excludes: []string{"class c1_1 current;"},
		},
		{
			name:     "Empty",
			res:      runtime.Compute(nil, []rune("XYZ")),
			contains: []string{`empty["no common subsequence"]`},
		},
		{
			name:     "Quote Escaping",
			res:      runtime.Compute([]rune(`"`), []rune(`"`)),
			contains: []string{`c1_1(("' (1,1) = 1"))`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.res, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() = \n%v\nUnwanted substring: %v", got, unwanted)
				}
			}
		})
	}
}

func TestOverlayFor(t *testing.T) {
	fill := domain.FillEvent{Cell: domain.Cell{I: 2, J: 3}, Value: 1, Kind: domain.KindExtend}
	o := graph.OverlayFor(domain.Frame{Highlight: domain.Highlight{Current: &fill}})
	if o.ShowPath || o.Current == nil || *o.Current != fill.Cell {
		t.Errorf("unexpected overlay %+v", o)
	}

	o = graph.OverlayFor(domain.Frame{Position: domain.Position{ShowPath: true}})
	if !o.ShowPath || o.Current != nil {
		t.Errorf("unexpected overlay %+v", o)
	}
}
