package main

import (
	"fmt"
	"io"

	"github.com/kasprzak-oleander/polyskel/polygon"
	"github.com/kasprzak-oleander/polyskel/skeleton"
)

func printRing(w io.Writer, label string, r polygon.Ring) {
	fmt.Fprintf(w, "  %s:\n", label)
	for _, c := range r {
		fmt.Fprintf(w, "    %.6f, %.6f\n", c.X, c.Y)
	}
}

func printMultiPolygon(w io.Writer, mp polygon.MultiPolygon) error {
	fmt.Fprintf(w, "polygons: %d\n", len(mp.Polygons))
	for i, p := range mp.Polygons {
		fmt.Fprintf(w, "- polygon %d\n", i)
		printRing(w, "exterior", p.Exterior)
		for j, h := range p.Holes {
			printRing(w, fmt.Sprintf("hole %d", j), h)
		}
	}

	return nil
}

func printSegments(w io.Writer, segments []skeleton.Segment) {
	for _, s := range segments {
		fmt.Fprintf(w, "%.6f,%.6f -> %.6f,%.6f\n", s.From.X, s.From.Y, s.To.X, s.To.Y)
	}
}
