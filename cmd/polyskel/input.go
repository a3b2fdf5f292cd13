package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kasprzak-oleander/polyskel/geom"
	"github.com/kasprzak-oleander/polyskel/polygon"
)

// yamlRing is one ring as a flat list of [x, y] pairs.
type yamlRing [][2]float64

type yamlPolygon struct {
	Exterior yamlRing   `yaml:"exterior"`
	Holes    []yamlRing `yaml:"holes"`
}

type yamlDocument struct {
	Polygons []yamlPolygon `yaml:"polygons"`
}

func toRing(r yamlRing) polygon.Ring {
	ring := make(polygon.Ring, len(r))
	for i, pt := range r {
		ring[i] = geom.Coordinate{X: pt[0], Y: pt[1]}
	}

	return ring
}

// loadFile reads a YAML polygon file (one document, a `polygons` list of
// exterior+holes ring lists) into a MultiPolygon.
func loadFile(path string) (polygon.MultiPolygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return polygon.MultiPolygon{}, err
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return polygon.MultiPolygon{}, err
	}

	polys := make([]polygon.Polygon, 0, len(doc.Polygons))
	for _, yp := range doc.Polygons {
		holes := make([]polygon.Ring, 0, len(yp.Holes))
		for _, h := range yp.Holes {
			holes = append(holes, toRing(h))
		}

		p, err := polygon.NewPolygon(toRing(yp.Exterior), holes...)
		if err != nil {
			return polygon.MultiPolygon{}, err
		}
		polys = append(polys, p)
	}

	return polygon.MultiPolygon{Polygons: polys}, nil
}
