package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arl/slicer/geom"
)

// ErrMalformedFacet is returned when an STL facet contributes fewer
// than three vertices before its closing endfacet line.
var ErrMalformedFacet = errors.New("mesh: facet has fewer than three vertices")

// ParseASCIISTL reads the ASCII STL subset described by the external
// interface contract: lines are tokenized by whitespace; runs of lines
// delimited by "endfacet" (case-insensitive, whitespace-tolerant)
// constitute one facet; within a facet, lines whose first token is
// "vertex" contribute the next three whitespace-separated tokens as
// real-number coordinates. Normals, "outer loop"/"endloop", solid/
// endsolid, and any other tokens are ignored. A facet that closes with
// fewer than three vertices is a fatal error.
func ParseASCIISTL(r io.Reader) ([]Facet, error) {
	var facets []Facet
	var verts []geom.Point

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("mesh: malformed vertex line %q", scanner.Text())
			}
			p, err := parseVertex(fields[1:4])
			if err != nil {
				return nil, err
			}
			verts = append(verts, p)
		case "endfacet":
			if len(verts) < 3 {
				return nil, ErrMalformedFacet
			}
			facets = append(facets, NewFacet(verts[0], verts[1], verts[2]))
			verts = verts[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh: reading STL: %w", err)
	}
	return facets, nil
}

func parseVertex(fields []string) (geom.Point, error) {
	coords := make([]float64, 3)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.Point{}, fmt.Errorf("mesh: invalid vertex coordinate %q: %w", f, err)
		}
		coords[i] = v
	}
	return geom.NewPoint(coords[0], coords[1], coords[2]), nil
}
