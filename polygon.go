package affinetool

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"golang.org/x/image/math/f64"
)

// Vertex is a single point in the plane.
type Vertex struct {
	X float64
	Y float64
}

// MarshalJSON writes the vertex as a two element array [x, y].
func (v Vertex) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{v.X, v.Y})
}

// UnmarshalJSON reads a vertex from a two element array [x, y].
func (v *Vertex) UnmarshalJSON(data []byte) error {
	var xy []float64
	err := json.Unmarshal(data, &xy)
	if err != nil {
		return err
	}
	if len(xy) != 2 {
		return NewValidationError("vertex must have 2 coordinates, got %d", len(xy))
	}
	v.X = xy[0]
	v.Y = xy[1]
	return nil
}

// Polygon is an ordered sequence of vertices.
//
// The order defines the edges. A closed polygon repeats the first vertex
// at the end.
type Polygon []Vertex

// Canonical returns the polygon that every transformation starts from.
//
// Each call returns a new slice.
func Canonical() Polygon {
	return Polygon{
		{-2, 2.5},
		{2, 1.7},
		{0, 0},
		{2, -1.7},
		{-2, -2.5},
		{-2, 2.5},
	}
}

// ReadPolygon decodes a polygon from JSON, e.g. [[0,0],[1,0],[0,1],[0,0]],
// and validates it.
func ReadPolygon(r io.Reader) (Polygon, error) {
	var p Polygon
	err := json.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, Wrap(err, "failed to decode polygon")
	}

	err = p.Validate()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks that p is a closed ring with at least three corners.
func (p Polygon) Validate() error {
	if len(p) < 4 {
		return NewValidationError("polygon needs at least 4 vertices, got %d", len(p))
	}
	if !p.Closed() {
		return NewValidationError("polygon is not closed: first %v != last %v", p[0], p[len(p)-1])
	}
	return nil
}

// Closed tells if the first and the last vertex are identical.
func (p Polygon) Closed() bool {
	if len(p) == 0 {
		return false
	}
	return p[0] == p[len(p)-1]
}

// Bounds returns the smallest rectangle containing all vertices,
// as min and max corner.
func (p Polygon) Bounds() (Vertex, Vertex) {
	if len(p) == 0 {
		return Vertex{}, Vertex{}
	}

	lo := Vertex{math.Inf(1), math.Inf(1)}
	hi := Vertex{math.Inf(-1), math.Inf(-1)}
	for _, v := range p {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
	}
	return lo, hi
}

// Copy returns an independent copy of p.
func (p Polygon) Copy() Polygon {
	if p == nil {
		return nil
	}
	c := make(Polygon, len(p))
	copy(c, p)
	return c
}

func (p Polygon) String() string {
	return fmt.Sprintf("%v", []Vertex(p))
}

// Homogeneous holds one point per row as (x, y, 1).
type Homogeneous []f64.Vec3

// Homogenize converts p into homogeneous coordinates.
func Homogenize(p Polygon) Homogeneous {
	hm := make(Homogeneous, len(p))
	for i, v := range p {
		hm[i] = f64.Vec3{v.X, v.Y, 1}
	}
	return hm
}

// Project drops the homogeneous column and returns the 2D vertices.
func (hm Homogeneous) Project() Polygon {
	p := make(Polygon, len(hm))
	for i, row := range hm {
		p[i] = Vertex{X: row[0], Y: row[1]}
	}
	return p
}
