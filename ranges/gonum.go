package ranges

import "gonum.org/v1/gonum/mat"

// Vector returns an indexable range over the elements of v.
func Vector(v *mat.VecDense) Range[float64] {
	return Index[float64](vectorIndexer{v})
}

type vectorIndexer struct {
	v *mat.VecDense
}

func (x vectorIndexer) Len() int             { return x.v.Len() }
func (x vectorIndexer) At(i int) float64     { return x.v.AtVec(i) }
func (x vectorIndexer) Set(i int, f float64) { x.v.SetVec(i, f) }

/*
Rows returns an indexable range over the rows of m.

At returns a slice that shares its storage with m, so that writes to the
elements of a row modify the matrix. Set copies a whole row into m.
*/
func Rows(m *mat.Dense) Range[[]float64] {
	return Index[[]float64](rowIndexer{m})
}

type rowIndexer struct {
	m *mat.Dense
}

func (x rowIndexer) Len() int {
	rows, _ := x.m.Dims()
	return rows
}

func (x rowIndexer) At(i int) []float64     { return x.m.RawRowView(i) }
func (x rowIndexer) Set(i int, r []float64) { x.m.SetRow(i, r) }
