package polyline_test

import (
	"fmt"

	"github.com/gogpu/polyline"
)

func ExampleSimplify() {
	pts := []polyline.Point{polyline.Pt(0, 0), polyline.Pt(1, 0.01), polyline.Pt(2, 0)}

	fmt.Println(polyline.Simplify(pts, 0.1))
	fmt.Println(polyline.Simplify(pts, 0.001))
	// Output:
	// [{0 0} {2 0}]
	// [{0 0} {1 0.01} {2 0}]
}

func ExampleSimplifyIndices() {
	pts := []polyline.Point{
		polyline.Pt(0, 0), polyline.Pt(1, 0), polyline.Pt(2, 0),
		polyline.Pt(3, 5),
		polyline.Pt(4, 0), polyline.Pt(5, 0), polyline.Pt(6, 0),
	}
	fmt.Println(polyline.SimplifyIndices(pts, 0.5))
	// Output:
	// [0 2 3 4 6]
}

func ExampleFromSamples() {
	pl := polyline.FromSamples([]float64{0, 0.5, 1, 0.5, 0})
	fmt.Println(pl.Simplify(0.01).Len())
	// Output:
	// 3
}
