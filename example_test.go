package squircle_test

import (
	"fmt"

	"honnef.co/go/squircle"
)

func ExampleSVGPath() {
	// The same rectangle and corner radius twice: once as a plain rounded
	// rectangle and once fully smoothed, to make the difference between the
	// two corner profiles visible.
	rounded := squircle.SVGPath(squircle.Params{
		Width:        200,
		Height:       200,
		CornerRadius: 50,
	})
	smooth := squircle.SVGPath(squircle.Params{
		Width:           200,
		Height:          200,
		CornerRadius:    50,
		CornerSmoothing: 1,
	})

	fmt.Println(`<svg viewBox="0 0 200 200" xmlns="http://www.w3.org/2000/svg">`)
	fmt.Printf(`<path d="%s" fill="#CCC" />`, rounded)
	fmt.Println()
	fmt.Printf(`<path d="%s" fill="none" stroke="#639" stroke-width="2" />`, smooth)
	fmt.Println()
	fmt.Println("</svg>")

	// Output:
	// <svg viewBox="0 0 200 200" xmlns="http://www.w3.org/2000/svg">
	// <path d="M 150.0000 0.0000 c 0.0000 0.0000 0.0000 0.0000 0.0000 0.0000 a 50.0000 50.0000 0 0 1 50.0000 50.0000 c 0.0000 0.0000 0.0000 0.0000 0.0000 0.0000 L 200.0000 150.0000 c 0.0000 0.0000 0.0000 0.0000 0.0000 0.0000 a 50.0000 50.0000 0 0 1 -50.0000 50.0000 c 0.0000 0.0000 0.0000 0.0000 0.0000 0.0000 L 50.0000 200.0000 c 0.0000 0.0000 0.0000 0.0000 0.0000 0.0000 a 50.0000 50.0000 0 0 1 -50.0000 -50.0000 c 0.0000 0.0000 0.0000 0.0000 0.0000 0.0000 L 0.0000 50.0000 c 0.0000 0.0000 0.0000 0.0000 0.0000 0.0000 a 50.0000 50.0000 0 0 1 50.0000 -50.0000 c 0.0000 0.0000 0.0000 0.0000 0.0000 0.0000 Z" fill="#CCC" />
	// <path d="M 100.0000 0.0000 c 47.1405 0.0000 70.7107 0.0000 85.3553 14.6447 a 50.0000 50.0000 0 0 1 0.0000 0.0000 c 14.6447 14.6447 14.6447 38.2149 14.6447 85.3553 L 200.0000 100.0000 c 0.0000 47.1405 0.0000 70.7107 -14.6447 85.3553 a 50.0000 50.0000 0 0 1 0.0000 0.0000 c -14.6447 14.6447 -38.2149 14.6447 -85.3553 14.6447 L 100.0000 200.0000 c -47.1405 0.0000 -70.7107 0.0000 -85.3553 -14.6447 a 50.0000 50.0000 0 0 1 0.0000 0.0000 c -14.6447 -14.6447 -14.6447 -38.2149 -14.6447 -85.3553 L 0.0000 100.0000 c 0.0000 -47.1405 0.0000 -70.7107 14.6447 -85.3553 a 50.0000 50.0000 0 0 1 0.0000 0.0000 c 14.6447 -14.6447 38.2149 -14.6447 85.3553 -14.6447 Z" fill="none" stroke="#639" stroke-width="2" />
	// </svg>
}
