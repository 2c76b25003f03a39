// Command contourgen is a thin command-line driver over the contour
// package: it loads a TOML drawing file (a flat list of primitives)
// and an optional TOML config overlay, runs the reconstruction
// pipeline, and prints a summary of the resulting shapes.
package main

func main() {
	Execute()
}
