// Package main provides the entry point for the tile CLI.
//
// tile crops screenshots framed by four corner markers and stitches the
// crops into a single grid collage saved in the pictures directory.
//
// Usage:
//
//	tile shot1.png shot2.png shot3.png shot4.png
//
// See --help for all available options.
package main

import "os"

func main() {
	os.Exit(Execute())
}
