// Package imaging provides the image operations behind the collage builder.
//
// This package implements decoding with a template cache, region cropping,
// per-row height normalization, row concatenation, grid padding and JPEG
// output. All operations work with standard Go image.Image types and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Coordinate System
//
// Regions are image.Rectangle values: Min is inclusive, Max is exclusive.
// A region's width is Max.X-Min.X and its height is Max.Y-Min.Y.
//
// # Immutability
//
// No function in this package modifies an image passed to it. Cropping,
// scaling, concatenation and padding always return a new image, so a source
// handed to one stage can safely be shared with another.
//
// # Building a Collage
//
//	row := imaging.NewRow()
//	row.Add(a)
//	row.Add(b)
//	strip, err := row.Finalize()
//	if err != nil {
//	    return err
//	}
//	grid := imaging.NewGrid(color.Black)
//	grid.Append(strip)
//	collage, err := grid.Compose()
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Crop regions outside image bounds or without area
//   - Empty rows or grids
//   - File I/O errors during loading or saving
package imaging
