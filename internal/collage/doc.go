// Package collage turns marker-framed screenshots into a single tiled image.
//
// For every input the Tiler decodes the image, locates the tl, tr, bl and br
// corner markers, and crops to the bounding box of the four matches. The
// crops are then laid out in rows whose width comes from a fixed column
// table (see Columns), each row scaled to its tallest member, and the rows
// are stacked into one JPEG.
//
// # Failure Handling
//
// Each image is processed independently and yields a Result. By default an
// image that cannot be decoded, matched or cropped is skipped with a warning;
// Strict mode aborts on the first failure instead. Configuration problems
// (missing templates, unwritable output directory) always abort before any
// image is read. Every error carries a Kind; use KindOf to inspect it.
package collage
