package collage

// DefaultColumns is the column count for any image count not in columnTable.
const DefaultColumns = 6

// columnTable maps the number of tiled images to the number of columns.
// The breakpoints are a fixed table, not a formula; counts without an entry
// use DefaultColumns.
var columnTable = map[int]int{
	4: 2,
	5: 3,
	6: 3,
	7: 4,
}

// Columns returns how many images go in each row of a collage of n images.
// The last row may hold fewer.
func Columns(n int) int {
	if c, ok := columnTable[n]; ok {
		return c
	}
	return DefaultColumns
}
