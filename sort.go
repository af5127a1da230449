package proptable

import "slices"

// SortOrder returns the display order of grid's rows when sorted by
// column. The sort is stable, so rows with equal keys keep their original
// relative order in both directions. Rows without a cell at column sort
// last in either direction. A negative column returns the identity order.
func SortOrder(grid Grid, column int, ascending bool) []int {
	order := make([]int, len(grid))
	for i := range order {
		order[i] = i
	}
	if column < 0 {
		return order
	}

	slices.SortStableFunc(order, func(a, b int) int {
		ea, eb := cellAt(grid[a], column), cellAt(grid[b], column)
		switch na, nb := isEmptyCell(ea), isEmptyCell(eb); {
		case na && nb:
			return 0
		case na:
			return 1
		case nb:
			return -1
		}
		c := ea.CompareTo(eb)
		if !ascending {
			c = -c
		}
		return c
	})
	return order
}

func cellAt(row []Entry, column int) Entry {
	if column >= len(row) {
		return nil
	}
	return row[column]
}
