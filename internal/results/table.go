package results

// ZipRow pairs values with labels by position. when the lengths differ the
// row is truncated to the shorter of the two and matched is false. a label
// that repeats keeps its first position and takes the last value.
func ZipRow(labels, values []string) (row Row, matched bool) {
	n := min(len(labels), len(values))
	row = make(Row, 0, n)
	for i := 0; i < n; i++ {
		row.Set(labels[i], values[i])
	}
	return row, len(labels) == len(values)
}

// ZipTable converts the data rows of a table into one Row per data row keyed
// by the header labels. it returns how many rows did not match the header
// length, those rows are still included in truncated form.
func ZipTable(labels []string, rows [][]string) (out []Row, mismatched int) {
	out = make([]Row, 0, len(rows))
	for _, values := range rows {
		row, matched := ZipRow(labels, values)
		if !matched {
			mismatched++
		}
		out = append(out, row)
	}
	return out, mismatched
}
