package jsontable

// Table is a header row followed by data rows aligned to it.
type Table [][]Value

// Header returns the header row as strings.
func (t Table) Header() []string {
	if len(t) == 0 {
		return nil
	}
	header := make([]string, len(t[0]))
	for i, v := range t[0] {
		header[i] = v.Text()
	}
	return header
}

// Strings renders every cell with Value.Text.
func (t Table) Strings() [][]string {
	out := make([][]string, len(t))
	for i, row := range t {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = v.Text()
		}
		out[i] = cells
	}
	return out
}

// ToTable flattens v into a table.
//
// Row-sources are chosen as follows: the elements of v when v is an array;
// otherwise the elements of v[startFromKey] when that member exists and is an
// array; otherwise v itself. The header is the union of all flattened paths in
// first-seen order. Cells missing from a row, and null cells, are "".
// When no row-source has any path the result is a single empty header row.
func ToTable(v Value, startFromKey string) Table {
	sources := rowSources(v, startFromKey)

	seen := make(map[string]bool)
	var header []string
	records := make([]*Record, len(sources))
	for i, src := range sources {
		rec := Flatten(src, "")
		for _, k := range rec.Keys() {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
		records[i] = rec
	}

	// Rows of an empty header carry no cells.
	if len(header) == 0 {
		return Table{{}}
	}

	table := make(Table, 0, len(records)+1)
	headerRow := make([]Value, len(header))
	for i, k := range header {
		headerRow[i] = String(k)
	}
	table = append(table, headerRow)

	for _, rec := range records {
		row := make([]Value, len(header))
		for i, k := range header {
			val, ok := rec.Get(k)
			if !ok || val.kind == KindNull {
				val = String("")
			}
			row[i] = val
		}
		table = append(table, row)
	}

	return table
}

// Merge combines tables into one whose header is the union of their headers
// in first-seen order. Data rows keep their order and are realigned by column
// name; columns a row lacks are "". Tables with an empty header contribute no
// rows, and when no table has a column the result is a single empty header row.
func Merge(tables ...Table) Table {
	index := make(map[string]int)
	var header []string
	for _, t := range tables {
		for _, name := range t.Header() {
			if _, ok := index[name]; !ok {
				index[name] = len(header)
				header = append(header, name)
			}
		}
	}

	if len(header) == 0 {
		return Table{{}}
	}

	headerRow := make([]Value, len(header))
	for i, name := range header {
		headerRow[i] = String(name)
	}
	out := Table{headerRow}

	for _, t := range tables {
		if len(t) < 2 {
			continue
		}
		columns := t.Header()
		for _, src := range t[1:] {
			row := make([]Value, len(header))
			for i := range row {
				row[i] = String("")
			}
			for j, v := range src {
				if j < len(columns) {
					row[index[columns[j]]] = v
				}
			}
			out = append(out, row)
		}
	}

	return out
}

func rowSources(v Value, startFromKey string) []Value {
	if v.kind == KindArray {
		return v.items
	}
	if startFromKey != "" {
		if nested, ok := v.Get(startFromKey); ok && nested.kind == KindArray {
			return nested.items
		}
	}
	return []Value{v}
}
