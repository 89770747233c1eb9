package wuikit

import "fmt"

// ItemList is a control that shows a list of strings with at most one of them
// selected, like ComboBox and ListBox. A selected index of -1 means nothing is
// selected.
type ItemList interface {
	Items() []string
	SetItems(items []string)
	SelectedIndex() int
	SetSelectedIndex(i int)
}

// FillItems replaces the list's items and selects the one at index selected.
// Pass -1 to select nothing. An index outside the items selects nothing
// either.
func FillItems(list ItemList, items []string, selected int) {
	list.SetItems(items)
	if selected < 0 || selected >= len(items) {
		selected = -1
	}
	list.SetSelectedIndex(selected)
}

// FillItemsFunc fills the list with one item per value, formatted by format.
// If format is nil, values are formatted with fmt.Sprint.
func FillItemsFunc[T any](list ItemList, values []T, format func(T) string) {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = format(v)
	}
	FillItems(list, items, -1)
}

// IndexOfItem returns the index of the first item equal to s or -1.
func IndexOfItem(list ItemList, s string) int {
	for i, item := range list.Items() {
		if item == s {
			return i
		}
	}
	return -1
}

// SelectItem selects the first item equal to s. If there is no such item, the
// selection is left unchanged and false is returned.
func SelectItem(list ItemList, s string) bool {
	i := IndexOfItem(list, s)
	if i == -1 {
		return false
	}
	list.SetSelectedIndex(i)
	return true
}

// SelectedItem returns the text of the selected item. ok is false if nothing
// is selected.
func SelectedItem(list ItemList) (item string, ok bool) {
	i := list.SelectedIndex()
	items := list.Items()
	if i < 0 || i >= len(items) {
		return "", false
	}
	return items[i], true
}

// SetItemLists fills lists[i] with items[i], selecting nothing.
func SetItemLists(lists []ItemList, items [][]string) error {
	return ApplyEach(lists, items, func(l ItemList, items []string) {
		FillItems(l, items, -1)
	})
}

// ClearItems removes all items from all lists.
func ClearItems(lists ...ItemList) {
	Apply(lists, func(l ItemList) { FillItems(l, nil, -1) })
}

// Table is a grid of text cells, like StringTable. Setting a cell below the
// last row adds rows as needed.
type Table interface {
	SetCell(col, row int, s string)
	Clear()
}

// FillTable replaces the table's contents with rows, rows[r][c] going into
// column c of row r. Rows may have different lengths.
func FillTable(t Table, rows [][]string) {
	t.Clear()
	for r, row := range rows {
		for c, s := range row {
			t.SetCell(c, r, s)
		}
	}
}

// SetTableRows fills tables[i] with rows[i]. Nothing is changed if the slices
// differ in length.
func SetTableRows(tables []Table, rows [][][]string) error {
	return ApplyEach(tables, rows, FillTable)
}
