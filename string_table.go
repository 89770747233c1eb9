//go:build windows

package wuikit

import (
	"syscall"
	"unsafe"

	"github.com/gonutz/w32"
)

// NewStringTable returns a table with one column per header.
func NewStringTable(header1 string, headers ...string) *StringTable {
	return &StringTable{
		headers:  append([]string{header1}, headers...),
		selected: -1,
	}
}

// StringTable is a read-only grid of text cells with a header row. Cells
// are kept while the table has no window and shown once it is created.
type StringTable struct {
	textControl
	headers  []string
	rows     [][]string
	selected int
	onChange func(row int)
}

var _ Table = (*StringTable)(nil)

func (t *StringTable) create(id int) {
	t.textControl.create(
		id,
		w32.WS_EX_CLIENTEDGE,
		"SysListView32",
		w32.WS_TABSTOP|w32.LVS_REPORT|w32.LVS_SINGLESEL|w32.LVS_NOSORTHEADER|
			w32.LVS_SHOWSELALWAYS,
	)
	w32.SendMessage(t.handle, w32.LVM_SETEXTENDEDLISTVIEWSTYLE, 0,
		w32.LVS_EX_FULLROWSELECT|w32.LVS_EX_DOUBLEBUFFER|w32.LVS_EX_GRIDLINES)
	t.insertColumns()
	for r, row := range t.rows {
		t.insertRow(r)
		for c, s := range row {
			t.setItemText(c, r, s)
		}
	}
}

// insertColumns sizes every column to fit its header plus a margin, headers
// are cut off otherwise.
func (t *StringTable) insertColumns() {
	hdc := w32.GetDC(t.handle)
	defer w32.ReleaseDC(t.handle, hdc)
	for i, h := range t.headers {
		text, _ := syscall.UTF16PtrFromString(h)
		width := int32(40)
		if size, ok := w32.GetTextExtentPoint32(hdc, h); ok {
			width = max(width, size.CX+16)
		}
		w32.SendMessage(t.handle, w32.LVM_INSERTCOLUMN, uintptr(i), uintptr(unsafe.Pointer(
			&w32.LVCOLUMN{
				Mask:     w32.LVCF_FMT | w32.LVCF_WIDTH | w32.LVCF_TEXT | w32.LVCF_SUBITEM,
				Fmt:      w32.LVCFMT_CENTER,
				Cx:       width,
				PszText:  text,
				ISubItem: int32(i),
			})))
	}
}

func (t *StringTable) insertRow(row int) {
	w32.SendMessage(t.handle, w32.LVM_INSERTITEM, 0,
		uintptr(unsafe.Pointer(&w32.LVITEM{IItem: int32(row)})))
}

func (t *StringTable) setItemText(col, row int, s string) {
	text, _ := syscall.UTF16PtrFromString(s)
	w32.SendMessage(t.handle, w32.LVM_SETITEMTEXT, uintptr(row),
		uintptr(unsafe.Pointer(&w32.LVITEM{
			Mask:     w32.LVIF_TEXT,
			PszText:  text,
			ISubItem: int32(col),
		})))
}

// SetCell sets the text in column col of row row. Columns outside the
// headers are ignored, rows are added up to row.
func (t *StringTable) SetCell(col, row int, s string) {
	if col < 0 || col >= len(t.headers) || row < 0 {
		return
	}
	for len(t.rows) <= row {
		t.rows = append(t.rows, make([]string, len(t.headers)))
		if t.handle != 0 {
			t.insertRow(len(t.rows) - 1)
		}
	}
	t.rows[row][col] = s
	if t.handle != 0 {
		t.setItemText(col, row, s)
	}
}

// Cell returns the text in column col of row row, "" outside the table.
func (t *StringTable) Cell(col, row int) string {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= len(t.headers) {
		return ""
	}
	return t.rows[row][col]
}

func (t *StringTable) RowCount() int {
	return len(t.rows)
}

func (t *StringTable) ColCount() int {
	return len(t.headers)
}

func (t *StringTable) DeleteRow(row int) {
	if row < 0 || row >= len(t.rows) {
		return
	}
	t.rows = append(t.rows[:row], t.rows[row+1:]...)
	if t.handle != 0 {
		w32.SendMessage(t.handle, w32.LVM_DELETEITEM, uintptr(row), 0)
	}
}

// Clear removes all rows, the headers stay.
func (t *StringTable) Clear() {
	if t.handle != 0 {
		for i := len(t.rows) - 1; i >= 0; i-- {
			w32.SendMessage(t.handle, w32.LVM_DELETEITEM, uintptr(i), 0)
		}
	}
	t.rows = nil
	t.selected = -1
}

// SelectedRow returns the index of the selected row or -1.
func (t *StringTable) SelectedRow() int {
	if t.handle != 0 {
		t.selected = int(int32(w32.SendMessage(t.handle, w32.LVM_GETSELECTIONMARK, 0, 0)))
	}
	return t.selected
}

func (t *StringTable) SetOnSelectionChange(f func(row int)) {
	t.onChange = f
}

func (t *StringTable) handleNotify(code uint32, lParam uintptr) {
	if code == lvnItemChanged && t.onChange != nil {
		t.onChange(t.SelectedRow())
	}
}
