package wuikit

import (
	"errors"
	"testing"

	"github.com/gonutz/check"
)

type fakeList struct {
	items    []string
	selected int
}

func (l *fakeList) Items() []string         { return l.items }
func (l *fakeList) SetItems(items []string) { l.items = items }
func (l *fakeList) SelectedIndex() int      { return l.selected }
func (l *fakeList) SetSelectedIndex(i int)  { l.selected = i }

func TestFillItemsReplacesItemsAndSelects(t *testing.T) {
	l := &fakeList{items: []string{"old"}, selected: 0}

	FillItems(l, []string{"a", "b", "c"}, 2)
	check.Eq(t, l.items, []string{"a", "b", "c"})
	check.Eq(t, l.selected, 2)

	FillItems(l, []string{"x"}, 5)
	check.Eq(t, l.selected, -1)

	FillItems(l, []string{"x"}, -1)
	check.Eq(t, l.selected, -1)
}

func TestFillItemsFuncFormatsValues(t *testing.T) {
	l := &fakeList{}
	FillItemsFunc(l, []int{1, 20, 300}, nil)
	check.Eq(t, l.items, []string{"1", "20", "300"})
	check.Eq(t, l.selected, -1)

	type city struct {
		name string
		zip  int
	}
	FillItemsFunc(l, []city{{"Berlin", 10115}}, func(c city) string { return c.name })
	check.Eq(t, l.items, []string{"Berlin"})
}

func TestSelectItemFindsFirstMatch(t *testing.T) {
	l := &fakeList{items: []string{"a", "b", "b"}, selected: 0}

	check.Eq(t, IndexOfItem(l, "b"), 1)
	check.Eq(t, IndexOfItem(l, "z"), -1)

	check.Eq(t, SelectItem(l, "b"), true)
	check.Eq(t, l.selected, 1)

	check.Eq(t, SelectItem(l, "missing"), false)
	check.Eq(t, l.selected, 1)
}

func TestSelectedItem(t *testing.T) {
	l := &fakeList{items: []string{"a", "b"}, selected: 1}
	item, ok := SelectedItem(l)
	check.Eq(t, item, "b")
	check.Eq(t, ok, true)

	for _, i := range []int{-1, 2} {
		l.selected = i
		item, ok = SelectedItem(l)
		check.Eq(t, item, "")
		check.Eq(t, ok, false)
	}
}

func TestSetItemListsPairsListsWithItems(t *testing.T) {
	a, b := &fakeList{selected: 0}, &fakeList{selected: 0}
	err := SetItemLists([]ItemList{a, b}, [][]string{{"1"}, {"2", "3"}})
	check.Eq(t, err, nil)
	check.Eq(t, a.items, []string{"1"})
	check.Eq(t, b.items, []string{"2", "3"})
	check.Eq(t, a.selected, -1)

	err = SetItemLists([]ItemList{a}, nil)
	check.Eq(t, errors.Is(err, ErrLengthMismatch), true)
	check.Eq(t, a.items, []string{"1"})
}

func TestClearItems(t *testing.T) {
	a := &fakeList{items: []string{"x"}, selected: 0}
	ClearItems(a)
	check.Eq(t, len(a.items), 0)
	check.Eq(t, a.selected, -1)
}
