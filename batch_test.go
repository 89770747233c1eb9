package wuikit

import (
	"errors"
	"testing"
	"time"

	"github.com/gonutz/check"
)

type fakeControl struct {
	enabled  bool
	visible  bool
	text     string
	size     Size
	pos      Point
	color    Color
	min, max int
	fmin     float64
	fmax     float64
	from, to time.Time
}

func (c *fakeControl) SetEnabled(e bool)                { c.enabled = e }
func (c *fakeControl) SetVisible(v bool)                { c.visible = v }
func (c *fakeControl) SetText(s string)                 { c.text = s }
func (c *fakeControl) SetSize(w, h int)                 { c.size = Size{w, h} }
func (c *fakeControl) SetPos(x, y int)                  { c.pos = Pt(x, y) }
func (c *fakeControl) Pos() (int, int)                  { return c.pos.X, c.pos.Y }
func (c *fakeControl) SetBackground(col Color)          { c.color = col }
func (c *fakeControl) SetMinMax(min, max int)           { c.min, c.max = min, max }
func (c *fakeControl) SetMinMaxValues(min, max float64) { c.fmin, c.fmax = min, max }
func (c *fakeControl) SetDateRange(min, max time.Time)  { c.from, c.to = min, max }

func TestSingleValueSettersReachEveryControl(t *testing.T) {
	a, b, c := &fakeControl{}, &fakeControl{}, &fakeControl{}

	EnableAll(a, b, c)
	check.Eq(t, []bool{a.enabled, b.enabled, c.enabled}, []bool{true, true, true})
	DisableAll(a, c)
	check.Eq(t, []bool{a.enabled, b.enabled, c.enabled}, []bool{false, true, false})

	ShowAll(a, b)
	check.Eq(t, []bool{a.visible, b.visible, c.visible}, []bool{true, true, false})
	HideAll(b)
	check.Eq(t, b.visible, false)

	SetText("x", a, b, c)
	check.Eq(t, []string{a.text, b.text, c.text}, []string{"x", "x", "x"})
	ClearText(b)
	check.Eq(t, b.text, "")

	SetSize(10, 20, a, c)
	check.Eq(t, a.size, Size{10, 20})
	check.Eq(t, b.size, Size{})

	SetBackgroundColor(RGB(1, 2, 3), b)
	check.Eq(t, b.color, RGB(1, 2, 3))

	SetIntRange(-5, 5, a)
	check.Eq(t, []int{a.min, a.max}, []int{-5, 5})
	SetFloatRange(0.5, 1.5, c)
	check.Eq(t, []float64{c.fmin, c.fmax}, []float64{0.5, 1.5})

	day := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	SetDateRange(day, day.AddDate(0, 1, 0), a, b)
	check.Eq(t, a.from, day)
	check.Eq(t, b.to, day.AddDate(0, 1, 0))
}

func TestSettersWithoutControlsDoNothing(t *testing.T) {
	EnableAll()
	SetText("nothing")
	Apply(nil, func(Enabler) { t.Fatal("called for no control") })
}

func TestIndexAlignedSettersPairByIndex(t *testing.T) {
	a, b := &fakeControl{}, &fakeControl{}

	check.Eq(t, SetTexts([]Texter{a, b}, []string{"first", "second"}), nil)
	check.Eq(t, a.text, "first")
	check.Eq(t, b.text, "second")

	check.Eq(t, SetSizes([]Sizer{a, b}, []Size{{1, 2}, {3, 4}}), nil)
	check.Eq(t, a.size, Size{1, 2})
	check.Eq(t, b.size, Size{3, 4})

	check.Eq(t, SetPositions([]Positioner{b, a}, []Point{{5, 6}, {7, 8}}), nil)
	check.Eq(t, b.pos, Pt(5, 6))
	check.Eq(t, a.pos, Pt(7, 8))

	check.Eq(t, SetBackgroundColors([]ColorSetter{a}, []Color{RGB(9, 9, 9)}), nil)
	check.Eq(t, a.color, RGB(9, 9, 9))

	check.Eq(t, SetTexts(nil, nil), nil)
}

func TestIndexAlignedSettersRejectLengthMismatch(t *testing.T) {
	lengths := [][2]int{{0, 1}, {1, 0}, {0, 5}, {5, 0}, {2, 3}, {3, 2}}
	for _, n := range lengths {
		controls := make([]Texter, n[0])
		for i := range controls {
			controls[i] = &fakeControl{text: "unchanged"}
		}
		texts := make([]string, n[1])
		err := SetTexts(controls, texts)
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("%d controls, %d texts: want ErrLengthMismatch but have %v", n[0], n[1], err)
		}
		for _, c := range controls {
			check.Eq(t, c.(*fakeControl).text, "unchanged")
		}
	}
}

func TestLengthMismatchErrorNamesBothLengths(t *testing.T) {
	err := SetSizes([]Sizer{&fakeControl{}}, []Size{{1, 1}, {2, 2}})
	check.Eq(t, err.Error(), "wuikit: collection size mismatch: 1 controls but 2 values")

	err = ApplyEach([]int{1, 2, 3}, []string{}, func(int, string) {})
	check.Eq(t, errors.Is(err, ErrLengthMismatch), true)
}

type fakeTable struct {
	cells   map[[2]int]string
	cleared int
}

func (t *fakeTable) SetCell(col, row int, s string) {
	if t.cells == nil {
		t.cells = make(map[[2]int]string)
	}
	t.cells[[2]int{col, row}] = s
}

func (t *fakeTable) Clear() {
	t.cells = nil
	t.cleared++
}

func TestFillTableReplacesAllCells(t *testing.T) {
	table := &fakeTable{}
	table.SetCell(5, 5, "old")

	FillTable(table, [][]string{{"a", "b"}, {"c"}})
	check.Eq(t, table.cleared, 1)
	check.Eq(t, table.cells, map[[2]int]string{
		{0, 0}: "a", {1, 0}: "b",
		{0, 1}: "c",
	})

	FillTable(table, nil)
	check.Eq(t, len(table.cells), 0)
}

func TestSetTableRowsPairsByIndex(t *testing.T) {
	a, b := &fakeTable{}, &fakeTable{}
	err := SetTableRows([]Table{a, b}, [][][]string{{{"1"}}, {{"2", "3"}}})
	check.Eq(t, err, nil)
	check.Eq(t, a.cells, map[[2]int]string{{0, 0}: "1"})
	check.Eq(t, b.cells, map[[2]int]string{{0, 0}: "2", {1, 0}: "3"})
}

func TestSetTableRowsRejectsLengthMismatch(t *testing.T) {
	for _, n := range [][2]int{{0, 1}, {1, 0}, {0, 3}, {3, 0}, {2, 1}} {
		tables := make([]Table, n[0])
		for i := range tables {
			tables[i] = &fakeTable{}
		}
		err := SetTableRows(tables, make([][][]string, n[1]))
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("%d tables, %d row sets: want ErrLengthMismatch but have %v", n[0], n[1], err)
		}
		for _, table := range tables {
			check.Eq(t, table.(*fakeTable).cleared, 0)
		}
	}
}
