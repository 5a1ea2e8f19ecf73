package doc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nesclex/internal/source"
)

func TestSlotTakeConsumes(t *testing.T) {
	var s Slot
	_, ok := s.Take()
	assert.False(t, ok)

	loc := source.NewLocation("BlinkC.nc", 3)
	s.Capture(" short.\n\nlong part ", loc)
	raw, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, " short.\n\nlong part ", raw)
	assert.True(t, s.Pending(), "Peek must not consume")

	d, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, loc, d.Loc)
	short, long := d.Split()
	assert.Equal(t, "short.", short)
	assert.Equal(t, "long part", long)

	_, ok = s.Take()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestSlotLastCaptureWins(t *testing.T) {
	var s Slot
	s.Capture("first", source.NewLocation("a.nc", 1))
	s.Capture("second", source.NewLocation("a.nc", 9))
	d, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, "second", d.Text)
	assert.Equal(t, uint32(9), d.Loc.Line)
}

func TestSlotBlankLineDoc(t *testing.T) {
	var s Slot
	s.CaptureLine("", source.NewLocation("a.nc", 1))
	assert.False(t, s.Pending(), "a lone blank /// must not take the slot")

	s.Capture("block doc.", source.NewLocation("a.nc", 3))
	s.CaptureLine("  ", source.NewLocation("a.nc", 4))
	d, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, "block doc.", d.Text)

	// внутри серии пустая строка остаётся разделителем абзацев
	s.CaptureLine(" Boots.", source.NewLocation("a.nc", 6))
	s.CaptureLine("", source.NewLocation("a.nc", 7))
	s.CaptureLine(" Then runs.", source.NewLocation("a.nc", 8))
	d, _ = s.Take()
	assert.Equal(t, " Boots.\n\n Then runs.", d.Text)
}

func TestSlotMergesAdjacentLineDocs(t *testing.T) {
	var s Slot
	s.CaptureLine(" Post a task.", source.NewLocation("a.nc", 4))
	s.CaptureLine(" Runs later.", source.NewLocation("a.nc", 5))
	d, _ := s.Take()
	assert.Equal(t, " Post a task.\n Runs later.", d.Text)
	assert.Equal(t, uint32(5), d.Loc.Line)

	// разрыв в строках: новый docstring
	s.CaptureLine(" one", source.NewLocation("a.nc", 4))
	s.CaptureLine(" two", source.NewLocation("a.nc", 7))
	d, _ = s.Take()
	assert.Equal(t, " two", d.Text)

	// блочный комментарий между ними прерывает склейку
	s.CaptureLine(" one", source.NewLocation("a.nc", 1))
	s.Capture(" block", source.NewLocation("a.nc", 2))
	s.CaptureLine(" three", source.NewLocation("a.nc", 3))
	d, _ = s.Take()
	assert.Equal(t, " three", d.Text)
}
