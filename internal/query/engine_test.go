package query

import (
	"errors"
	"slices"
	"testing"

	"github.com/mrsinham/bedgrid/internal/ward"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadWard(t *testing.T, rows, cols int, patients []ward.Patient) *Engine {
	t.Helper()
	s := ward.NewStore()
	require.NoError(t, s.Load(rows, cols, ward.FromSlice(patients, cols)))
	return New(s)
}

// grid3x3 names the beds Aaa..Iii in row-major order.
func grid3x3() []ward.Patient {
	names := []string{"Aaa", "Bbb", "Ccc", "Ddd", "Eee", "Fff", "Ggg", "Hhh", "Iii"}
	out := make([]ward.Patient, len(names))
	for i, n := range names {
		out[i] = ward.Patient{Name: n, Age: 20 + i, NationalID: "12345678"}
	}
	return out
}

func TestAverageAge(t *testing.T) {
	e := loadWard(t, 2, 2, []ward.Patient{
		{Name: "A", Age: 10}, {Name: "B", Age: 20},
		{Name: "C", Age: 30}, {Name: "D", Age: 40},
	})

	avg, err := e.AverageAge()
	require.NoError(t, err)
	assert.Equal(t, 25.0, avg)
}

func TestAverageAge_Fractional(t *testing.T) {
	e := loadWard(t, 1, 3, []ward.Patient{{Age: 1}, {Age: 2}, {Age: 2}})

	avg, err := e.AverageAge()
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, avg, 1e-12)
}

func TestAverageAge_EmptyWard(t *testing.T) {
	_, err := New(ward.NewStore()).AverageAge()
	assert.True(t, errors.Is(err, ErrEmptyWard))
}

func TestFilterByMinDays(t *testing.T) {
	e := loadWard(t, 2, 2, []ward.Patient{
		{Name: "Ana", DaysAdmitted: 3}, {Name: "Bruno", DaysAdmitted: 6},
		{Name: "Carla", DaysAdmitted: 5}, {Name: "Dario", DaysAdmitted: 10},
	})

	got := slices.Collect(e.FilterByMinDays(5))
	assert.Equal(t, []string{"Bruno", "Dario"}, got)

	assert.Empty(t, slices.Collect(e.FilterByMinDays(10)))
	assert.Len(t, slices.Collect(e.FilterByMinDays(-1)), 4)
}

func TestFilterByMinDays_StopsEarly(t *testing.T) {
	e := loadWard(t, 1, 3, []ward.Patient{
		{Name: "A", DaysAdmitted: 9}, {Name: "B", DaysAdmitted: 9}, {Name: "C", DaysAdmitted: 9},
	})

	var seen []string
	for name := range e.FilterByMinDays(0) {
		seen = append(seen, name)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"A", "B"}, seen)
}

func TestFilterAboveAge(t *testing.T) {
	e := loadWard(t, 2, 2, []ward.Patient{
		{Name: "A", Age: 10, NationalID: "00000001"}, {Name: "B", Age: 20, NationalID: "00000002"},
		{Name: "C", Age: 30, NationalID: "00000003"}, {Name: "D", Age: 40, NationalID: "00000004"},
	})

	avg, err := e.AverageAge()
	require.NoError(t, err)

	got := slices.Collect(e.FilterAboveAge(avg))
	assert.Equal(t, []Identity{
		{Name: "C", NationalID: "00000003"},
		{Name: "D", NationalID: "00000004"},
	}, got)
}

func TestFilterAboveAge_TiesExcluded(t *testing.T) {
	e := loadWard(t, 1, 3, []ward.Patient{{Name: "A", Age: 30}, {Name: "B", Age: 30}, {Name: "C", Age: 30}})

	avg, err := e.AverageAge()
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(e.FilterAboveAge(avg)))
}

func TestFilterAboveAge_FractionalAverage(t *testing.T) {
	// Average is 30.5: the patient aged 30 (the truncated average) is excluded.
	e := loadWard(t, 1, 2, []ward.Patient{{Name: "A", Age: 30}, {Name: "B", Age: 31}})

	avg, err := e.AverageAge()
	require.NoError(t, err)
	got := slices.Collect(e.FilterAboveAge(avg))
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Name)
}

func TestAdjacentTo_Corner(t *testing.T) {
	e := loadWard(t, 3, 3, grid3x3())

	got, err := e.AdjacentTo(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []Neighbor{
		{Pos: ward.Position{Row: 0, Col: 1}, Name: "Bbb"},
		{Pos: ward.Position{Row: 1, Col: 0}, Name: "Ddd"},
		{Pos: ward.Position{Row: 1, Col: 1}, Name: "Eee"},
	}, got)
}

func TestAdjacentTo_Center(t *testing.T) {
	e := loadWard(t, 3, 3, grid3x3())

	got, err := e.AdjacentTo(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aaa", "Bbb", "Ccc", "Ddd", "Fff", "Ggg", "Hhh", "Iii"}, Names(got))
}

func TestAdjacentTo_Edges(t *testing.T) {
	e := loadWard(t, 3, 3, grid3x3())

	tests := []struct {
		row, col int
		want     []string
	}{
		{0, 1, []string{"Aaa", "Ccc", "Ddd", "Eee", "Fff"}},
		{2, 2, []string{"Eee", "Fff", "Hhh"}},
		{1, 0, []string{"Aaa", "Bbb", "Eee", "Ggg", "Hhh"}},
	}
	for _, tc := range tests {
		got, err := e.AdjacentTo(tc.row, tc.col)
		require.NoError(t, err)
		assert.Equal(t, tc.want, Names(got), "AdjacentTo(%d,%d)", tc.row, tc.col)
	}
}

func TestAdjacentTo_SingleBed(t *testing.T) {
	e := loadWard(t, 1, 1, []ward.Patient{{Name: "Solo"}})

	got, err := e.AdjacentTo(0, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAdjacentTo_AnchorOutside(t *testing.T) {
	e := loadWard(t, 3, 3, grid3x3())

	for _, pos := range []ward.Position{{Row: 3, Col: 0}, {Row: 0, Col: 3}, {Row: -1, Col: 1}} {
		_, err := e.AdjacentTo(pos.Row, pos.Col)
		assert.ErrorIs(t, err, ward.ErrOutOfBounds, "AdjacentTo%v", pos)
	}
}

func TestLookup(t *testing.T) {
	e := loadWard(t, 3, 3, grid3x3())

	p, err := e.Lookup(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "Hhh", p.Name)

	_, err = e.Lookup(3, 1)
	assert.ErrorIs(t, err, ward.ErrOutOfBounds)
}

func TestRenderGrid(t *testing.T) {
	e := loadWard(t, 2, 2, []ward.Patient{
		{Name: "Ana"}, {Name: ""},
		{Name: "Bartolome"}, {Name: "Li"},
	})

	assert.Equal(t, [][]string{
		{"Ana", VacantToken},
		{"Bar", "Li"},
	}, e.RenderGrid())
}

func TestRenderGrid_EmptyWard(t *testing.T) {
	assert.Empty(t, New(ward.NewStore()).RenderGrid())
}

func TestToken(t *testing.T) {
	tests := map[string]string{
		"Ana":   "Ana",
		"":      "VAC",
		"Jo":    "Jo",
		"Maria": "Mar",
	}
	for name, want := range tests {
		assert.Equal(t, want, Token(name), "Token(%q)", name)
	}
}
