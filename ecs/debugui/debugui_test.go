package debugui

import (
	"iter"
	"reflect"
	"testing"
	"time"

	"github.com/plus3/snake/ecs"
	"github.com/stretchr/testify/assert"
)

type testWorld struct{}

type marker struct {
	Name   string
	X, Y   int
	Weight float64
	Active bool
	Count  uint8
	Tags   []string
	Next   *marker
	hidden int
}

func markerSource(arena *ecs.Arena[marker]) Source {
	return SourceOf("markers", func() iter.Seq2[ecs.EntityId, *marker] { return arena.Iter() })
}

func TestImguiSystemDefersRenders(t *testing.T) {
	var rendered []string
	system := &ImguiSystem[testWorld]{
		IO: func() ImguiInputState { return ImguiInputState{WantCaptureKeyboard: true} },
	}
	system.Add(func() { rendered = append(rendered, "first") })
	system.Add(func() { rendered = append(rendered, "second") })

	frame := &ecs.UpdateFrame[testWorld]{Commands: &ecs.Commands{}, World: &testWorld{}}
	system.Execute(frame)

	assert.Empty(t, rendered, "renders wait for the flush")
	assert.Equal(t, 2, frame.Commands.Pending())
	assert.True(t, system.Input.WantCaptureKeyboard)
	assert.False(t, system.Input.WantCaptureMouse)

	frame.Commands.Flush(nil)
	assert.Equal(t, []string{"first", "second"}, rendered)
}

func TestReflectionCacheFields(t *testing.T) {
	cache := NewReflectionCache()
	fields := cache.Fields(reflect.TypeOf(marker{}))

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Name", "X", "Y", "Weight", "Active", "Count", "Tags", "Next"}, names)

	next := fields[len(fields)-1]
	assert.True(t, next.IsPointer)
	assert.Equal(t, reflect.Struct, next.Kind())

	assert.Empty(t, cache.Fields(reflect.TypeOf(42)))

	again := cache.Fields(reflect.TypeOf(marker{}))
	assert.Same(t, &fields[0], &again[0], "cached slice is reused")
}

func TestAssign(t *testing.T) {
	m := &marker{}
	val := reflect.ValueOf(m).Elem()

	assert.True(t, assign(val.FieldByName("X"), int64(-4)))
	assert.True(t, assign(val.FieldByName("Count"), int64(200)))
	assert.True(t, assign(val.FieldByName("Weight"), 2.5))
	assert.True(t, assign(val.FieldByName("Active"), true))
	assert.True(t, assign(val.FieldByName("Name"), "apple"))

	assert.Equal(t, marker{Name: "apple", X: -4, Weight: 2.5, Active: true, Count: 200}, *m)

	assert.False(t, assign(val.FieldByName("Count"), int64(300)), "overflow")
	assert.False(t, assign(val.FieldByName("Count"), int64(-1)), "negative into unsigned")
	assert.False(t, assign(val.FieldByName("Name"), 1.0), "kind mismatch")
	assert.False(t, assign(val.FieldByName("hidden"), int64(1)), "unexported")
	assert.False(t, assign(reflect.ValueOf(marker{}).Field(1), int64(1)), "not addressable")
	assert.Equal(t, uint8(200), m.Count)
}

func TestEntityBrowser(t *testing.T) {
	arena := ecs.NewArena[marker](3)
	apple := arena.Spawn(marker{Name: "apple", X: 1})
	pear := arena.Spawn(marker{Name: "pear", X: 2})
	arena.Spawn(marker{Name: "plum", X: 3})

	browser := NewEntityBrowser(10, markerSource(arena))
	browser.Refresh()

	all := browser.Filtered()
	assert.Len(t, all, 3)
	assert.Equal(t, apple, all[0].ID)
	assert.Equal(t, "markers", all[0].Source)
	assert.Contains(t, all[0].Summary, "Name:apple")

	browser.SetFilter("PEAR")
	filtered := browser.Filtered()
	if assert.Len(t, filtered, 1) {
		assert.Equal(t, pear, filtered[0].ID)
	}

	browser.SetFilter("")
	browser.SortBy(2, false)
	assert.Equal(t, pear, browser.Filtered()[1].ID, "plum, pear, apple")

	browser.Select(pear)
	id, item := browser.Selected()
	assert.Equal(t, pear, id)
	if m, ok := item.(*marker); assert.True(t, ok) {
		m.X = 20
	}
	assert.Equal(t, 20, arena.Get(pear).X, "selection points at the live record")

	arena.Delete(pear)
	_, item = browser.Selected()
	assert.Nil(t, item)

	browser.Select(0)
	_, item = browser.Selected()
	assert.Nil(t, item)
}

type fixedStats struct{ stats ecs.SchedulerStats }

func (f *fixedStats) GetStats() *ecs.SchedulerStats { return &f.stats }

func TestPerformanceStatsHistory(t *testing.T) {
	ps := NewPerformanceStats(&fixedStats{}, 4)
	assert.Zero(t, ps.AverageFrameTime())

	ps.Record(0.010)
	ps.Record(0.020)
	assert.InDelta(t, 15.0, ps.AverageFrameTime(), 1e-4)

	for range 4 {
		ps.Record(0.005)
	}
	assert.InDelta(t, 5.0, ps.AverageFrameTime(), 1e-4, "old frames roll off")
}

func TestFrameTimer(t *testing.T) {
	ft := NewFrameTimer()
	time.Sleep(2 * time.Millisecond)

	first := ft.GetDeltaTime()
	second := ft.GetDeltaTime()
	assert.Greater(t, first, float32(0.001))
	assert.Less(t, second, first)
}
