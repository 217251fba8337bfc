package debugui

import (
	"reflect"
	"testing"
	"time"

	"github.com/plus3/dashshot/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marker struct {
	Name  string
	Score int
}

type settings struct {
	Speed   int
	Ratio   float64
	Enabled bool
	Label   string
	Delay   time.Duration
	Small   int8
	hidden  int
	Nested  marker
	Pointer *marker
}

func newTestStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	ecs.RegisterComponent[marker](registry)
	return ecs.NewStorage(registry)
}

func TestPerformanceStatsAverage(t *testing.T) {
	ps := NewPerformanceStats(4)
	assert.Zero(t, ps.AverageFrameTime())

	ps.Record(0.010)
	ps.Record(0.020)
	assert.InDelta(t, 7.5, ps.AverageFrameTime(), 0.001)

	// Wraps after four frames, dropping the oldest samples.
	ps.Record(0.020)
	ps.Record(0.020)
	ps.Record(0.020)
	ps.Record(0.020)
	assert.InDelta(t, 20.0, ps.AverageFrameTime(), 0.001)
}

func TestPerformanceStatsMinimumHistory(t *testing.T) {
	ps := NewPerformanceStats(0)
	ps.Record(0.016)
	assert.InDelta(t, 16.0, ps.AverageFrameTime(), 0.001)
}

func TestPoolBrowserRows(t *testing.T) {
	storage := newTestStorage()
	first := storage.Spawn(marker{Name: "alpha", Score: 1})
	storage.Spawn(marker{Name: "beta", Score: 2})
	storage.Spawn(marker{Name: "Alphabet", Score: 3})

	pb := NewPoolBrowser(10)
	assert.Empty(t, pb.Rows(storage), "no pool selected")

	pb.Select(first.PoolId())
	rows := pb.Rows(storage)
	require.Len(t, rows, 3)
	assert.Contains(t, rows[0], "alpha")

	pb.SetFilter("ALPHA")
	rows = pb.Rows(storage)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1], "Alphabet")

	pb.SetFilter("")
	pb.maxRows = 1
	assert.Len(t, pb.Rows(storage), 1)
}

func TestPoolBrowserSkipsDeleted(t *testing.T) {
	storage := newTestStorage()
	id := storage.Spawn(marker{Name: "gone"})
	storage.Spawn(marker{Name: "kept"})
	require.True(t, storage.Delete(id))

	pb := NewPoolBrowser(10)
	pb.Select(id.PoolId())
	rows := pb.Rows(storage)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0], "kept")
}

func TestReflectionCacheFields(t *testing.T) {
	rc := NewReflectionCache()
	fields := rc.GetFields(reflect.TypeFor[settings]())

	names := make([]string, 0, len(fields))
	editable := make(map[string]bool)
	for _, f := range fields {
		names = append(names, f.Name)
		editable[f.Name] = f.Editable()
	}

	assert.Equal(t, []string{"Speed", "Ratio", "Enabled", "Label", "Delay", "Small", "Nested", "Pointer"}, names)
	assert.True(t, editable["Speed"])
	assert.True(t, editable["Ratio"])
	assert.True(t, editable["Enabled"])
	assert.True(t, editable["Label"])
	assert.False(t, editable["Delay"], "durations are shown as text")
	assert.False(t, editable["Nested"])

	pointer := fields[len(fields)-1]
	assert.True(t, pointer.IsPointer)
	assert.Equal(t, reflect.TypeFor[marker](), pointer.Type)

	// Cached slices are reused.
	again := rc.GetFields(reflect.TypeFor[settings]())
	assert.Same(t, &fields[0], &again[0])

	assert.Nil(t, rc.GetFields(reflect.TypeFor[int]()))
}

func TestFieldSetters(t *testing.T) {
	s := settings{}
	val := reflect.ValueOf(&s).Elem()

	setInt(val.FieldByName("Speed"), 42)
	setFloat(val.FieldByName("Ratio"), 0.5)
	setBool(val.FieldByName("Enabled"), true)
	setString(val.FieldByName("Label"), "fast")
	setInt(val.FieldByName("Small"), 300)

	assert.Equal(t, 42, s.Speed)
	assert.Equal(t, 0.5, s.Ratio)
	assert.True(t, s.Enabled)
	assert.Equal(t, "fast", s.Label)
	assert.Equal(t, int8(0), s.Small, "overflowing values are ignored")

	// Values that are not addressable are left alone.
	setInt(reflect.ValueOf(s).FieldByName("Speed"), 7)
	assert.Equal(t, 42, s.Speed)
}

func TestSingletonEditsWriteThrough(t *testing.T) {
	storage := newTestStorage()
	storage.AddSingleton(settings{Speed: 1})
	handle := ecs.NewSingleton[settings](storage)

	storage.EachSingleton(func(typ reflect.Type, ptr any) {
		if typ != reflect.TypeFor[settings]() {
			return
		}
		setInt(reflect.ValueOf(ptr).Elem().FieldByName("Speed"), 9)
	})

	assert.Equal(t, 9, handle.Get().Speed)
}

func TestSpawnDebugUI(t *testing.T) {
	storage := newTestStorage()
	SpawnDebugUI(storage, StatsSource{Name: "update", Stats: func() *ecs.SchedulerStats {
		return &ecs.SchedulerStats{}
	}})

	assert.Equal(t, 4, ecs.PoolOf[ImguiItem](storage).Len())
	assert.True(t, ecs.NewSingleton[ImguiInputState](storage).Exists())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.500 ms", formatDuration(1500*time.Microsecond))
	assert.Equal(t, "0.000 ms", formatDuration(0))
}
