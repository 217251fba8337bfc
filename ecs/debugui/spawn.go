package debugui

import "github.com/plus3/dashshot/ecs"

// SpawnDebugUI adds the standard debug windows to storage.
func SpawnDebugUI(storage *ecs.Storage, sources ...StatsSource) {
	ecs.NewSingleton[ImguiInputState](storage)

	perf := NewPerformanceStats(120)
	timer := NewFrameTimer()
	storage.Spawn(ImguiItem{Render: func() {
		perf.Render(storage, timer.GetDeltaTime())
	}})

	systems := NewSystemStatsWindow(sources...)
	storage.Spawn(ImguiItem{Render: systems.Render})

	pools := NewPoolBrowser(50)
	storage.Spawn(ImguiItem{Render: func() {
		pools.Render(storage)
	}})

	inspector := NewSingletonInspector()
	storage.Spawn(ImguiItem{Render: func() {
		inspector.Render(storage)
	}})
}
