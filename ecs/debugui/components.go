package debugui

import "github.com/plus3/dashshot/ecs"

// StatsSource reports scheduler timings for one named schedule.
type StatsSource struct {
	Name  string
	Stats func() *ecs.SchedulerStats
}

// RegisterComponents adds the debug UI components to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}
