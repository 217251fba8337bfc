package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// SystemStatsWindow shows per-system timings for each registered schedule.
type SystemStatsWindow struct {
	sources []StatsSource
}

func NewSystemStatsWindow(sources ...StatsSource) *SystemStatsWindow {
	return &SystemStatsWindow{sources: sources}
}

func (w *SystemStatsWindow) Render() {
	if !imgui.BeginV("System Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if len(w.sources) == 0 {
		imgui.Text("No schedules registered")
	}

	for _, source := range w.sources {
		stats := source.Stats()
		if !imgui.TreeNodeStr(fmt.Sprintf("%s (%d ticks)", source.Name, stats.Ticks)) {
			continue
		}

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV(source.Name+"Table", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, system := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(system.LastDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(system.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(system.MaxDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}
