package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/dashshot/ecs"
)

// PoolBrowser lists every component pool and, for the selected pool, the
// live entities it holds.
type PoolBrowser struct {
	maxRows      int
	selectedPool uint32
	filter       string
}

func NewPoolBrowser(maxRows int) *PoolBrowser {
	return &PoolBrowser{maxRows: maxRows}
}

func (pb *PoolBrowser) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Pool Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := storage.CollectStats()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PoolTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Pool ID")
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Entities")
		imgui.TableHeadersRow()

		for _, pool := range stats.PoolBreakdown {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", pool.ID), pool.ID == pb.selectedPool, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				pb.selectedPool = pool.ID
			}
			imgui.TableNextColumn()
			imgui.Text(pool.Component)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", pool.EntityCount))
		}

		imgui.EndTable()
	}

	if pb.selectedPool != 0 {
		imgui.Separator()
		imgui.SetNextItemWidth(200)
		imgui.InputTextWithHint("##filter", "filter", &pb.filter, imgui.InputTextFlagsNone, nil)
		for _, line := range pb.Rows(storage) {
			imgui.Text(line)
		}
	}

	imgui.End()
}

// Rows formats up to maxRows entities of the selected pool that match
// the current filter.
func (pb *PoolBrowser) Rows(storage *ecs.Storage) []string {
	var rows []string
	storage.EachEntity(pb.selectedPool, func(id ecs.EntityId, component any) bool {
		line := fmt.Sprintf("%d: %+v", id.Seq(), component)
		if pb.filter == "" || strings.Contains(strings.ToLower(line), strings.ToLower(pb.filter)) {
			rows = append(rows, line)
		}
		return len(rows) < pb.maxRows
	})
	return rows
}

// Select chooses the pool whose entities are listed.
func (pb *PoolBrowser) Select(poolId uint32) {
	pb.selectedPool = poolId
}

// SetFilter restricts the listed entities to those whose text contains
// filter, ignoring case.
func (pb *PoolBrowser) SetFilter(filter string) {
	pb.filter = filter
}
