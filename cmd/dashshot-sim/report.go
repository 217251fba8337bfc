package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/dashshot/ecs"
	"github.com/plus3/dashshot/game"
)

type Report struct {
	// Configuration
	Options simOptions

	// Results
	GameTime   time.Duration
	TotalTime  time.Duration
	UpdateTime Stats
	Tally      game.Tally
	Final      game.State
	// GameOvers counts frames that ended in game over. The autopilot
	// restarts on the following frame, so this is the number of lost games.
	GameOvers     int
	Systems       []ecs.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Simulation Report

## Configuration
- **Frames:** {{.Options.Frames}}
- **Seed:** {{.Options.Seed}}
- **Field:** {{.Options.Width}}x{{.Options.Height}}
- **Dash Distance:** {{.Options.DashDistance}}

## Gameplay
- **Game Time:** {{.GameTime}}
- **Games Started:** {{.Tally.Games}}
- **Games Lost:** {{.GameOvers}}
- **Shots Fired:** {{.Tally.ShotsFired}}
- **Dashes:** {{.Tally.Dashes}}
- **Enemies Spawned:** {{.Tally.EnemiesSpawned}}
- **Enemies Destroyed:** {{.Tally.EnemiesDestroyed}} ({{percent .Tally.EnemiesDestroyed .Tally.EnemiesSpawned}})
- **Enemies Escaped:** {{.Tally.EnemiesEscaped}}
- **Final Lives:** {{.Final.Lives}}{{if .Final.GameOver}} (game over){{end}}

## Performance
- **Wall Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

| System | Runs | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"percent": func(part, whole int) string {
			if whole == 0 {
				return "n/a"
			}
			return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(whole))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
