package main

import (
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/inkball/ecs"
	"github.com/plus3/inkball/inkball"
)

type Report struct {
	// Configuration
	Seed      uint64
	MaxFrames int
	Levels    int

	// Outcome
	State      string
	TimeUp     bool
	LevelIndex int
	Score      int
	Events     map[string]int
	Played     []LevelReport

	// Performance
	Frames        int
	TotalTime     time.Duration
	UpdateTime    Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// LevelReport is the scheduler summary of one played level.
type LevelReport struct {
	Ticks uint64
	Stats *ecs.SchedulerStats
}

func (r *Report) AddLevel(level *inkball.Level) {
	r.Played = append(r.Played, LevelReport{
		Ticks: level.Tick(),
		Stats: level.Stats(),
	})
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
	for _, sample := range s.Samples {
		total += sample
	}
	s.Min = slices.Min(s.Samples)
	s.Max = slices.Max(s.Samples)
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Inkball Simulation Report

## Run Configuration
- **Seed:** {{.Seed}}
- **Frame Limit:** {{.MaxFrames}}
- **Levels:** {{.Levels}}

## Outcome
- **State:** {{.State}}{{if .TimeUp}} (time up){{end}}
- **Level Reached:** {{inc .LevelIndex}} / {{.Levels}}
- **Score:** {{.Score}}
- **Frames Simulated:** {{.Frames}}

## Events
{{- range $kind, $count := .Events}}
- {{$kind}}: {{$count}}
{{- end}}

## Systems
{{- range $i, $level := .Played}}
### Level {{inc $i}} ({{$level.Ticks}} ticks)
{{- range $level.Stats.Systems}}
- {{.Name}}: runs {{.ExecutionCount}}, avg {{.AvgDuration}}, min {{.MinDuration}}, max {{.MaxDuration}}
{{- end}}
{{- end}}

## Performance Results
- **Total Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end)
`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
