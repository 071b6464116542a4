package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/inkball/ecs"
)

// PerformanceStats draws frame timing and per-system scheduler statistics.
type PerformanceStats struct {
	Title string
	Stats func() *ecs.SchedulerStats

	historyFrames int
	frameHistory  []float32
	frameIndex    int
	systemHistory map[string][]float32
	timer         *FrameTimer
}

func NewPerformanceStats(title string, historyFrames int, stats func() *ecs.SchedulerStats) *PerformanceStats {
	return &PerformanceStats{
		Title:         title,
		Stats:         stats,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		systemHistory: make(map[string][]float32),
		timer:         NewFrameTimer(),
	}
}

// Record stores one frame time and the average duration of every system
// reported by stats. Render calls it once per frame.
func (ps *PerformanceStats) Record(frameTime time.Duration, stats *ecs.SchedulerStats) {
	ps.frameHistory[ps.frameIndex] = durationMs(frameTime)

	if stats != nil {
		for _, sys := range stats.Systems {
			history, ok := ps.systemHistory[sys.Name]
			if !ok {
				history = make([]float32, ps.historyFrames)
				ps.systemHistory[sys.Name] = history
			}
			history[ps.frameIndex] = durationMs(sys.AvgDuration)
		}
	}

	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameTime returns the mean of the recorded frame times in milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

// History returns the recorded samples for a series, oldest first.
// The empty name selects the frame times.
func (ps *PerformanceStats) History(name string) []float32 {
	samples := ps.frameHistory
	if name != "" {
		samples = ps.systemHistory[name]
	}
	if samples == nil {
		return nil
	}

	ordered := make([]float32, 0, len(samples))
	ordered = append(ordered, samples[ps.frameIndex:]...)
	return append(ordered, samples[:ps.frameIndex]...)
}

func (ps *PerformanceStats) Render() {
	var stats *ecs.SchedulerStats
	if ps.Stats != nil {
		stats = ps.Stats()
	}
	ps.Record(ps.timer.Delta(), stats)

	imgui.SetNextWindowPosV(imgui.NewVec2(600, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 420), imgui.CondOnce)
	if !imgui.BeginV(ps.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.AverageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if stats != nil {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Systems: %d  Frames: %d  Executions: %d", stats.SystemCount, stats.Frames, stats.TotalExecutions))
		ps.renderSystemTable(stats.Systems)
		ps.renderSystemPlot()
	}

	imgui.End()
}

func (ps *PerformanceStats) renderSystemTable(systems []ecs.SystemStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if !imgui.BeginTableV("Systems", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}

	imgui.TableSetupColumn("Name")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Avg (ms)")
	imgui.TableSetupColumn("Min (ms)")
	imgui.TableSetupColumn("Max (ms)")
	imgui.TableHeadersRow()

	systems = slices.Clone(systems)
	if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsCount() > 0 {
		spec := sortSpecs.Specs()
		sortSystems(systems, int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionDescending)
	}

	for _, sys := range systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(sys.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.3f", durationMs(sys.AvgDuration)))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.3f", durationMs(sys.MinDuration)))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.3f", durationMs(sys.MaxDuration)))
	}

	imgui.EndTable()
}

func (ps *PerformanceStats) renderSystemPlot() {
	if !imgui.TreeNodeStr("System Latency") {
		return
	}

	names := make([]string, 0, len(ps.systemHistory))
	for name := range ps.systemHistory {
		names = append(names, name)
	}
	slices.Sort(names)

	if implot.BeginPlotV("##latency", imgui.NewVec2(-1, 200), 0) {
		implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
		for _, name := range names {
			samples := ps.History(name)
			implot.PlotLineFloatPtrInt(name, &samples[0], int32(len(samples)))
		}
		implot.EndPlot()
	}

	imgui.TreePop()
}

// sortSystems orders systems by a table column: name, runs, avg, min or max.
func sortSystems(systems []ecs.SystemStats, column int, descending bool) {
	slices.SortStableFunc(systems, func(a, b ecs.SystemStats) int {
		var c int
		switch column {
		case 1:
			c = cmp.Compare(a.ExecutionCount, b.ExecutionCount)
		case 2:
			c = cmp.Compare(a.AvgDuration, b.AvgDuration)
		case 3:
			c = cmp.Compare(a.MinDuration, b.MinDuration)
		case 4:
			c = cmp.Compare(a.MaxDuration, b.MaxDuration)
		default:
			c = strings.Compare(a.Name, b.Name)
		}
		if descending {
			return -c
		}
		return c
	})
}

func durationMs(d time.Duration) float32 {
	return float32(d.Microseconds()) / 1000.0
}

// FrameTimer measures wall time between successive calls to Delta.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) Delta() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}
