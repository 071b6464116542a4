package main

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/inkball/ecs"
	"github.com/plus3/inkball/ecs/debugui"
	"github.com/plus3/inkball/inkball"
)

// SessionInspector shows session state and offers the keyboard controls as buttons.
type SessionInspector struct {
	session *inkball.Session
}

func NewSessionInspector(session *inkball.Session) *SessionInspector {
	return &SessionInspector{session: session}
}

func (si *SessionInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 80), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 260), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := si.session
	level := s.Level()

	imgui.Text(fmt.Sprintf("State: %s", s.State()))
	imgui.Text(fmt.Sprintf("Level: %d / %d", s.LevelIndex()+1, s.LevelCount()))
	imgui.Text(fmt.Sprintf("Score: %d", s.Score()))
	imgui.Text(fmt.Sprintf("Time: %d", s.TimeRemaining()))
	if s.TimeUp() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "TIME UP")
	} else if s.Paused() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Tick: %d", level.Tick()))
	imgui.Text(fmt.Sprintf("Spawn interval: %.1fs  next in %.1fs", level.SpawnInterval(), s.Countdown()))

	upcoming := make([]string, 0, inkball.UpcomingPreview)
	for _, c := range s.Upcoming() {
		upcoming = append(upcoming, c.String())
	}
	imgui.Text(fmt.Sprintf("Upcoming: %s", strings.Join(upcoming, ", ")))
	imgui.Text(fmt.Sprintf("Balls: %d  Bricks: %d  Strokes: %d", len(level.Balls()), len(level.Bricks()), len(level.Strokes())))

	imgui.Separator()
	if imgui.Button("Pause") {
		s.TogglePause()
	}
	imgui.SameLine()
	if imgui.Button("Restart Level") {
		s.RestartLevel()
	}
	imgui.SameLine()
	if imgui.Button("Restart Game") {
		s.RestartGame()
	}

	imgui.End()
}

// NewBallBrowser lists the balls of the running level with a respawn action.
func NewBallBrowser(session *inkball.Session) *debugui.EntityBrowser[inkball.Ball] {
	browser := debugui.NewEntityBrowser("Balls", 20, func() *ecs.Pool[inkball.Ball] {
		return session.Level().Pools().Balls
	})
	browser.Describe = func(b *inkball.Ball) string {
		return fmt.Sprintf("%s (%.0f, %.0f) r=%.1f", b.Color, b.Position.X, b.Position.Y, b.Radius)
	}
	browser.Actions = func(id ecs.EntityId) {
		if imgui.Button("Respawn") {
			session.Level().RespawnBall(id)
		}
	}
	return browser
}
