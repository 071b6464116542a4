package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/inkball/ecs"
	"github.com/plus3/inkball/ecs/debugui"
	debugui_ebiten "github.com/plus3/inkball/ecs/debugui/ebiten"
	"github.com/plus3/inkball/geom"
	"github.com/plus3/inkball/inkball"
)

// Game implements ebiten.Game on top of an inkball session.
type Game struct {
	session *inkball.Session

	// Debug overlay, nil unless enabled.
	imguiBackend *debugui_ebiten.ImguiBackend
	ui           *ecs.Scheduler
	input        debugui.ImguiInputState
}

func NewGame(session *inkball.Session, debug bool) *Game {
	g := &Game{session: session}
	if !debug {
		return g
	}

	g.imguiBackend = debugui_ebiten.NewImguiBackend("Inkball", ScreenWidth, ScreenHeight)

	items := ecs.NewPool[debugui.ImguiItem]()
	debugui.Spawn(items,
		NewSessionInspector(session),
		NewBallBrowser(session),
		debugui.NewPerformanceStats("Level Systems", 120, func() *ecs.SchedulerStats {
			return session.Level().Stats()
		}),
	)

	g.ui = ecs.NewScheduler()
	g.ui.Register(&debugui.ImguiSystem{Items: items, InputState: &g.input})
	return g
}

func (g *Game) Update() error {
	if g.imguiBackend != nil {
		g.imguiBackend.Frame(func() {
			g.ui.Once(inkball.FrameDuration.Seconds())
		})
	}

	g.handleKeys()
	g.handleMouse()

	g.session.Update(inkball.FrameDuration)
	return nil
}

func (g *Game) handleKeys() {
	if g.input.WantCaptureKeyboard {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
}

// handleMouse maps mouse input to stroke gestures. Left drag draws, right
// click or ctrl-left click removes the stroke under the cursor.
func (g *Game) handleMouse() {
	if g.input.WantCaptureMouse {
		return
	}

	x, y := ebiten.CursorPosition()
	p, onBoard := boardPoint(x, y)

	removing := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ebiten.IsKeyPressed(ebiten.KeyControl))
	if removing {
		if onBoard {
			g.session.RemoveStrokeAt(p)
		}
		return
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if onBoard {
			g.session.BeginStroke(p)
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.session.EndStroke()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if onBoard {
			g.session.ExtendStroke(p)
		}
	}
}

// boardPoint converts screen coordinates to play area coordinates.
func boardPoint(x, y int) (geom.Vec2, bool) {
	if y < TopBarHeight {
		return geom.Vec2{}, false
	}
	return geom.V(float64(x), float64(y-TopBarHeight)), true
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawSession(screen, g.session)

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return ScreenWidth, ScreenHeight
}
