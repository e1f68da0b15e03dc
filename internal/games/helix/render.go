package helix

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-helix/internal/core"
)

// Visual characters for rendering
const (
	BallChar     = '●'
	SafeChar     = '█'
	DangerChar   = '▓'
	AimChar      = '┊'
	LevelMarker  = '▸'
	rowsPerLevel = 4 // Screen rows between consecutive platforms
	panelWidth   = 12
	ballAnchor   = 3 // Ball sits this fraction down the view when the camera follows
)

// Render draws the tower as an unrolled cylinder: columns map to angles
// around the ball, rows to height. The ball stays in the center column.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	snap := g.session.Snapshot()

	w, h := dst.Width(), dst.Height()
	if w < 10 || h < 6 {
		dst.DrawText(0, 0, "too small")
		return
	}

	viewW := w - 2
	showPanel := w >= 40
	if showPanel {
		viewW = w - 2 - panelWidth
	}
	view := core.NewRect(0, 1, viewW+2, h-1)
	dst.DrawBox(view, core.ColorGray)

	g.drawTower(dst, view, snap)
	g.drawHUD(dst, snap)
	if showPanel {
		g.drawPanel(dst, core.NewRect(view.Right(), 1, panelWidth, h-1), snap)
	}

	switch snap.Status {
	case StatusIdle:
		g.drawOverlay(dst, core.ColorCyan,
			"HELIX TOWER",
			"←/→ or drag to spin the tower",
			fmt.Sprintf("Best: %d", snap.State.BestScore),
			"Press SPACE to start")
	case StatusPaused:
		g.drawOverlay(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	case StatusGameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d  |  Best: %d", snap.State.Score, snap.State.BestScore)}
		if snap.State.NewBest {
			lines = append(lines, "NEW BEST!")
		}
		lines = append(lines, "Press R to restart")
		g.drawOverlay(dst, core.ColorBrightRed, lines...)
	default:
		if g.perfectFlash > 0 {
			dst.DrawTextCentered(2, fmt.Sprintf(" PERFECT x%d ", snap.State.PerfectStreak), core.ColorYellow)
		}
	}
}

func (g *Game) drawTower(dst *core.Screen, view core.Rect, snap Snapshot) {
	inner := core.NewRect(view.X+1, view.Y+1, view.W-2, view.H-2)
	if inner.W <= 0 || inner.H <= 0 {
		return
	}
	levelGap := g.cfg.Tower.LevelGap
	scale := rowsPerLevel / levelGap

	// The camera follows the ball down and never scrolls back up while a
	// run lasts, so bounces read as the ball moving, not the world.
	target := snap.Ball.Y + float64(inner.H/ballAnchor)/scale
	if !g.cameraSet || target < g.camera {
		g.camera = target
		g.cameraSet = true
	}
	rowOf := func(y float64) int {
		return inner.Y + int(math.Floor((g.camera-y)*scale))
	}

	center := inner.X + inner.W/2
	ballAngle := snap.BallAngle()
	angleOf := func(x int) float64 {
		return ballAngle + float64(x-center)*TwoPi/float64(inner.W)
	}

	for y := inner.Y; y < inner.Bottom(); y++ {
		dst.SetCell(center, y, AimChar, core.ColorGray)
	}

	top := DepthIndex(g.camera, levelGap)
	bottom := DepthIndex(g.camera-float64(inner.H)/scale, levelGap)
	rows := make(map[int]Platform)
	for _, p := range g.session.Tower().Range(top-1, bottom+1) {
		row := rowOf(p.Y)
		if row < inner.Y || row >= inner.Bottom() {
			continue
		}
		rows[row] = p
		for x := inner.X; x < inner.Right(); x++ {
			seg, ok := p.SegmentAt(angleOf(x))
			switch {
			case !ok:
				dst.SetCell(x, row, ' ', core.ColorDefault)
			case seg.Danger:
				dst.SetCell(x, row, DangerChar, core.Color(seg.Color))
			default:
				dst.SetCell(x, row, SafeChar, core.Color(seg.Color))
			}
		}
	}

	ballRow := rowOf(snap.Ball.Y)
	if p, ok := rows[ballRow]; ok && snap.Ball.Y >= p.Y {
		ballRow--
	}
	if ballRow >= inner.Y && ballRow < inner.Bottom() {
		dst.SetCell(center, ballRow, BallChar, core.ColorBrightWhite)
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	st := snap.State
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", st.Score), core.ColorBrightWhite)
	dst.DrawTextColored(14, 0, fmt.Sprintf("BEST %d", st.BestScore), core.ColorYellow)
	dst.DrawTextColored(26, 0, fmt.Sprintf("LEVEL %d", st.CurrentLevel), core.ColorCyan)
	if st.PerfectStreak > 0 {
		dst.DrawTextColored(38, 0, fmt.Sprintf("STREAK %d", st.PerfectStreak), core.ColorMagenta)
	}
	bounces := fmt.Sprintf("BOUNCES %d", st.BounceCount)
	dst.DrawTextColored(dst.Width()-len(bounces)-1, 0, bounces, core.ColorGray)
}

// drawPanel lists the levels around the current one in their ring colors.
func (g *Game) drawPanel(dst *core.Screen, r core.Rect, snap Snapshot) {
	dst.DrawTextColored(r.X+2, r.Y+1, "LEVELS", core.ColorGray)
	current := snap.State.CurrentLevel
	y := r.Y + 3
	for level := current + 3; level >= max(current-1, 0) && y < r.Bottom(); level-- {
		p, ok := g.session.Tower().Platform(level)
		color := core.ColorGray
		if ok {
			color = core.Color(p.Color)
		}
		marker := ' '
		if level == current {
			marker = LevelMarker
		}
		dst.SetCell(r.X+1, y, marker, core.ColorBrightWhite)
		dst.DrawTextColored(r.X+3, y, fmt.Sprintf("%4d", level), color)
		if ok && p.DangerArc() > 0 {
			dst.SetCell(r.X+8, y, DangerChar, core.Color(g.cfg.Generation.DangerColor))
		}
		y++
	}
}

// drawOverlay draws a centered message box.
func (g *Game) drawOverlay(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := dst.Bounds().Centered(width+4, len(lines)+2)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.SetCell(x, y, ' ', core.ColorDefault)
		}
	}
	dst.DrawBox(box, c)
	for i, l := range lines {
		color := core.ColorBrightWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}
