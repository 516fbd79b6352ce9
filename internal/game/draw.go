package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/raycaster/internal/core/geometry"
	"chosenoffset.com/raycaster/internal/render"
)

// HUD layout
const (
	hudMargin     = 10
	hudLineHeight = 18
	hudMinWidth   = 200
	hudAlpha      = 160
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	w, h := screen.Size()

	// Ensure the scene texture exists and is the right size
	if g.SceneTexture == nil || needsResize(g.SceneTexture, w, h) {
		if g.SceneTexture != nil {
			g.SceneTexture.Dispose()
		}
		g.SceneTexture = g.Renderer.NewImage(w, h)
	}

	// Step 1: Render walls, rays and the player offscreen
	g.SceneTexture.Fill(render.Black)
	g.drawWalls(g.SceneTexture)
	g.drawRays(g.SceneTexture)
	g.drawPlayer(g.SceneTexture)
	screen.DrawImage(g.SceneTexture, nil)

	// Step 2: Draw UI elements on top
	if g.ShowHUD {
		g.drawHUD(screen)
	}
	g.drawUI(screen)

	g.FrameCount++
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}

func (g *Game) drawWalls(screen render.Image) {
	for _, wall := range g.Scene.Walls {
		g.Renderer.DrawSegment(screen, wall, 2, wall.Color)
	}
}

func (g *Game) drawRays(screen render.Image) {
	for _, ray := range g.Scene.Cast(g.Fan) {
		g.Renderer.DrawSegment(screen, ray, 1, ray.Color)
	}
}

func (g *Game) drawPlayer(screen render.Image) {
	p := g.Scene.Player
	x, y := float32(p.Position.X), float32(p.Position.Y)

	g.Renderer.FillCircle(screen, x, y, float32(g.PlayerRadius), p.Color)
	g.Renderer.StrokeCircle(screen, x, y, float32(g.PlayerRadius), 2, render.White)

	// Facing indicator
	heading := geometry.Line{
		Start: p.Position,
		End:   geometry.EndpointAt(p.Position, p.Angle, g.PlayerRadius*2),
	}
	g.Renderer.DrawSegment(screen, heading, 2, render.Green)
}

// hudLines returns the overlay text, one entry per line
func (g *Game) hudLines() []string {
	p := g.Scene.Player
	lines := []string{
		fmt.Sprintf("pos (%.1f, %.1f)  angle %.1f°", p.Position.X, p.Position.Y, geometry.Degrees(p.Angle)),
		fmt.Sprintf("rays %d  fov %.0f°  view %.0f  hit %s", g.Fan.NumRays, geometry.Degrees(p.FOV), p.ViewDistance, g.Fan.Mode),
	}
	if g.Engine != nil {
		lines = append(lines, fmt.Sprintf("FPS %.1f  TPS %.1f", g.Engine.ActualFPS(), g.Engine.ActualTPS()))
	}
	return lines
}

func (g *Game) drawHUD(screen render.Image) {
	lines := g.hudLines()
	panelWidth := hudMinWidth
	for _, line := range lines {
		if w, _ := g.Renderer.MeasureText(line, 1.0); w+2*hudMargin > panelWidth {
			panelWidth = w + 2*hudMargin
		}
	}
	panelHeight := len(lines)*hudLineHeight + hudMargin

	if g.HUDPanel == nil || needsResize(g.HUDPanel, panelWidth, panelHeight) {
		if g.HUDPanel != nil {
			g.HUDPanel.Dispose()
		}
		g.HUDPanel = g.Renderer.NewImage(panelWidth, panelHeight)
		g.HUDPanel.Fill(color.RGBA{0, 0, 0, hudAlpha})
	}
	screen.DrawImage(g.HUDPanel, &render.DrawImageOptions{TranslateX: hudMargin, TranslateY: hudMargin})

	y := hudMargin + hudMargin/2
	for _, line := range lines {
		g.Renderer.DrawText(screen, line, 2*hudMargin, y, render.White, 1.0)
		y += hudLineHeight
	}
}

func (g *Game) drawUI(screen render.Image) {
	// Draw on-screen messages above the bottom edge
	y := g.ScreenHeight - hudMargin - hudLineHeight*len(g.Messages)
	for _, msg := range g.Messages {
		// Premultiplied white fading out
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 2*hudMargin, y, color.RGBA{alpha, alpha, alpha, alpha}, 1.0)
		y += hudLineHeight
	}
}
