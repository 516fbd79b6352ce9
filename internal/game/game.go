package game

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/simulation"
	"chosenoffset.com/raycaster/internal/world/scene"
)

// ErrQuit is returned from Update when the player asks to leave
var ErrQuit = errors.New("quit requested")

// messageDuration is how long a message stays on screen, in seconds
const messageDuration = 2.0

// binding maps one or more keys to a scene event
type binding struct {
	event scene.Event
	keys  []render.Key
}

// bindings lists arrows and WASD. Order decides the order events apply in a tick.
var bindings = []binding{
	{scene.EventTurnLeft, []render.Key{render.KeyLeft, render.KeyA}},
	{scene.EventTurnRight, []render.Key{render.KeyRight, render.KeyD}},
	{scene.EventMoveForward, []render.Key{render.KeyUp, render.KeyW}},
	{scene.EventMoveBackward, []render.Key{render.KeyDown, render.KeyS}},
}

// Game holds the host loop state. It owns the scene and hands it to the
// raycasting core every frame.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Scene        *scene.Scene
	Fan          raycast.Fan
	PlayerRadius float64
	ShowHUD      bool
	TPS          int

	Renderer render.Renderer
	InputMgr render.InputManager
	Engine   render.Engine // Optional, used for FPS in the HUD

	SceneTexture render.Image
	HUDPanel     render.Image

	// UI state
	Messages []Message
	repeat   keyRepeat

	// Debug
	FrameCount int
	Blocked    int
}

// New creates a game from a validated config and scene
func New(cfg *simulation.Config, sc *scene.Scene, r render.Renderer, input render.InputManager) (*Game, error) {
	fan, err := cfg.Fan()
	if err != nil {
		return nil, fmt.Errorf("failed to build ray fan: %w", err)
	}
	fan.Color = render.White

	return &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Scene:        sc,
		Fan:          fan,
		PlayerRadius: cfg.Player.Radius,
		ShowHUD:      cfg.HUD.Enabled,
		TPS:          cfg.Window.TPS,
		Renderer:     r,
		InputMgr:     input,
	}, nil
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return ErrQuit
	}

	g.updateMessages(1.0 / float64(g.TPS))

	// Toggle hit mode with H
	if g.InputMgr.IsKeyJustPressed(render.KeyH) {
		if g.Fan.Mode == raycast.HitNearest {
			g.Fan.Mode = raycast.HitFirst
		} else {
			g.Fan.Mode = raycast.HitNearest
		}
		g.ShowMessage(fmt.Sprintf("Hit mode: %s", g.Fan.Mode))
	}

	for _, ev := range g.pollEvents() {
		if !g.Scene.Apply(ev) {
			g.Blocked++
			g.ShowMessage("Blocked by wall")
		}
	}

	return nil
}

// pollEvents turns the keyboard state into scene events for this tick
func (g *Game) pollEvents() []scene.Event {
	var events []scene.Event
	for _, b := range bindings {
		pressed := false
		for _, key := range b.keys {
			if g.InputMgr.IsKeyPressed(key) {
				pressed = true
				break
			}
		}
		if g.repeat.fire(b.event, pressed) {
			events = append(events, b.event)
		}
	}
	return events
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen. A message that
// is already showing has its timer reset instead of being added twice.
func (g *Game) ShowMessage(text string) {
	for i := range g.Messages {
		if g.Messages[i].Text == text {
			g.Messages[i].TimeLeft = g.Messages[i].MaxTime
			return
		}
	}

	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})

	log.Printf("Message: %s", text)
}
