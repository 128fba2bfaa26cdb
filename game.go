package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"critters/internal/assets"
	"critters/internal/config"
	"critters/internal/daylight"
	"critters/internal/entity"
	"critters/internal/hud"
	"critters/internal/input"
	"critters/internal/scene"
	"critters/internal/schedule"
	"critters/internal/settings"
	"critters/internal/sound"
	"critters/internal/viewport"
)

// frame is one tick of user input.
type frame struct {
	sample       input.Sample
	openSettings bool
	toggleDark   bool
	quit         bool
}

// Game holds global state. Update is the only writer.
type Game struct {
	cfg   config.Config
	clock func() time.Time
	start time.Time
	now   float64

	sched    *schedule.Scheduler
	cat      *entity.Critter
	world    *scene.Scene
	hours    daylight.Watcher
	view     *viewport.Viewport
	gestures *input.Recognizer
	touches  []ebiten.TouchID

	bubble  *hud.Bubble
	lamp    *hud.Lamp
	sidebar *hud.Sidebar
	layout  hud.Layout
	dark    bool

	sprites  *assets.Manager
	chirper  *sound.Chirper
	settings *settings.Dialog
	face     text.Face
	canvas   *ebiten.Image
}

func NewGame(cfg config.Config) *Game {
	return newGame(cfg, time.Now, nil)
}

func newGame(cfg config.Config, clock func() time.Time, ask settings.AskFunc) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w, h := float64(cfg.World.Width), float64(cfg.World.Height)
	sched := schedule.New()
	world := scene.New(cfg, rng)

	cat := entity.NewCritter(w/2, world.GroundY, entity.Tuning{
		BoundaryLeft:      cfg.Critter.BoundaryLeft,
		BoundaryRight:     cfg.Critter.BoundaryRight,
		Speed:             cfg.Critter.Speed,
		RestMin:           cfg.Critter.RestMin,
		RestMax:           cfg.Critter.RestMax,
		IdleFrameInterval: cfg.Critter.IdleFrameInterval,
		WalkFrameInterval: cfg.Critter.WalkFrameInterval,
	}, rng, sched)

	sprites := assets.NewManager(cfg.AssetDir)
	if sprites.Has(entity.IdleFrames[0]) {
		img, err := sprites.Decode(entity.IdleFrames[0])
		if err != nil {
			log.Printf("assets: %v", err)
		} else {
			b := img.Bounds()
			cat.Width = float64(b.Dx()) * cfg.Critter.SpriteScale
			cat.Height = float64(b.Dy()) * cfg.Critter.SpriteScale
		}
	} else if cfg.AssetDir != "" {
		log.Printf("assets: no cat sprites in %s, drawing fallbacks", cfg.AssetDir)
	}

	g := &Game{
		cfg:      cfg,
		clock:    clock,
		start:    clock(),
		sched:    sched,
		cat:      cat,
		world:    world,
		view:     viewport.New(viewport.Size{W: w, H: h}, viewport.Size{W: w, H: h}, cfg.Viewport.MinZoom, cfg.Viewport.MaxZoom),
		gestures: input.NewRecognizer(input.DefaultSlop, cfg.Viewport.WheelStep),
		bubble:   hud.NewBubble(cfg.Bubble.FadeIn, cfg.Bubble.Visible, cfg.Bubble.FadeOut),
		lamp:     hud.NewLamp(),
		sidebar:  hud.NewSidebar(cfg.Sidebar.Width, h, cfg.Sidebar.Slide, cfg.Sidebar.Columns, cfg.Sidebar.Rows, cfg.Sidebar.TileSize),
		layout:   hud.NewLayout(w, h),
		dark:     cfg.DarkMode,
		sprites:  sprites,
		chirper:  sound.NewChirper(cfg.Sound),
		settings: settings.NewDialog(ask),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
	g.observeHour()
	g.cat.Start(0)
	return g
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	var f frame
	f.sample, g.touches = input.Poll(g.touches)
	f.openSettings = inpututil.IsKeyJustPressed(ebiten.KeyComma)
	f.toggleDark = inpututil.IsKeyJustPressed(ebiten.KeyD)
	f.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return g.step(g.clock().Sub(g.start).Seconds(), f)
}

func (g *Game) step(now float64, f frame) error {
	if f.quit {
		return ebiten.Termination
	}
	dt := now - g.now
	g.now = now

	for _, gs := range g.gestures.Feed(f.sample) {
		g.handle(gs)
	}

	if f.openSettings {
		g.settings.Open(g.dark)
	}
	if f.toggleDark {
		g.dark = !g.dark
	}
	if dark, ok := g.settings.Poll(); ok {
		g.dark = dark
	}

	g.observeHour()
	g.sched.Poll(now)
	g.cat.FreezeIdle = g.bubble.Shown()
	g.cat.Update(now)
	g.world.Update(dt)
	return nil
}

// observeHour re-lights the scene when the wall-clock hour changes.
func (g *Game) observeHour() {
	hour := g.clock().Hour()
	tc, changed := g.hours.Observe(hour)
	if !changed {
		return
	}
	g.world.ApplyTime(g.now, tc)
	g.lamp.Apply(tc)
	log.Printf("daylight: %02d:00 is %s", hour, tc.Bucket)
}

// handle routes a gesture to the HUD first, then the world.
func (g *Game) handle(gs input.Gesture) {
	switch gs.Kind {
	case input.Tap:
		g.tap(gs.X, gs.Y)
	case input.Pan:
		switch gs.Phase {
		case input.Began:
			g.view.BeginPan()
		case input.Changed:
			g.view.Pan(gs.DX, gs.DY)
		case input.Ended:
			g.view.EndPan()
		}
	case input.Pinch:
		switch gs.Phase {
		case input.Began:
			g.view.BeginPinch()
		case input.Changed:
			g.view.Pinch(gs.Scale, gs.X, gs.Y)
		case input.Ended:
			g.view.EndPinch()
		}
	}
}

func (g *Game) tap(x, y float64) {
	switch hit := g.sidebar.HitTest(g.now, x, y); hit.Kind {
	case hud.HitClose:
		g.sidebar.Close(g.now)
		return
	case hud.HitTile:
		log.Printf("shop: %s is not for sale yet", hud.ShopItems[hit.Tile])
		return
	case hud.HitPanel:
		return
	}

	if g.layout.ShopTab.Contains(x, y) {
		g.sidebar.Open(g.now)
		return
	}

	// The cat often stands in front of the lamp; one tap reaches both.
	wx, wy := g.view.ScreenToWorld(x, y)
	if g.cat.Contains(wx, wy) && g.bubble.Show(g.now, g.sched) {
		g.chirper.Play()
	}
	if g.world.LampContains(wx, wy) {
		g.lamp.Toggle()
	}
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(w, h)
	}
	g.canvas.Clear()
	g.world.Draw(g.canvas, g.now, g.cat, g.cfg.Critter.SpriteScale, g.lamp.Glow(), g.sprites)

	vs := g.view.State
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(vs.Scale, vs.Scale)
	op.GeoM.Translate(vs.X, vs.Y)
	screen.DrawImage(g.canvas, op)

	bx, by := g.view.WorldToScreen(g.cat.State.X, g.cat.State.Y-g.cat.Height)
	g.bubble.Draw(screen, g.now, bx, by, vs.Scale*g.cfg.Critter.SpriteScale, g.sprites)

	th := hud.ThemeFor(g.dark)
	g.layout.DrawShopTab(screen, th, g.sprites, g.face)
	g.layout.DrawTimePanel(screen, hud.FormatClock(g.clock()), th, g.sprites, g.face)
	g.sidebar.Draw(screen, g.now, th, g.sprites, g.face)
}

// Layout: the world is rendered at its native size and ebiten scales it up.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.World.Width, g.cfg.World.Height
}
