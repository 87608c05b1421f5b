//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/0xnurrabby/Bonsai/internal/chain"
	"github.com/0xnurrabby/Bonsai/internal/config"
	"github.com/0xnurrabby/Bonsai/internal/core"
	"github.com/0xnurrabby/Bonsai/internal/game"
	"github.com/0xnurrabby/Bonsai/internal/render"
	"github.com/0xnurrabby/Bonsai/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const actionTimeout = 2 * time.Minute

type actionResult struct {
	name string
	err  error
}

// Game wires the session, chain signals and renderer into the ebiten loop.
// Wallet and node traffic runs on goroutines; Update only drains channels,
// so a frame never blocks on the network.
type Game struct {
	cfg      *config.Config
	session  *game.Session
	sender   game.Submitter
	reader   *chain.Reader // nil in offline mode
	renderer *render.Renderer
	canvas   *screenCanvas
	hud      *ui.HUD
	breeze   *core.Breeze
	log      *slog.Logger

	friend string

	richness float64
	activity float64

	busy    bool
	results chan actionResult
	signals chan chain.Signals
}

// New constructs the Game and kicks off the first signal refresh.
func New(cfg *config.Config, session *game.Session, sender game.Submitter, reader *chain.Reader, friend string, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	g := &Game{
		cfg:      cfg,
		session:  session,
		sender:   sender,
		reader:   reader,
		renderer: render.New(),
		canvas:   newScreenCanvas(),
		hud:      ui.NewHUD(),
		breeze:   core.NewBreeze(6 * time.Second),
		log:      log,
		friend:   friend,
		results:  make(chan actionResult, 1),
		signals:  make(chan chain.Signals, 1),
	}
	g.refreshSignals()
	return g
}

// Update handles input and drains async results.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if !g.busy {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyP):
			g.dispatch("plant", g.session.Plant)
		case inpututil.IsKeyJustPressed(ebiten.KeyW):
			g.dispatch("water", g.session.Water)
		case inpututil.IsKeyJustPressed(ebiten.KeyV):
			g.dispatch("revive", g.session.Revive)
		case inpututil.IsKeyJustPressed(ebiten.KeyG) && g.friend != "":
			g.dispatch("graft", func(ctx context.Context) error {
				return g.session.Graft(ctx, g.friend)
			})
		case inpututil.IsKeyJustPressed(ebiten.KeyT) && g.cfg.Chain.TipRecipient != "":
			g.dispatch("tip", g.tip)
		}
	}

	select {
	case res := <-g.results:
		g.busy = false
		g.announce(res)
	default:
	}

	select {
	case sig := <-g.signals:
		g.richness = core.Richness(sig.Balance)
		g.activity = core.Activity(sig.TxCount)
	default:
	}
	return nil
}

// Draw repaints the scene from the latest committed state.
func (g *Game) Draw(screen *ebiten.Image) {
	st := g.session.State()
	params := core.RenderParams{
		Seed:      g.session.Account(),
		Richness:  g.richness,
		Activity:  g.activity,
		Growth:    st.Growth,
		Health:    st.Health(),
		Breeze:    g.breeze.Phase(),
		AccentHue: st.AccentHue,
	}
	g.canvas.img = screen
	g.renderer.Draw(g.canvas, params)
	g.hud.Draw(screen, g.statusLines(st))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

func (g *Game) dispatch(name string, fn func(context.Context) error) {
	g.busy = true
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		g.results <- actionResult{name: name, err: fn(ctx)}
	}()
}

func (g *Game) tip(ctx context.Context) error {
	amount := new(big.Int).SetUint64(g.cfg.Chain.TipAmount)
	data, err := chain.EncodeTransfer(g.cfg.Chain.TipRecipient, amount)
	if err != nil {
		return err
	}
	return g.sender.Submit(ctx, chain.NewCall(g.cfg.Chain.USDCContract, data))
}

func (g *Game) announce(res actionResult) {
	switch {
	case res.err == nil:
		g.hud.Flash(res.name+" confirmed", 4*time.Second)
		g.refreshSignals()
	case errors.Is(res.err, chain.ErrDeclined):
		g.hud.Flash("declined in wallet — nothing changed", 4*time.Second)
	default:
		g.hud.Flash(res.err.Error(), 6*time.Second)
		g.log.Warn("action failed", "action", res.name, "err", res.err)
	}
}

// refreshSignals fetches balance and nonce off the frame loop.
func (g *Game) refreshSignals() {
	if g.reader == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		sig, err := g.reader.Read(ctx, g.session.Account())
		if err != nil {
			g.log.Warn("signal refresh failed", "err", err)
			return
		}
		select {
		case g.signals <- sig:
		default:
		}
	}()
}

func (g *Game) statusLines(st game.State) []string {
	lines := []string{
		"bonsai — " + shortAddr(g.session.Account()),
	}
	switch {
	case !st.Planted():
		lines = append(lines, "no tree yet — press P to plant a seed")
	case st.Withered():
		lines = append(lines,
			fmt.Sprintf("growth %d   health %.0f%%   missed %d days", st.Growth, st.Health()*100, st.MissedStreak),
			"withered — press V to revive")
	default:
		lines = append(lines,
			fmt.Sprintf("growth %d   health %.0f%%   missed %d days", st.Growth, st.Health()*100, st.MissedStreak))
		if st.LastWateredAt != nil {
			if since := time.Since(*st.LastWateredAt); since < time.Hour {
				remaining := 24*time.Hour - since
				lines = append(lines, "watered — next in "+remaining.Round(time.Minute).String())
			} else {
				lines = append(lines, "press W to water")
			}
		}
	}
	if g.friend != "" {
		lines = append(lines, "G grafts "+shortAddr(g.friend))
	}
	if g.busy {
		lines = append(lines, "waiting for the wallet...")
	}
	return lines
}

func shortAddr(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
