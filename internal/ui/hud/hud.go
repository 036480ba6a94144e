// Package hud draws the heads-up display: HP and AP bars, the rolling
// message log, the equipped weapon, and the combat banner.
package hud

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"chosenoffset.com/ashfall/internal/dialogue"
	"chosenoffset.com/ashfall/internal/entity"
)

const (
	barWidth   = 160
	barHeight  = 10
	maxLogRows = 6
)

var (
	panelColor = color.RGBA{20, 20, 25, 200}
	hpColor    = color.RGBA{200, 60, 60, 255}
	apColor    = color.RGBA{70, 150, 220, 255}
	backColor  = color.RGBA{60, 60, 65, 255}
)

// HUD renders the game's UI overlay.
type HUD struct {
	screenWidth  int
	screenHeight int

	messages []string
}

// New creates a HUD sized to the screen.
func New(screenWidth, screenHeight int) *HUD {
	return &HUD{screenWidth: screenWidth, screenHeight: screenHeight}
}

// AddMessage appends a line to the rolling log.
func (h *HUD) AddMessage(msg string) {
	h.messages = append(h.messages, msg)
	if len(h.messages) > maxLogRows {
		h.messages = h.messages[len(h.messages)-maxLogRows:]
	}
}

// Draw renders the overlay: player panel top-left, message log bottom-left,
// combat banner top-center, dialogue box bottom-center when talking.
func (h *HUD) Draw(screen *ebiten.Image, player *entity.Entity, inCombat bool, round int, weaponName string, dlg *dialogue.Engine) {
	if player != nil {
		h.drawPanel(screen, player, weaponName)
	}
	h.drawLog(screen)
	if inCombat {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("== COMBAT round %d ==", round), h.screenWidth/2-70, 8)
	}
	if dlg != nil && dlg.Active() {
		h.drawDialogue(screen, dlg)
	}
}

func (h *HUD) drawPanel(screen *ebiten.Image, player *entity.Entity, weaponName string) {
	ebitenutil.DrawRect(screen, 8, 8, barWidth+16, 74, panelColor)
	ebitenutil.DebugPrintAt(screen, player.Name, 14, 10)

	h.drawBar(screen, 14, 28, player.Stats.HP, player.Stats.MaxHP, hpColor)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d", player.Stats.HP, player.Stats.MaxHP), 14+barWidth-60, 24)

	h.drawBar(screen, 14, 46, player.Stats.AP, player.Stats.MaxAP, apColor)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("AP %d/%d", player.Stats.AP, player.Stats.MaxAP), 14+barWidth-60, 42)

	ebitenutil.DebugPrintAt(screen, weaponName, 14, 62)
}

func (h *HUD) drawBar(screen *ebiten.Image, x, y float64, value, max int, fill color.RGBA) {
	ebitenutil.DrawRect(screen, x, y, barWidth, barHeight, backColor)
	if max > 0 && value > 0 {
		w := barWidth * float64(value) / float64(max)
		ebitenutil.DrawRect(screen, x, y, w, barHeight, fill)
	}
}

func (h *HUD) drawLog(screen *ebiten.Image) {
	y := h.screenHeight - 16*(len(h.messages)+1)
	for _, msg := range h.messages {
		ebitenutil.DebugPrintAt(screen, msg, 8, y)
		y += 16
	}
}

func (h *HUD) drawDialogue(screen *ebiten.Image, dlg *dialogue.Engine) {
	node := dlg.Node()
	if node == nil {
		return
	}
	height := float64(30 + 16*len(node.Choices))
	top := float64(h.screenHeight) - height - 120
	ebitenutil.DrawRect(screen, float64(h.screenWidth)/2-240, top, 480, height, panelColor)
	ebitenutil.DebugPrintAt(screen, node.Text, h.screenWidth/2-232, int(top)+4)
	for i, ch := range node.Choices {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d) %s", i+1, ch.Text), h.screenWidth/2-224, int(top)+24+16*i)
	}
}
