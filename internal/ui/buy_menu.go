// internal/ui/buy_menu.go
package ui

import (
	"fmt"
	"image"

	"go-spike-rush/internal/config"
	"go-spike-rush/internal/defs"
	"go-spike-rush/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	buyButtonWidth  = 240
	buyButtonHeight = 32
	buyButtonGap    = 6
)

type buyOption struct {
	button *Button
	weapon string
	armor  string
	cost   int
}

// BuyMenu: меню покупки оружия и брони. Клики уходят в Purchaser.
type BuyMenu struct {
	fontFace  font.Face
	options   []buyOption
	done      *Button
	panelRect image.Rectangle
}

func NewBuyMenu(face font.Face) *BuyMenu {
	m := &BuyMenu{fontFace: face}
	x := config.ScreenWidth/2 - buyButtonWidth/2
	y := 140

	add := func(o buyOption) {
		o.button = NewButton(image.Rect(x, y, x+buyButtonWidth, y+buyButtonHeight), o.button.Text, face)
		m.options = append(m.options, o)
		y += buyButtonHeight + buyButtonGap
	}
	for _, name := range defs.WeaponNames() {
		def := defs.WeaponLibrary[name]
		add(buyOption{button: &Button{Text: fmt.Sprintf("%s  %d", name, def.Cost)}, weapon: name, cost: def.Cost})
	}
	for _, id := range defs.ArmorIDs {
		def := defs.ArmorLibrary[id]
		add(buyOption{button: &Button{Text: fmt.Sprintf("%s  %d", def.Name, def.Cost)}, armor: id, cost: def.Cost})
	}
	y += buyButtonGap
	m.done = NewButton(image.Rect(x, y, x+buyButtonWidth, y+buyButtonHeight), "Ready (B)", face)
	m.panelRect = image.Rect(x-20, 100, x+buyButtonWidth+20, y+buyButtonHeight+20)
	return m
}

// HandleClick передаёт клик в Purchaser. Возвращает true, если клик
// попал в меню и не должен уходить в игру.
func (m *BuyMenu) HandleClick(x, y int, p interfaces.Purchaser) bool {
	for _, o := range m.options {
		if !o.button.Contains(x, y) {
			continue
		}
		if o.weapon != "" {
			p.BuyWeapon(o.weapon)
		} else {
			p.BuyArmor(o.armor)
		}
		return true
	}
	if m.done.Contains(x, y) {
		p.CloseBuyMenu()
		return true
	}
	return image.Pt(x, y).In(m.panelRect)
}

func (m *BuyMenu) Draw(screen *ebiten.Image, credits int, mouseX, mouseY int) {
	r := m.panelRect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.PanelColor, false)
	title := fmt.Sprintf("BUY  (credits: %d)", credits)
	text.Draw(screen, title, m.fontFace, r.Min.X+20, r.Min.Y+24, config.TextLightColor)
	for _, o := range m.options {
		o.button.Disabled = o.cost > credits
		o.button.Draw(screen, mouseX, mouseY)
	}
	m.done.Draw(screen, mouseX, mouseY)
}
