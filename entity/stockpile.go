package entity

import (
	"github.com/lixenwraith/gatherer/render"
)

// Stockpile is the passive base workers unload into
type Stockpile struct {
	Body
	inventory Inventory
}

func NewStockpile(id ID, p Placement) *Stockpile {
	return &Stockpile{Body: newBody(id, p)}
}

func (s *Stockpile) Kind() Kind {
	return KindStockpile
}

// Deposit merges the lines into the stockpile by kind
func (s *Stockpile) Deposit(lines []Line) {
	s.inventory.Merge(lines)
}

// Lines returns the stored lines for inspection
func (s *Stockpile) Lines() []Line {
	return s.inventory.Lines()
}

// Amount returns the stored amount of kind
func (s *Stockpile) Amount(kind string) int {
	return s.inventory.Amount(kind)
}

func (s *Stockpile) Render(surface render.Surface) {
	surface.FillRect(s.pos.X, s.pos.Y, s.size.X, s.size.Y, render.SelectionColor(s.selected, render.RgbStockpile))
}
