package entity

import (
	"strconv"

	"github.com/lixenwraith/gatherer/constants"
	"github.com/lixenwraith/gatherer/render"
)

// ResourceNode is a passive, depletable source of one resource kind
type ResourceNode struct {
	Body
	resourceKind string
	remaining    int
}

// NewResourceNode creates a node holding amount of resourceKind
func NewResourceNode(id ID, p Placement, resourceKind string, amount int) *ResourceNode {
	if amount < 0 {
		amount = 0
	}
	return &ResourceNode{
		Body:         newBody(id, p),
		resourceKind: resourceKind,
		remaining:    amount,
	}
}

// NewTree creates a default-sized wood node at (x, y)
func NewTree(id ID, x, y float64) *ResourceNode {
	return NewResourceNode(id, At(x, y), constants.ResourceWood, constants.TreeInitialAmount)
}

func (n *ResourceNode) Kind() Kind {
	return KindResource
}

// ResourceKind returns the inventory kind this node yields
func (n *ResourceNode) ResourceKind() string {
	return n.resourceKind
}

func (n *ResourceNode) Remaining() int {
	return n.remaining
}

func (n *ResourceNode) Depleted() bool {
	return n.remaining <= 0
}

// Harvest removes up to amount and returns what was actually removed
// Remaining never drops below zero
func (n *ResourceNode) Harvest(amount int) int {
	if amount <= 0 || n.remaining <= 0 {
		return 0
	}
	if amount > n.remaining {
		amount = n.remaining
	}
	n.remaining -= amount
	return amount
}

func (n *ResourceNode) Render(s render.Surface) {
	s.FillRect(n.pos.X, n.pos.Y, n.size.X, n.size.Y, render.RgbTree)
	s.DrawText(n.pos.X, n.pos.Y-constants.LabelOffset, strconv.Itoa(n.remaining), render.RgbLabel)
}
