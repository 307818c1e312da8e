package components

import (
	cfg "github.com/automoto/seekthescounge/config"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// Contacts holds one flag per side of a body.
type Contacts struct {
	Left, Right, Up, Down bool
}

// Side returns the flag on the given horizontal side.
func (c Contacts) Side(dir cfg.Direction) bool {
	if dir == cfg.DirLeft {
		return c.Left
	}
	return c.Right
}

// PhysicsData is an arcade body. Velocity is px/s, DragX px/s². Blocked
// flags report solid contact, Touching flags contact with other bodies, and
// WasTouching holds the previous frame's Touching.
type PhysicsData struct {
	Velocity     Vector
	DragX        float64
	AllowGravity bool
	Immovable    bool
	Enabled      bool
	Width        float64
	Height       float64
	OffsetX      float64
	OffsetY      float64
	Blocked      Contacts
	Touching     Contacts
	WasTouching  Contacts
}

func (p *PhysicsData) OnFloor() bool {
	return p.Blocked.Down
}

func (p *PhysicsData) SetVelocityX(v float64) {
	p.Velocity.X = v
}

func (p *PhysicsData) SetVelocityY(v float64) {
	p.Velocity.Y = v
}

func (p *PhysicsData) SetVelocity(x, y float64) {
	p.Velocity = Vector{X: x, Y: y}
}

func (p *PhysicsData) SetDragX(drag float64) {
	p.DragX = drag
}

// SetSize resizes the body. The collision object follows on the next
// physics step, keeping its bottom edge in place.
func (p *PhysicsData) SetSize(w, h float64) {
	p.Width, p.Height = w, h
}

// SetOffset positions the body inside the drawn frame.
func (p *PhysicsData) SetOffset(x, y float64) {
	p.OffsetX, p.OffsetY = x, y
}

// Frame returns the drawn frame around a body at (x, y) of size w by h. The
// body is inset OffsetX from both sides and sits OffsetY below the top edge,
// on the frame's bottom.
func (p *PhysicsData) Frame(x, y, w, h float64) (fx, fy, fw, fh float64) {
	return x - p.OffsetX, y - p.OffsetY, w + 2*p.OffsetX, h + p.OffsetY
}

// Enable toggles simulation. A disabled body keeps its position and stops
// moving.
func (p *PhysicsData) Enable(on bool) {
	p.Enabled = on
	if !on {
		p.Velocity = Vector{}
	}
}

var Physics = donburi.NewComponentType[PhysicsData]()
