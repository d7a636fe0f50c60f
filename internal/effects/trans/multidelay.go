package trans

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

const multiDelaySlots = 6

// MultiDelayMode selects whether a pass captures the current frame
// into its ring, or overwrites the current frame with the oldest
// buffered entry.
type MultiDelayMode int

const (
	MultiDelayStore MultiDelayMode = iota
	MultiDelayFetch
)

// MultiDelay is a ring of whole-frame buffers. Each instance keeps its
// own ring; Slot does not share buffers between instances. The delay
// length is DelayFrames frames, or BeatK frames when UseBeatK is set;
// it is not measured in beats.
type MultiDelay struct {
	Slot        int
	Mode        MultiDelayMode
	DelayFrames int
	UseBeatK    bool
	BeatK       int

	ring      [][]byte
	w, h      int
	writePos  int
	count     int
	lastBeats []uint64
	frameN    uint64
}

func NewMultiDelay() effect.Effect {
	return &MultiDelay{DelayFrames: 1, BeatK: 1}
}

func (m *MultiDelay) SetParams(p *effect.ParamBlock) error {
	slot := p.GetInt("slot", int32(m.Slot))
	if slot < 0 {
		slot = 0
	}
	if slot >= multiDelaySlots {
		slot = multiDelaySlots - 1
	}
	m.Slot = int(slot)
	m.Mode = MultiDelayMode(p.GetInt("mode", int32(m.Mode)))
	delay := p.GetInt("delay", int32(m.DelayFrames))
	if delay < 1 {
		delay = 1
	}
	m.DelayFrames = int(delay)
	m.UseBeatK = p.GetBool("usebeatk", m.UseBeatK)
	m.BeatK = int(p.GetInt("beatk", int32(m.BeatK)))
	return nil
}

func (m *MultiDelay) ensure(w, h int) {
	if m.w == w && m.h == h && m.ring != nil {
		return
	}
	m.w, m.h = w, h
	m.ring = nil
	m.writePos = 0
	m.count = 0
}

func (m *MultiDelay) ringLen() int {
	n := m.DelayFrames
	if m.UseBeatK {
		n = m.BeatK
		if n < 1 {
			n = 1
		}
	}
	return n + 1
}

func (m *MultiDelay) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	m.ensure(f.Width, f.Height)
	m.frameN++

	n := m.ringLen()
	if len(m.ring) != n {
		m.ring = make([][]byte, n)
		m.writePos = 0
		m.count = 0
	}

	switch m.Mode {
	case MultiDelayStore:
		buf := make([]byte, len(f.Pix))
		copy(buf, f.Pix)
		m.ring[m.writePos] = buf
		m.writePos = (m.writePos + 1) % n
		if m.count < n {
			m.count++
		}
	case MultiDelayFetch:
		if m.count == 0 {
			return true
		}
		oldestPos := m.writePos
		if m.count == n {
			oldestPos = m.writePos
		} else {
			oldestPos = 0
		}
		buf := m.ring[oldestPos]
		if buf != nil && len(buf) == len(f.Pix) {
			copy(f.Pix, buf)
		}
	}
	return true
}
