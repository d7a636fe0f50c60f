package preset

import (
	"strconv"
	"strings"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/misc"
)

const (
	apeIDBase       = 16384
	apeIDLength     = 32
	listID          = 0xFFFFFFFE
	commentEffectID = 21
	magicPrefix     = "Nullsoft AVS Preset "
	magicTerminator = 0x1A
)

var knownMagicVersions = []string{"0.2", "0.1"}

func isKnownMagicVersion(v string) bool {
	for _, k := range knownMagicVersions {
		if k == v {
			return true
		}
	}
	return false
}

// decodeMagicHeader reports whether data opens with the binary magic
// prefix, returning the byte offset right after the version's
// terminating 0x1A and the version string itself.
func decodeMagicHeader(data []byte) (headerLen int, version string, ok bool) {
	if len(data) <= len(magicPrefix) {
		return 0, "", false
	}
	if string(data[:len(magicPrefix)]) != magicPrefix {
		return 0, "", false
	}
	rest := data[len(magicPrefix):]
	idx := strings.IndexByte(string(rest), magicTerminator)
	if idx < 0 {
		return 0, "", false
	}
	return len(magicPrefix) + idx + 1, string(rest[:idx]), true
}

// reader is a bounds-checked little-endian cursor over a preset's raw
// bytes, the Go counterpart of preset.cpp's Reader.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) readByte(limit int) (byte, bool) {
	if r.pos >= limit || r.pos >= len(r.data) {
		return 0, false
	}
	b := r.data[r.pos]
	r.pos++
	return b, true
}

func (r *reader) readU32(limit int) (uint32, bool) {
	if r.pos+4 > limit || r.pos+4 > len(r.data) {
		return 0, false
	}
	v := uint32(r.data[r.pos]) | uint32(r.data[r.pos+1])<<8 | uint32(r.data[r.pos+2])<<16 | uint32(r.data[r.pos+3])<<24
	r.pos += 4
	return v, true
}

func parseBinary(data []byte, headerLen int, registry *effect.Registry) *Preset {
	p := newPreset(registry)
	r := &reader{data: data, pos: headerLen}
	entries := parseRenderListChunk(r, len(data), p, registry)
	for _, e := range entries {
		p.Pipeline.AddEntry(e)
	}
	return p
}

// parseRenderListChunk decodes one preset-mode header followed by a
// sequence of effect headers, recursing for nested kListId groups.
// It never returns an error: any corrupt byte range truncates the
// chunk and is reported as a warning.
func parseRenderListChunk(r *reader, chunkEnd int, p *Preset, registry *effect.Registry) []effect.Entry {
	if chunkEnd > len(r.data) {
		p.warn("render list exceeds buffer bounds")
		chunkEnd = len(r.data)
	}
	if r.pos >= chunkEnd {
		return nil
	}

	modeByte, ok := r.readByte(chunkEnd)
	if !ok {
		p.warn("incomplete preset header")
		r.pos = chunkEnd
		return nil
	}
	mode := uint32(modeByte)
	if modeByte&0x80 != 0 {
		ext, ok := r.readU32(chunkEnd)
		if !ok {
			p.warn("corrupt preset mode")
			r.pos = chunkEnd
			return nil
		}
		mode = uint32(modeByte&^0x80) | ext
	}
	// Extended-size quirk: the declared byte count includes 4 bytes it
	// shouldn't (see the original r_list.cpp comment this ports), so
	// the payload actually consumed is declared-4, not declared.
	extendedSize := (mode >> 24) & 0xFF
	if extendedSize > 0 {
		declared := 0
		if extendedSize >= 4 {
			declared = int(extendedSize - 4)
		}
		if r.pos+declared > chunkEnd {
			p.warn("truncated extended preset data")
			r.pos = chunkEnd
			return nil
		}
		consumed := 0
		for consumed+4 <= declared && consumed < 8*4 {
			if _, ok := r.readU32(chunkEnd); !ok {
				p.warn("incomplete extended preset data")
				r.pos = chunkEnd
				return nil
			}
			consumed += 4
		}
		if declared > consumed {
			r.pos += declared - consumed
		}
	}

	var entries []effect.Entry
	for r.pos+8 <= chunkEnd {
		effectID, ok := r.readU32(chunkEnd)
		if !ok {
			p.warn("truncated effect header")
			r.pos = chunkEnd
			break
		}

		var apeID string
		if effectID >= apeIDBase && effectID != listID {
			if r.pos+apeIDLength > chunkEnd {
				p.warn("truncated APE effect identifier")
				r.pos = chunkEnd
				break
			}
			raw := r.data[r.pos : r.pos+apeIDLength]
			if nul := strings.IndexByte(string(raw), 0); nul >= 0 {
				apeID = string(raw[:nul])
			} else {
				apeID = string(raw)
			}
			r.pos += apeIDLength
		}

		payloadLen, ok := r.readU32(chunkEnd)
		if !ok {
			p.warn("truncated effect payload length")
			r.pos = chunkEnd
			break
		}

		payloadStart := r.pos
		payloadEnd := payloadStart + int(payloadLen)
		if payloadEnd > chunkEnd || payloadEnd > len(r.data) {
			p.warn("truncated effect payload")
			r.pos = chunkEnd
			break
		}
		payload := r.data[payloadStart:payloadEnd]

		name := apeID
		if name == "" {
			name = effectNameForID(registry, effectID)
		}

		switch {
		case effectID == commentEffectID:
			entries = append(entries, parseCommentPayload(payload, p))
		case effectID == listID:
			child := &reader{data: r.data, pos: payloadStart}
			nested := parseRenderListChunk(child, payloadEnd, p, registry)
			list := misc.NewRenderList()
			list.(effect.EffectList).SetChildren(nested)
			entries = append(entries, effect.Entry{Name: "Misc / Render List", Params: effect.NewParamBlock(), Effect: list})
		case name != "":
			inst, canonical, err := registry.New(name)
			if err != nil {
				p.warn("preset loader does not yet decode effect: " + describeEffect(effectID, name))
				p.unknown("effect:" + describeEffect(effectID, name))
				entries = append(entries, unknownEntry(name, payload))
				break
			}
			params := effect.NewParamBlock()
			inst.SetParams(params)
			entries = append(entries, effect.Entry{Name: canonical, Params: params, Effect: inst})
		default:
			p.warn("unsupported effect index: " + describeEffect(effectID, name))
			p.unknown("effect:" + describeEffect(effectID, name))
			entries = append(entries, unknownEntry(name, payload))
		}

		r.pos = payloadEnd
	}

	if r.pos < chunkEnd {
		r.pos = chunkEnd
	}
	return entries
}

func unknownEntry(name string, payload []byte) effect.Entry {
	raw := make([]byte, len(payload))
	copy(raw, payload)
	u := &misc.Unknown{OriginalToken: name, RawPayload: raw}
	return effect.Entry{Name: "Misc / Unknown", Params: effect.NewParamBlock(), Effect: u}
}

func parseCommentPayload(payload []byte, p *Preset) effect.Entry {
	text := ""
	if len(payload) >= 4 {
		strLen := int(uint32(payload[0]) | uint32(payload[1])<<8 | uint32(payload[2])<<16 | uint32(payload[3])<<24)
		if strLen >= 0 && 4+strLen <= len(payload) {
			text = string(payload[4 : 4+strLen])
			text = strings.TrimSuffix(text, "\x00")
		}
	}
	p.Comments = append(p.Comments, text)
	c := &misc.Comment{Text: text}
	return effect.Entry{Name: "Misc / Comment", Params: effect.NewParamBlock(), Effect: c}
}

func describeEffect(effectID uint32, name string) string {
	if name != "" {
		return name + " (ID=" + strconv.FormatUint(uint64(effectID), 10) + ")"
	}
	return "ID=" + strconv.FormatUint(uint64(effectID), 10)
}

func effectNameForID(registry *effect.Registry, effectID uint32) string {
	name, ok := registry.LegacyTokenFor(int32(effectID))
	if !ok {
		return ""
	}
	return name
}
