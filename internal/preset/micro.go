package preset

import (
	"strconv"
	"strings"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/misc"
)

// parseMicro decodes the line-based "micro-preset" text format (spec
// §4.6's text path): one effect per non-blank, non-comment line, a
// bare effect name optionally followed by key=value or key="quoted
// value" tokens. Values are auto-typed: "true"/"false" become bool,
// a parseable number becomes int or float, everything else stays a
// string. An unrecognized effect name degrades to Misc / Unknown
// rather than aborting the load.
func parseMicro(text string, registry *effect.Registry) *Preset {
	p := newPreset(registry)
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, params, bare := tokenizeLine(line)
		entry := buildEntry(name, params, bare, registry, p)
		p.Pipeline.AddEntry(entry)
	}
	return p
}

// tokenizeLine splits a line into its leading effect-name token, any
// key=value (or key="quoted value") pairs, and any bare tokens that
// carried no '=' (accumulated as a comment string for "Misc / Comment"
// lines, and otherwise reported as unknown tokens).
func tokenizeLine(line string) (name string, params map[string]string, bare []string) {
	fields := splitTokens(line)
	if len(fields) == 0 {
		return "", nil, nil
	}
	name = fields[0]
	params = make(map[string]string)
	for _, tok := range fields[1:] {
		eq := strings.IndexByte(tok, '=')
		if eq < 0 {
			bare = append(bare, tok)
			continue
		}
		key := strings.ToLower(strings.TrimSpace(tok[:eq]))
		val := tok[eq+1:]
		val = strings.Trim(val, `"`)
		params[key] = val
	}
	return name, params, bare
}

// splitTokens splits on whitespace but keeps a double-quoted value
// (which may itself contain spaces) as one token.
func splitTokens(line string) []string {
	var out []string
	var cur strings.Builder
	inQuotes := false
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == ' ' && !inQuotes:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

func buildEntry(name string, kv map[string]string, bare []string, registry *effect.Registry, p *Preset) effect.Entry {
	lower := strings.ToLower(name)
	if lower == "comment" || lower == "misc/comment" {
		text := strings.Join(bare, " ")
		p.Comments = append(p.Comments, text)
		return effect.Entry{Name: "Misc / Comment", Params: effect.NewParamBlock(), Effect: &misc.Comment{Text: text}}
	}

	inst, canonical, err := registry.New(name)
	if err != nil {
		for _, b := range bare {
			p.unknown(b)
		}
		p.warn("unsupported effect: " + name)
		return effect.Entry{
			Name:   "Misc / Unknown",
			Params: effect.NewParamBlock(),
			Effect: &misc.Unknown{OriginalToken: name, RawPayload: []byte(name)},
		}
	}

	params := effect.NewParamBlock()
	for key, raw := range kv {
		setAutoTyped(params, key, raw)
	}
	for _, b := range bare {
		p.unknown(name + ":" + b)
	}
	if err := inst.SetParams(params); err != nil {
		p.warn(canonical + ": " + err.Error())
	}
	return effect.Entry{Name: canonical, Params: params, Effect: inst}
}

// setAutoTyped infers bool/int/float/string from raw's shape, matching
// the original text format's untyped key=value tokens.
func setAutoTyped(p *effect.ParamBlock, key, raw string) {
	switch strings.ToLower(raw) {
	case "true":
		p.SetBool(key, true)
		return
	case "false":
		p.SetBool(key, false)
		return
	}
	if i, err := strconv.ParseInt(raw, 10, 32); err == nil {
		p.SetInt(key, int32(i))
		return
	}
	if f, err := strconv.ParseFloat(raw, 32); err == nil {
		p.SetFloat(key, float32(f))
		return
	}
	p.SetString(key, raw)
}
