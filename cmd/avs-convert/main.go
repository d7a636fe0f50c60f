// Command avs-convert decodes a preset file (binary Nullsoft format or
// micro-preset text) and emits a JSON description of its effect chain,
// warnings, and unknown tokens — the inspection tool a preset author
// or a CI round-trip check runs instead of the full Studio GUI.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pfahlr/vis-avs-sub001/internal/preset"
	"github.com/pfahlr/vis-avs-sub001/internal/registry"
)

type effectJSON struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params"`
}

type outputJSON struct {
	Effects  []effectJSON `json:"effects"`
	Warnings []string     `json:"warnings"`
	Unknown  []string     `json:"unknown"`
	Comments []string     `json:"comments"`
}

func main() {
	in := flag.String("in", "", "Path to a preset file (binary or micro-preset text)")
	out := flag.String("out", "", "Path to write JSON output (default: stdout)")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Usage: avs-convert -in <preset-file> [-out <json-file>]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading preset: %v\n", err)
		os.Exit(1)
	}

	reg := registry.New()
	p := preset.Load(data, reg)

	result := outputJSON{Warnings: p.Warnings, Unknown: p.Unknown, Comments: p.Comments}
	for _, entry := range p.Pipeline.Entries() {
		params := make(map[string]string)
		for _, name := range entry.Params.Names() {
			if v, ok := entry.Params.Get(name); ok {
				params[name] = v.String()
			}
		}
		result.Effects = append(result.Effects, effectJSON{Name: entry.Name, Params: params})
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Println(string(encoded))
		return
	}
	if err := os.WriteFile(*out, encoded, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}
