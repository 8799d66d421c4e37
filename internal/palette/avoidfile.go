package palette

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/jsvensson/colorgap/internal/color"
)

// LoadAvoidFile parses an HCL avoid file and returns its colors.
//
// The file contains an optional palette block defining named colors and a
// required avoid block listing the colors to seed, either literal hex
// strings or palette.<name> references:
//
//	palette {
//	  chat = "#36393F"
//	}
//
//	avoid {
//	  background = palette.chat
//	  accent     = "FF0000"
//	}
//
// Attributes within each block seed in sorted-name order so a file always
// produces the same avoid sequence.
func LoadAvoidFile(path string) ([]color.Color, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading avoid file: %w", err)
	}

	file, diags := hclsyntax.ParseConfig(src, path, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	body := file.Body.(*hclsyntax.Body)

	named, err := parseNamedPalette(body)
	if err != nil {
		return nil, err
	}
	ctx := buildEvalContext(named)

	colors, err := parseAvoidBlocks(body, ctx)
	if err != nil {
		return nil, err
	}
	if colors == nil {
		return nil, fmt.Errorf("no avoid block found in %s", path)
	}
	return colors, nil
}

func parseNamedPalette(body *hclsyntax.Body) (map[string]color.Color, error) {
	named := make(map[string]color.Color)
	for _, block := range body.Blocks {
		if block.Type != "palette" {
			continue
		}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing palette: %s", diags.Error())
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("evaluating palette.%s: %s", name, diags.Error())
			}
			if val.Type() != cty.String {
				return nil, fmt.Errorf("palette.%s: expected a hex string", name)
			}
			c, err := color.ParseHex(val.AsString())
			if err != nil {
				return nil, fmt.Errorf("palette.%s: %w", name, err)
			}
			named[name] = c
		}
	}
	return named, nil
}

func buildEvalContext(named map[string]color.Color) *hcl.EvalContext {
	if len(named) == 0 {
		return nil
	}

	vals := make(map[string]cty.Value, len(named))
	for name, c := range named {
		vals[name] = cty.StringVal(c.Hex())
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": cty.ObjectVal(vals),
		},
	}
}

// parseAvoidBlocks returns nil (not an empty slice) when the file has no
// avoid block, so the caller can distinguish "missing" from "empty".
func parseAvoidBlocks(body *hclsyntax.Body, ctx *hcl.EvalContext) ([]color.Color, error) {
	var colors []color.Color
	seen := false

	for _, block := range body.Blocks {
		if block.Type != "avoid" {
			continue
		}
		seen = true

		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("parsing avoid: %s", diags.Error())
		}

		// Sort keys for a deterministic seed order.
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			val, diags := attrs[name].Expr.Value(ctx)
			if diags.HasErrors() {
				return nil, fmt.Errorf("evaluating avoid.%s: %s", name, diags.Error())
			}
			if val.Type() != cty.String {
				return nil, fmt.Errorf("avoid.%s: expected a hex string", name)
			}
			c, err := color.ParseHex(val.AsString())
			if err != nil {
				return nil, fmt.Errorf("avoid.%s: %w", name, err)
			}
			colors = append(colors, c)
		}
	}

	if !seen {
		return nil, nil
	}
	if colors == nil {
		colors = []color.Color{}
	}
	return colors, nil
}
