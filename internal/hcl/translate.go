package hcl

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/blockart/internal/config"
	"github.com/specialistvlad/blockart/internal/palette"
	"github.com/zclconf/go-cty/cty"
)

// evalContext exposes the palette to settings files as the `color` object,
// so that `default_color = color.cyan` resolves to the palette key "6".
func evalContext() *hcl.EvalContext {
	colors := make(map[string]cty.Value)
	for _, c := range palette.All() {
		colors[strings.ToLower(c.Name)] = cty.StringVal(c.Key)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"color": cty.ObjectVal(colors),
		},
	}
}

// applySettings evaluates the attributes of one `settings` block and writes
// them over s.
func applySettings(ctx context.Context, body hcl.Body, evalCtx *hcl.EvalContext, s *config.Settings) error {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return diags
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		attr := attrs[name]
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return diags
		}

		var err error
		switch name {
		case "default_filename":
			var fn string
			if err = decode(ctx, val, &fn); err == nil {
				fn = strings.TrimSpace(fn)
				if fn == "" {
					err = fmt.Errorf("must not be empty")
				}
				s.DefaultFilename = fn
			}
		case "default_color":
			var key string
			if err = decode(ctx, val, &key); err == nil {
				c, ok := palette.Lookup(key)
				if !ok {
					err = fmt.Errorf("unknown color %q", key)
				}
				s.DefaultColor = c.Key
			}
		case "clear_screen":
			var on bool
			if err = decode(ctx, val, &on); err == nil {
				s.ClearScreen = &on
			}
		case "prompt_save":
			err = decode(ctx, val, &s.PromptSave)
		default:
			return fmt.Errorf("%s: unsupported settings attribute %q", attr.Range, name)
		}
		if err != nil {
			return fmt.Errorf("%s: invalid %s: %w", attr.Range, name, err)
		}
	}
	return nil
}
