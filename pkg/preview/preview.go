// Package preview renders a diagnostic HTML view of the layer stacks a
// schema selects for a given trait output. It exists for schema authors: the
// binary item contract stays inspectable without a compose backend. Preview
// output is never part of the pipeline contract.
package preview

import (
	"embed"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/sporeprotocol/layergen/pkg/codes"
	"github.com/sporeprotocol/layergen/pkg/layers"
	"github.com/sporeprotocol/layergen/pkg/params"
	"github.com/sporeprotocol/layergen/pkg/schema"
)

//go:embed templates
var templateFS embed.FS

const templateName = "templates/preview.html"

var colorCodePattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Option customises the preview renderer.
type Option func(*Renderer)

// WithSelection pins the renderer to an already-resolved theme selection.
func WithSelection(selection *theme.Selection) Option {
	return func(r *Renderer) {
		if selection != nil {
			r.selection = selection
		}
	}
}

// WithVariant switches the built-in theme to the named variant ("dark" is
// shipped by default). Unknown variants fall back to the base token set.
func WithVariant(variant string) Option {
	return func(r *Renderer) {
		if r.selection != nil {
			r.selection.Variant = variant
		}
	}
}

// WithThemeSelector resolves the named theme/variant through the selector
// before rendering. Selection failures surface from New.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(r *Renderer) {
		r.selector = selector
		r.themeName = name
		r.themeVariant = variant
	}
}

// Renderer renders layer stacks into a standalone HTML document.
type Renderer struct {
	templateSet *pongo2.TemplateSet
	policy      *bluemonday.Policy
	selection   *theme.Selection

	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
}

// New constructs a Renderer with the embedded template and the default
// theme. Options may swap the theme selection.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		templateSet: pongo2.NewSet("layergen-preview", pongo2.NewFSLoader(templateFS)),
		policy:      bluemonday.StrictPolicy(),
		selection:   defaultSelection(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.selector != nil {
		selection, err := r.selector.Select(r.themeName, r.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("preview: select theme %q/%q: %w", r.themeName, r.themeVariant, err)
		}
		r.selection = selection
	}
	return r, nil
}

// Render produces the HTML preview for the given decoded parameters and
// built layer stacks. Color-code layers must carry #RRGGBB content; anything
// else surfaces the bad-color-code error.
func (r *Renderer) Render(p params.Parameters, stacks []layers.ImageLayers) ([]byte, error) {
	images := make([]pongo2.Context, 0, len(stacks))
	for _, stack := range stacks {
		layerViews := make([]pongo2.Context, 0, len(stack.Items))
		for _, it := range stack.Items {
			if it.Kind == schema.ColorCode && !colorCodePattern.MatchString(it.Content) {
				return nil, codes.Newf(codes.BadColorCodeFormat, "preview: image %q carries malformed color code %q", stack.Name, it.Content)
			}
			layerViews = append(layerViews, pongo2.Context{
				"kind":    it.Kind.Keyword(),
				"content": r.policy.Sanitize(it.Content),
				"swatch":  it.Kind == schema.ColorCode,
			})
		}
		images = append(images, pongo2.Context{
			"name":   stack.Name,
			"layers": layerViews,
		})
	}

	traitViews := make([]pongo2.Context, 0, len(p.TraitOutput))
	for _, out := range p.TraitOutput {
		values := make([]string, 0, len(out.Traits))
		for _, v := range out.Traits {
			values = append(values, r.policy.Sanitize(v.String()))
		}
		traitViews = append(traitViews, pongo2.Context{
			"name":   out.Name,
			"values": strings.Join(values, ", "),
		})
	}

	tmpl, err := r.templateSet.FromFile(templateName)
	if err != nil {
		return nil, fmt.Errorf("preview: load template: %w", err)
	}
	html, err := tmpl.ExecuteBytes(pongo2.Context{
		"theme":   r.themeLabel(),
		"cssvars": r.cssVars(),
		"traits":  traitViews,
		"images":  images,
	})
	if err != nil {
		return nil, fmt.Errorf("preview: execute template: %w", err)
	}
	return html, nil
}

func (r *Renderer) themeLabel() string {
	if r.selection == nil {
		return ""
	}
	if r.selection.Variant == "" {
		return r.selection.Theme
	}
	return r.selection.Theme + "/" + r.selection.Variant
}

// cssVars flattens the selected theme tokens (variant tokens layered over
// the base set) into --name custom properties, sorted for stable output.
func (r *Renderer) cssVars() []pongo2.Context {
	if r.selection == nil || r.selection.Manifest == nil {
		return nil
	}
	manifest := r.selection.Manifest

	tokens := make(map[string]string, len(manifest.Tokens))
	for name, value := range manifest.Tokens {
		tokens[name] = value
	}
	if variant, ok := manifest.Variants[r.selection.Variant]; ok {
		for name, value := range variant.Tokens {
			tokens[name] = value
		}
	}

	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	vars := make([]pongo2.Context, 0, len(names))
	for _, name := range names {
		vars = append(vars, pongo2.Context{
			"name":  "--" + name,
			"value": tokens[name],
		})
	}
	return vars
}

func defaultSelection() *theme.Selection {
	manifest := &theme.Manifest{
		Name:    "plain",
		Version: "1.0.0",
		Tokens: map[string]string{
			"surface": "#ffffff",
			"ink":     "#1b1b1f",
			"accent":  "#3b82f6",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"surface": "#111114",
					"ink":     "#f4f4f5",
				},
			},
		},
	}
	return &theme.Selection{Theme: "plain", Manifest: manifest}
}

// DefaultProvider exposes the built-in theme manifest through a go-theme
// registry so embedders can layer their own manifests next to it and drive
// WithThemeSelector from a shared provider.
func DefaultProvider() (theme.ThemeProvider, error) {
	registry := theme.NewRegistry()
	if err := registry.Register(defaultSelection().Manifest); err != nil {
		return nil, fmt.Errorf("preview: register default theme: %w", err)
	}
	return registry, nil
}
