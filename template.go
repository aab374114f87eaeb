package support

import (
	"fmt"
	"strings"
	"text/template"
)

// HelperConfig configures template rendering
type HelperConfig struct {
	// Name is the template name used in parse and execution errors.
	Name string
	// Helpers are merged over the locale's FuncMap.
	Helpers map[string]any
}

// Template parses text with the helpers of locale.
func (t *Toolkit) Template(locale, text string, cfg HelperConfig) (*template.Template, error) {
	name := cfg.Name
	if name == "" {
		name = "support"
	}

	funcs := t.FuncMap(locale)
	for key, fn := range cfg.Helpers {
		funcs[key] = fn
	}

	tmpl, err := template.New(name).Option("missingkey=error").Funcs(funcs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("support: parse template %q: %w", name, err)
	}
	return tmpl, nil
}

// Render executes text against data with the helpers of locale.
func (t *Toolkit) Render(locale, text string, data any) (string, error) {
	return t.RenderWith(locale, text, data, HelperConfig{})
}

func (t *Toolkit) RenderWith(locale, text string, data any, cfg HelperConfig) (string, error) {
	tmpl, err := t.Template(locale, text, cfg)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("support: render template %q: %w", tmpl.Name(), err)
	}
	return out.String(), nil
}
