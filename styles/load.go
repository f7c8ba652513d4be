package styles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexcabrera/surface/hexcolor"
)

// themeFile is the on-disk palette. Every field is optional; unset
// fields keep the default theme's value.
type themeFile struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Success   string `yaml:"success"`
	Error     string `yaml:"error"`
	Warning   string `yaml:"warning"`
	Info      string `yaml:"info"`

	Text       string `yaml:"text"`
	TextDim    string `yaml:"text_dim"`
	TextBright string `yaml:"text_bright"`

	Surface string `yaml:"surface"`
	Border  string `yaml:"border"`
}

// Load reads a theme palette from a YAML file, falling back to the
// default theme when the file is missing. Colors are hex strings in
// any form hexcolor.Parse accepts.
func Load(path string) (*Theme, error) {
	t := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("read theme: %w", err)
	}

	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return t, fmt.Errorf("parse theme: %w", err)
	}

	assign := func(dst *hexcolor.Color, field, raw string) error {
		if raw == "" {
			return nil
		}
		c, err := hexcolor.Parse(raw)
		if err != nil {
			return fmt.Errorf("theme %s: %w", field, err)
		}
		*dst = c
		return nil
	}

	for _, e := range []struct {
		dst   *hexcolor.Color
		field string
		raw   string
	}{
		{&t.Primary, "primary", f.Primary},
		{&t.Secondary, "secondary", f.Secondary},
		{&t.Success, "success", f.Success},
		{&t.Error, "error", f.Error},
		{&t.Warning, "warning", f.Warning},
		{&t.Info, "info", f.Info},
		{&t.Text, "text", f.Text},
		{&t.TextDim, "text_dim", f.TextDim},
		{&t.TextBright, "text_bright", f.TextBright},
		{&t.Surface, "surface", f.Surface},
		{&t.Border, "border", f.Border},
	} {
		if err := assign(e.dst, e.field, e.raw); err != nil {
			return t, err
		}
	}

	return t, nil
}
