// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"image"
	"strconv"
	"strings"

	"cogentcore.org/viewport/base/errors"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Stylesheet is the accumulated style scope of an isolation boundary.
// Styles injected through [Boundary.AddGlobalStyle] are appended to it
// and apply only within the boundary. The raw text of every injection
// is kept even when it fails to parse, so the scope can be serialized
// back out exactly as it was given.
type Stylesheet struct {
	texts []string
	rules []*css.Rule
}

// AddText parses the given CSS text and appends its rules to the
// stylesheet. The raw text is always recorded; rules from text that
// fails to parse are dropped with a logged error.
func (ss *Stylesheet) AddText(text string) {
	ss.texts = append(ss.texts, text)
	sheet, err := parser.Parse(text)
	if errors.Log(err) != nil {
		return
	}
	ss.rules = append(ss.rules, sheet.Rules...)
}

// Text returns the concatenation of all injected style text,
// in injection order.
func (ss *Stylesheet) Text() string {
	return strings.Join(ss.texts, "\n")
}

// Rules returns the parsed rules of all injected styles,
// in injection order.
func (ss *Stylesheet) Rules() []*css.Rule {
	return ss.rules
}

// Declarations returns the declarations of all rules whose selector
// list includes the given selector.
func (ss *Stylesheet) Declarations(selector string) []*css.Declaration {
	var decls []*css.Declaration
	for _, rule := range ss.rules {
		for _, sel := range rule.Selectors {
			if strings.TrimSpace(sel) == selector {
				decls = append(decls, rule.Declarations...)
				break
			}
		}
	}
	return decls
}

// HostSize returns the content size requested by :host rules in the
// stylesheet, through their width and height declarations in pixels.
// A zero component means the corresponding axis is not styled.
// Later declarations override earlier ones.
func (ss *Stylesheet) HostSize() image.Point {
	sz := image.Point{}
	for _, decl := range ss.Declarations(":host") {
		px, ok := parsePx(decl.Value)
		if !ok {
			continue
		}
		switch strings.ToLower(decl.Property) {
		case "width":
			sz.X = px
		case "height":
			sz.Y = px
		}
	}
	return sz
}

// parsePx parses a CSS pixel length such as "640px" or a bare number.
func parsePx(v string) (int, bool) {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	f, err := strconv.ParseFloat(v, 32)
	if err != nil || f < 0 {
		return 0, false
	}
	return int(f), true
}
