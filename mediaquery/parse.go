// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mediaquery

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/viewport/base/errors"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// term is one parenthesized feature test within a media query.
type term struct {
	// feature is the lowercased feature name as written,
	// including any min- or max- prefix.
	feature string

	// value is the lowercased value text after the colon,
	// empty for boolean terms such as (hover).
	value string
}

// clause is one comma-separated alternative within a query list:
// an optional negation, an optional media type, and the feature
// terms joined by "and".
type clause struct {
	not   bool
	typ   string
	terms []term
}

// token is one lexed CSS token with its text.
type token struct {
	tt   css.TokenType
	text string
}

// lexQuery tokenizes a media query, dropping whitespace and comments.
func lexQuery(query string) ([]token, error) {
	lex := css.NewLexer(parse.NewInputString(query))
	var toks []token
	for {
		tt, data := lex.Next()
		switch tt {
		case css.ErrorToken:
			if errors.Is(lex.Err(), io.EOF) {
				return toks, nil
			}
			return nil, lex.Err()
		case css.WhitespaceToken, css.CommentToken:
		default:
			toks = append(toks, token{tt: tt, text: string(data)})
		}
	}
}

// parseQuery parses a media query list following the level 3 grammar.
// The empty string parses as "all". Query text that does not follow
// the grammar returns an error, which callers treat as never matching.
func parseQuery(query string) ([]clause, error) {
	if strings.TrimSpace(query) == "" {
		return []clause{{typ: "all"}}, nil
	}
	toks, err := lexQuery(query)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var cls []clause
	for {
		c, err := p.clause()
		if err != nil {
			return nil, err
		}
		cls = append(cls, c)
		if !p.accept(css.CommaToken, "") {
			break
		}
	}
	if !p.done() {
		return nil, fmt.Errorf("unexpected %q", p.peek().text)
	}
	return cls, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) done() bool {
	return p.pos >= len(p.toks)
}

// peek returns the next token without consuming it,
// or the zero token at the end of input.
func (p *parser) peek() token {
	if p.done() {
		return token{}
	}
	return p.toks[p.pos]
}

// accept consumes the next token if it has the given type and, when
// text is non-empty, the given lowercased text.
func (p *parser) accept(tt css.TokenType, text string) bool {
	t := p.peek()
	if t.tt != tt {
		return false
	}
	if text != "" && strings.ToLower(t.text) != text {
		return false
	}
	p.pos++
	return true
}

// clause parses one comma-separated alternative. The "not" and "only"
// prefixes are accepted both before a media type, per the level 3
// grammar, and directly before a feature term, per level 4.
func (p *parser) clause() (clause, error) {
	var c clause
	if p.accept(css.IdentToken, "not") {
		c.not = true
	} else {
		p.accept(css.IdentToken, "only") // cosmetic
	}
	if t := p.peek(); t.tt == css.IdentToken && strings.ToLower(t.text) != "and" {
		c.typ = strings.ToLower(t.text)
		p.pos++
	} else {
		tm, err := p.term()
		if err != nil {
			return c, err
		}
		c.terms = append(c.terms, tm)
	}
	for p.accept(css.IdentToken, "and") {
		tm, err := p.term()
		if err != nil {
			return c, err
		}
		c.terms = append(c.terms, tm)
	}
	return c, nil
}

// term parses one parenthesized feature test.
func (p *parser) term() (term, error) {
	if !p.accept(css.LeftParenthesisToken, "") {
		return term{}, fmt.Errorf("expected feature term, got %q", p.peek().text)
	}
	t := p.peek()
	if t.tt != css.IdentToken {
		return term{}, fmt.Errorf("expected feature name, got %q", t.text)
	}
	tm := term{feature: strings.ToLower(t.text)}
	p.pos++
	if p.accept(css.ColonToken, "") {
		var val strings.Builder
		for !p.done() && p.peek().tt != css.RightParenthesisToken {
			val.WriteString(p.toks[p.pos].text)
			p.pos++
		}
		tm.value = strings.ToLower(val.String())
		if tm.value == "" {
			return term{}, fmt.Errorf("missing value for feature %q", tm.feature)
		}
	}
	if !p.accept(css.RightParenthesisToken, "") {
		return term{}, fmt.Errorf("unterminated feature term %q", tm.feature)
	}
	return tm, nil
}
