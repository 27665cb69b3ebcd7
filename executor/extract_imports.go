package executor

import (
	"strings"

	"github.com/kakkky/starsole/errs"
	"github.com/kakkky/starsole/scanner"
	"github.com/kakkky/starsole/types"
)

// importSpec は一つのimport文が束縛する名前
//
//	import math           -> {module: math, alias: math}
//	import math as m      -> {module: math, alias: m}
//	from math import pi   -> {module: math, member: pi, alias: pi}
type importSpec struct {
	module types.ModuleName
	member types.MemberName
	alias  string
}

// extractImports はソースのうちトップレベルのimport文とfrom文を取り出す
// 取り出した行は空行に置き換えるので、残りのソースの行番号は変わらない
// 文字列リテラルの中や、行継続の続きにある行は文の先頭ではないので対象にしない
func extractImports(src string) ([]importSpec, string, error) {
	literals := literalSpans(src)
	lines := strings.SplitAfter(src, "\n")
	specs := make([]importSpec, 0)
	lineStart := 0
	continued := false
	for i, line := range lines {
		offset := lineStart
		lineStart += len(line)
		if continued || insideLiteral(literals, offset) {
			continued = strings.HasSuffix(line, "\\\n")
			continue
		}
		continued = strings.HasSuffix(line, "\\\n")

		tokens := scanner.Tokenize(line)
		if len(tokens) == 0 || tokens[0].Start != 0 {
			continue
		}
		switch tokens[0].Kind {
		case scanner.IMPORT, scanner.FROM:
		default:
			continue
		}
		lineSpecs, err := parseImportLine(line, tokens)
		if err != nil {
			return nil, "", err
		}
		specs = append(specs, lineSpecs...)
		if strings.HasSuffix(line, "\n") {
			lines[i] = "\n"
		} else {
			lines[i] = ""
		}
	}
	return uniqueImportSpecs(specs), strings.Join(lines, ""), nil
}

// literalSpans はソース全体を走査して文字列リテラルの範囲を返す
// 閉じられていない文字列はERRORになり、そこから末尾までを文字列とみなす
func literalSpans(src string) []scanner.Token {
	var spans []scanner.Token
	for _, tok := range scanner.Tokenize(src) {
		switch tok.Kind {
		case scanner.STRING, scanner.BYTES, scanner.ERROR:
			spans = append(spans, tok)
		}
	}
	return spans
}

func insideLiteral(spans []scanner.Token, offset int) bool {
	for _, span := range spans {
		if span.Start < offset && offset < span.End() {
			return true
		}
	}
	return false
}

// importParser は一行分のトークンを先頭から読む
type importParser struct {
	line   string
	tokens []scanner.Token
	pos    int
}

func parseImportLine(line string, tokens []scanner.Token) ([]importSpec, error) {
	p := &importParser{line: line, tokens: tokens}
	var specs []importSpec
	var err error
	switch p.next().Kind {
	case scanner.IMPORT:
		specs, err = p.importNames()
	case scanner.FROM:
		specs, err = p.fromNames()
	}
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != scanner.EOF {
		return nil, p.errorf()
	}
	return specs, nil
}

// importNames は import a, b as c を読む
func (p *importParser) importNames() ([]importSpec, error) {
	var specs []importSpec
	for {
		name, ok := p.ident()
		if !ok {
			return nil, p.errorf()
		}
		alias, err := p.alias(name)
		if err != nil {
			return nil, err
		}
		specs = append(specs, importSpec{module: types.ModuleName(name), alias: alias})
		if p.peek().Kind != scanner.COMMA {
			return specs, nil
		}
		p.next()
	}
}

// fromNames は from a import b, c as d を読む
func (p *importParser) fromNames() ([]importSpec, error) {
	module, ok := p.ident()
	if !ok {
		return nil, p.errorf()
	}
	if p.next().Kind != scanner.IMPORT {
		return nil, p.errorf()
	}
	var specs []importSpec
	for {
		member, ok := p.ident()
		if !ok {
			return nil, p.errorf()
		}
		alias, err := p.alias(member)
		if err != nil {
			return nil, err
		}
		specs = append(specs, importSpec{
			module: types.ModuleName(module),
			member: types.MemberName(member),
			alias:  alias,
		})
		if p.peek().Kind != scanner.COMMA {
			return specs, nil
		}
		p.next()
	}
}

func (p *importParser) alias(name string) (string, error) {
	if p.peek().Kind != scanner.AS {
		return name, nil
	}
	p.next()
	alias, ok := p.ident()
	if !ok {
		return "", p.errorf()
	}
	return alias, nil
}

func (p *importParser) ident() (string, bool) {
	tok := p.next()
	if tok.Kind != scanner.IDENTIFIER {
		return "", false
	}
	return tok.Text(p.line), true
}

func (p *importParser) peek() scanner.Token {
	return p.tokens[p.pos]
}

func (p *importParser) next() scanner.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *importParser) errorf() error {
	return errs.NewBadInputError("invalid import statement: " + strings.TrimSpace(p.line))
}

func uniqueImportSpecs(specs []importSpec) []importSpec {
	seen := make(map[importSpec]struct{})
	uniqueSpecs := make([]importSpec, 0, len(specs))

	for _, spec := range specs {
		if _, exists := seen[spec]; !exists {
			seen[spec] = struct{}{}
			uniqueSpecs = append(uniqueSpecs, spec)
		}
	}

	return uniqueSpecs
}
