// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

// Parser is a recursive-descent parser over the HDL chip grammar:
//
//	Chip        := 'CHIP' Identifier '{' 'IN' IdList ';' 'OUT' IdList ';'
//	                'PARTS' ':' Part* '}'
//	IdList      := Identifier (',' Identifier)*
//	Part        := Identifier '(' Assign (',' Assign)* ')' ';'
//	Assign      := Identifier '=' Identifier
//	Identifier  := Name ('[' Number ('..' Number)? ']')?
//
// It produces a ChipDef; no chip registry lookups happen during parsing.
type Parser struct {
	t *Tokeniser
}

// NewParser returns a parser over src.
func NewParser(src string) *Parser {
	return &Parser{t: NewTokeniser(src)}
}

// Parse parses src as a single chip definition.
func Parse(src string) (*ChipDef, error) {
	return NewParser(src).ParseChip()
}

// ParseChip parses a single "CHIP Name { ... }" definition.
func (p *Parser) ParseChip() (*ChipDef, error) {
	if err := p.t.ExpectKeyword("CHIP"); err != nil {
		return nil, err
	}
	name, err := p.t.Identifier()
	if err != nil {
		return nil, err
	}
	if name.HasIndex || name.HasRange {
		return nil, &UnexpectedToken{Expected: "chip name", Pos: name.Pos}
	}
	if err := p.t.ExpectSymbol('{'); err != nil {
		return nil, err
	}

	if err := p.t.ExpectKeyword("IN"); err != nil {
		return nil, err
	}
	ins, err := p.parseIDList()
	if err != nil {
		return nil, err
	}
	if err := p.t.ExpectSymbol(';'); err != nil {
		return nil, err
	}

	if err := p.t.ExpectKeyword("OUT"); err != nil {
		return nil, err
	}
	outs, err := p.parseIDList()
	if err != nil {
		return nil, err
	}
	if err := p.t.ExpectSymbol(';'); err != nil {
		return nil, err
	}

	if err := p.t.ExpectKeyword("PARTS"); err != nil {
		return nil, err
	}
	if err := p.t.ExpectSymbol(':'); err != nil {
		return nil, err
	}

	var parts []PartDecl
	for {
		if err := p.t.ExpectSymbol('}'); err == nil {
			break
		}
		part, err := p.parsePart()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	return &ChipDef{Name: name.Name, Inputs: ins, Outputs: outs, Parts: parts}, nil
}

func (p *Parser) parseIDList() ([]PinDecl, error) {
	var decls []PinDecl
	for {
		id, err := p.t.Identifier()
		if err != nil {
			return nil, err
		}
		if id.HasRange {
			return nil, &UnexpectedToken{Expected: "pin width, not a range", Pos: id.Pos}
		}
		width := 1
		if id.HasIndex {
			if id.Index < 1 {
				return nil, &UnexpectedToken{Expected: "pin width >= 1", Pos: id.Pos}
			}
			width = id.Index
		}
		decls = append(decls, PinDecl{Name: id.Name, Width: width, Pos: id.Pos})
		if err := p.t.ExpectSymbol(','); err != nil {
			break
		}
	}
	return decls, nil
}

func (p *Parser) parsePart() (PartDecl, error) {
	name, err := p.t.Identifier()
	if err != nil {
		return PartDecl{}, err
	}
	if name.HasIndex || name.HasRange {
		return PartDecl{}, &UnexpectedToken{Expected: "part name", Pos: name.Pos}
	}
	if err := p.t.ExpectSymbol('('); err != nil {
		return PartDecl{}, err
	}
	var assigns []Assign
	for {
		a, err := p.parseAssign()
		if err != nil {
			return PartDecl{}, err
		}
		assigns = append(assigns, a)
		if err := p.t.ExpectSymbol(','); err != nil {
			break
		}
	}
	if err := p.t.ExpectSymbol(')'); err != nil {
		return PartDecl{}, err
	}
	if err := p.t.ExpectSymbol(';'); err != nil {
		return PartDecl{}, err
	}
	return PartDecl{ChipName: name.Name, Assigns: assigns, Pos: name.Pos}, nil
}

func (p *Parser) parseAssign() (Assign, error) {
	own, err := p.t.Identifier()
	if err != nil {
		return Assign{}, err
	}
	if err := p.t.ExpectSymbol('='); err != nil {
		return Assign{}, err
	}
	foreign, err := p.t.Identifier()
	if err != nil {
		return Assign{}, err
	}
	return Assign{Own: refFromIdent(own), Foreign: refFromIdent(foreign)}, nil
}
