package hdf

import (
	"github.com/gogpu/hfx/lexer"
	"github.com/gogpu/hfx/numbuf"
)

// Parser consumes tokens from a Lexer and builds a Table of primitives,
// enums, structs, and command groups. On any Expect mismatch it
// abandons the current declaration and resumes at the top level — it
// never propagates the error, relying on the lexer's sticky error flag
// to prevent cascading failures from producing garbage entries.
type Parser struct {
	lex   *lexer.Lexer
	data  *numbuf.Buffer
	Table *Table
}

// NewParser returns a Parser reading from lex, with a type table
// pre-sized to maxTypes entries.
func NewParser(lex *lexer.Lexer, data *numbuf.Buffer, maxTypes int) *Parser {
	return &Parser{lex: lex, data: data, Table: NewTable(maxTypes)}
}

// GenerateAST consumes the full token stream, dispatching on top-level
// keywords until end of stream or a sticky lexer error halts progress.
func (p *Parser) GenerateAST() {
	for {
		tok := p.lex.Next()
		if tok.Kind == lexer.EndOfStream {
			return
		}
		if tok.Kind != lexer.Identifier {
			continue
		}
		switch tok.Text {
		case "struct":
			p.declarationStruct()
		case "enum":
			p.declarationEnum()
		case "command":
			p.declarationCommand()
		}
		if p.lex.HasError() {
			// Sticky error: further Expect calls no longer advance.
			// Keep draining tokens so callers can observe EndOfStream.
		}
	}
}

// FindType exposes Table.FindType for callers that only hold a Parser.
func (p *Parser) FindType(name string) (TypeID, bool) {
	return p.Table.FindType(name)
}

func (p *Parser) declarationStruct() {
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	name := p.lex.Last().Text

	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}

	id := p.Table.Add(Entry{Kind: KindStruct, Name: name, Exportable: true})

	for !p.lex.Equals(lexer.CloseBrace) {
		tok := p.lex.Last()
		if tok.Kind == lexer.Identifier {
			p.declarationVariable(tok.Text, id)
		}
		if p.lex.HasError() {
			return
		}
	}
}

func (p *Parser) declarationVariable(typeName string, owner TypeID) {
	memberType, _ := p.Table.FindType(typeName)

	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	name := p.lex.Last().Text

	if !p.lex.Expect(lexer.Semicolon) {
		return
	}

	entry := p.Table.At(owner)
	entry.MemberNames = append(entry.MemberNames, name)
	entry.MemberTypes = append(entry.MemberTypes, memberType)
}

func (p *Parser) declarationEnum() {
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	name := p.lex.Last().Text

	tok := p.lex.Next()
	if tok.Kind == lexer.Colon {
		// Optional ': type' — skip the underlying type name, then the
		// token after it must be the opening brace.
		p.lex.Next()
		tok = p.lex.Next()
	}
	if tok.Kind != lexer.OpenBrace {
		return
	}

	id := p.Table.Add(Entry{Kind: KindEnum, Name: name, Exportable: true})

	for !p.lex.Equals(lexer.CloseBrace) {
		t := p.lex.Last()
		if t.Kind == lexer.Identifier {
			entry := p.Table.At(id)
			entry.MemberNames = append(entry.MemberNames, t.Text)
		}
		if p.lex.HasError() {
			return
		}
	}
}

func (p *Parser) declarationCommand() {
	if !p.lex.Expect(lexer.Identifier) {
		return
	}
	name := p.lex.Last().Text

	if !p.lex.Expect(lexer.OpenBrace) {
		return
	}

	commandID := p.Table.Add(Entry{Kind: KindCommand, Name: name, Exportable: true})

	for !p.lex.Equals(lexer.CloseBrace) {
		tok := p.lex.Last()
		if tok.Kind == lexer.Identifier {
			caseID := p.Table.Add(Entry{Kind: KindStruct, Name: tok.Text, Exportable: false})

			for !p.lex.Equals(lexer.CloseBrace) {
				memberTok := p.lex.Last()
				if memberTok.Kind == lexer.Identifier {
					p.declarationVariable(memberTok.Text, caseID)
				}
				if p.lex.HasError() {
					return
				}
			}

			command := p.Table.At(commandID)
			caseEntry := p.Table.At(caseID)
			command.CaseNames = append(command.CaseNames, caseEntry.Name)
			command.CaseTypes = append(command.CaseTypes, caseID)
		}
		if p.lex.HasError() {
			return
		}
	}
}
