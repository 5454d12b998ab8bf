package typeinfo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/artie-labs/tablemeta/lib/typing/decimal"
)

type ParseError struct {
	Input    string
	Position int
	Message  string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("failed to parse type string %q at position %d: %s", p.Input, p.Position, p.Message)
}

func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

var primitiveAliases = map[string]string{
	"integer": IntTypeName,
	"dec":     DecimalTypeName,
	"numeric": DecimalTypeName,
}

var primitiveTypeNames = map[string]TypeInfo{
	VoidTypeName:              Void,
	BooleanTypeName:           Boolean,
	TinyIntTypeName:           TinyInt,
	SmallIntTypeName:          SmallInt,
	IntTypeName:               Int,
	BigIntTypeName:            BigInt,
	FloatTypeName:             Float,
	DoubleTypeName:            Double,
	StringTypeName:            String,
	BinaryTypeName:            Binary,
	DateTypeName:              Date,
	TimestampTypeName:         Timestamp,
	IntervalYearMonthTypeName: IntervalYearMonth,
	IntervalDayTimeTypeName:   IntervalDayTime,
}

type token struct {
	text     string
	position int
	isSep    bool
}

func isSeparator(r rune) bool {
	switch r {
	case '<', '>', '(', ')', ',', ':', ';':
		return true
	}
	return false
}

func tokenize(input string) []token {
	var tokens []token
	var builder strings.Builder
	start := 0

	flush := func() {
		raw := builder.String()
		if text := strings.TrimSpace(raw); text != "" {
			tokens = append(tokens, token{text: text, position: start + strings.Index(raw, text)})
		}
		builder.Reset()
	}

	for i, r := range input {
		if isSeparator(r) {
			flush()
			tokens = append(tokens, token{text: string(r), position: i, isSep: true})
			start = i + 1
			continue
		}

		if builder.Len() == 0 {
			start = i
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

type parser struct {
	input  string
	tokens []token
	index  int
}

func newParser(input string) *parser {
	return &parser{input: input, tokens: tokenize(input)}
}

func (p *parser) errorf(format string, args ...any) error {
	position := len(p.input)
	if p.index < len(p.tokens) {
		position = p.tokens[p.index].position
	}

	return &ParseError{Input: p.input, Position: position, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) done() bool {
	return p.index >= len(p.tokens)
}

func (p *parser) peek() (token, bool) {
	if p.done() {
		return token{}, false
	}
	return p.tokens[p.index], true
}

func (p *parser) peekSep(sep string) bool {
	tok, ok := p.peek()
	return ok && tok.isSep && tok.text == sep
}

func (p *parser) expectSep(sep string) error {
	if !p.peekSep(sep) {
		if tok, ok := p.peek(); ok {
			return p.errorf("expected %q but got %q", sep, tok.text)
		}
		return p.errorf("expected %q but reached the end", sep)
	}

	p.index++
	return nil
}

func (p *parser) expectIdentifier(what string) (string, error) {
	tok, ok := p.peek()
	if !ok {
		return "", p.errorf("expected %s but reached the end", what)
	}

	if tok.isSep {
		return "", p.errorf("expected %s but got %q", what, tok.text)
	}

	p.index++
	return tok.text, nil
}

func (p *parser) expectInt(what string) (int, error) {
	text, err := p.expectIdentifier(what)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		p.index--
		return 0, p.errorf("%s must be an integer, got %q", what, text)
	}

	return value, nil
}

func (p *parser) parseType() (TypeInfo, error) {
	name, err := p.expectIdentifier("type name")
	if err != nil {
		return TypeInfo{}, err
	}

	typeName := strings.ToLower(name)
	if alias, ok := primitiveAliases[typeName]; ok {
		typeName = alias
	}

	switch typeName {
	case ListTypeName:
		return p.parseList()
	case MapTypeName:
		return p.parseMap()
	case StructTypeName:
		return p.parseStruct()
	case UnionTypeName:
		return p.parseUnion()
	case DecimalTypeName:
		return p.parseDecimal()
	case CharTypeName:
		return p.parseLength(CharTypeName, MaxCharLength, CharOf)
	case VarcharTypeName:
		return p.parseLength(VarcharTypeName, MaxVarcharLength, VarcharOf)
	}

	if typeInfo, ok := primitiveTypeNames[typeName]; ok {
		return typeInfo, nil
	}

	p.index--
	return TypeInfo{}, p.errorf("unknown type %q", name)
}

func (p *parser) parseList() (TypeInfo, error) {
	if err := p.expectSep("<"); err != nil {
		return TypeInfo{}, err
	}

	elem, err := p.parseType()
	if err != nil {
		return TypeInfo{}, err
	}

	if err = p.expectSep(">"); err != nil {
		return TypeInfo{}, err
	}

	return ListOf(elem), nil
}

func (p *parser) parseMap() (TypeInfo, error) {
	if err := p.expectSep("<"); err != nil {
		return TypeInfo{}, err
	}

	keyPosition := p.index
	key, err := p.parseType()
	if err != nil {
		return TypeInfo{}, err
	}

	if key.Category != Primitive {
		p.index = keyPosition
		return TypeInfo{}, p.errorf("map key must be a primitive type, got %q", key.String())
	}

	if err = p.expectSep(","); err != nil {
		return TypeInfo{}, err
	}

	value, err := p.parseType()
	if err != nil {
		return TypeInfo{}, err
	}

	if err = p.expectSep(">"); err != nil {
		return TypeInfo{}, err
	}

	return MapOf(key, value), nil
}

func (p *parser) parseStruct() (TypeInfo, error) {
	if err := p.expectSep("<"); err != nil {
		return TypeInfo{}, err
	}

	var fields []StructField
	seen := make(map[string]bool)
	for !p.peekSep(">") {
		if len(fields) > 0 {
			if err := p.expectSep(","); err != nil {
				return TypeInfo{}, err
			}
		}

		name, err := p.expectIdentifier("field name")
		if err != nil {
			return TypeInfo{}, err
		}

		if seen[strings.ToLower(name)] {
			p.index--
			return TypeInfo{}, p.errorf("duplicate field name %q", name)
		}
		seen[strings.ToLower(name)] = true

		if err = p.expectSep(":"); err != nil {
			return TypeInfo{}, err
		}

		fieldType, err := p.parseType()
		if err != nil {
			return TypeInfo{}, err
		}

		fields = append(fields, NewStructField(name, fieldType))
	}

	if err := p.expectSep(">"); err != nil {
		return TypeInfo{}, err
	}

	return StructOf(fields...), nil
}

func (p *parser) parseUnion() (TypeInfo, error) {
	if err := p.expectSep("<"); err != nil {
		return TypeInfo{}, err
	}

	var members []TypeInfo
	for !p.peekSep(">") {
		if len(members) > 0 {
			if err := p.expectSep(","); err != nil {
				return TypeInfo{}, err
			}
		}

		member, err := p.parseType()
		if err != nil {
			return TypeInfo{}, err
		}

		members = append(members, member)
	}

	if len(members) == 0 {
		return TypeInfo{}, p.errorf("uniontype must declare at least one member")
	}

	if err := p.expectSep(">"); err != nil {
		return TypeInfo{}, err
	}

	return UnionOf(members...), nil
}

func (p *parser) parseDecimal() (TypeInfo, error) {
	details := decimal.DefaultDetails()
	if p.peekSep("(") {
		p.index++
		precision, err := p.expectInt("decimal precision")
		if err != nil {
			return TypeInfo{}, err
		}

		var scale int
		if p.peekSep(",") {
			p.index++
			if scale, err = p.expectInt("decimal scale"); err != nil {
				return TypeInfo{}, err
			}
		}

		if err = p.expectSep(")"); err != nil {
			return TypeInfo{}, err
		}

		if precision < 1 || precision > int(decimal.MaxPrecision) {
			return TypeInfo{}, p.errorf("decimal precision must be between 1 and %d, got: %d", decimal.MaxPrecision, precision)
		}

		if scale < 0 || scale > int(decimal.MaxScale) {
			return TypeInfo{}, p.errorf("decimal scale must be between 0 and %d, got: %d", decimal.MaxScale, scale)
		}

		details = decimal.NewDetails(int32(precision), int32(scale))
	}

	if err := details.Validate(); err != nil {
		return TypeInfo{}, p.errorf("%s", err.Error())
	}

	return DecimalOf(details), nil
}

func (p *parser) parseLength(typeName string, maxLength int, build func(int) TypeInfo) (TypeInfo, error) {
	if !p.peekSep("(") {
		return TypeInfo{}, p.errorf("%s type is specified without length", typeName)
	}

	p.index++
	length, err := p.expectInt(typeName + " length")
	if err != nil {
		return TypeInfo{}, err
	}

	if length < 1 || length > maxLength {
		return TypeInfo{}, p.errorf("%s length must be between 1 and %d, got: %d", typeName, maxLength, length)
	}

	if err = p.expectSep(")"); err != nil {
		return TypeInfo{}, err
	}

	return build(length), nil
}

// Parse parses a single Hive type string, e.g. `struct<a:int,b:array<string>>`.
func Parse(input string) (TypeInfo, error) {
	p := newParser(input)
	typeInfo, err := p.parseType()
	if err != nil {
		return TypeInfo{}, err
	}

	if !p.done() {
		return TypeInfo{}, p.errorf("unexpected trailing %q", p.tokens[p.index].text)
	}

	return typeInfo, nil
}

// ParseList parses a list of Hive types separated by `:`, `,` or `;`. This is the format of the `columns.types` property.
func ParseList(input string) ([]TypeInfo, error) {
	p := newParser(input)
	var typeInfos []TypeInfo
	for !p.done() {
		if len(typeInfos) > 0 {
			tok, _ := p.peek()
			if !tok.isSep || (tok.text != ":" && tok.text != "," && tok.text != ";") {
				return nil, p.errorf("expected a type separator but got %q", tok.text)
			}
			p.index++
		}

		typeInfo, err := p.parseType()
		if err != nil {
			return nil, err
		}

		typeInfos = append(typeInfos, typeInfo)
	}

	return typeInfos, nil
}
