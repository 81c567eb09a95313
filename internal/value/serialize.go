package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders v in the language's own literal syntax, not JSON:
// strings and hash keys are written with strconv.Quote, whose escapes are
// Go's rather than JSON's, and whole floats carry a ".0" so they read back
// as Float. Only primitives, lists, and hashes composed of primitives are
// supported, per spec §8's round-trip property.
func Serialize(v Value) (string, error) {
	var b strings.Builder
	if err := serializeInto(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func serializeInto(b *strings.Builder, v Value) error {
	switch val := v.(type) {
	case Integer:
		b.WriteString(strconv.FormatInt(int64(val), 10))
	case Float:
		s := strconv.FormatFloat(float64(val), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0" // keep whole floats from reading back as Integer
		}
		b.WriteString(s)
	case Boolean:
		if val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case String:
		b.WriteString(strconv.Quote(string(val)))
	case Null:
		b.WriteString("null")
	case *List:
		b.WriteByte('[')
		for i, e := range val.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := serializeInto(b, e); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case *Hash:
		b.WriteByte('{')
		for i, k := range val.Keys() {
			if i > 0 {
				b.WriteString(", ")
			}
			ev, _ := val.Get(k)
			b.WriteString(strconv.Quote(k))
			b.WriteString(": ")
			if err := serializeInto(b, ev); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		return fmt.Errorf("value of kind %s is not serializable", v.Kind())
	}
	return nil
}

// Deserialize parses a string previously produced by Serialize. It is a
// small recursive-descent parser over the literal grammar above, not a
// general-purpose language parser (which is out of scope, spec §1).
func Deserialize(s string) (Value, error) {
	p := &deserializer{src: s}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("trailing input at offset %d", p.pos)
	}
	return v, nil
}

type deserializer struct {
	src string
	pos int
}

func (p *deserializer) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n' || p.src[p.pos] == '\r') {
		p.pos++
	}
}

func (p *deserializer) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *deserializer) parseValue() (Value, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("unexpected end of input")
	}
	switch c := p.peek(); {
	case c == '"':
		s, err := p.parseQuotedString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case c == '[':
		return p.parseList()
	case c == '{':
		return p.parseHash()
	case strings.HasPrefix(p.src[p.pos:], "true"):
		p.pos += 4
		return Boolean(true), nil
	case strings.HasPrefix(p.src[p.pos:], "false"):
		p.pos += 5
		return Boolean(false), nil
	case strings.HasPrefix(p.src[p.pos:], "null"):
		p.pos += 4
		return Null{}, nil
	default:
		return p.parseNumber()
	}
}

func (p *deserializer) parseQuotedString() (string, error) {
	start := p.pos
	end, err := findQuotedEnd(p.src, start)
	if err != nil {
		return "", err
	}
	unquoted, err := strconv.Unquote(p.src[start:end])
	if err != nil {
		return "", err
	}
	p.pos = end
	return unquoted, nil
}

func findQuotedEnd(src string, start int) (int, error) {
	if src[start] != '"' {
		return 0, fmt.Errorf("expected '\"' at offset %d", start)
	}
	i := start + 1
	for i < len(src) {
		if src[i] == '\\' {
			i += 2
			continue
		}
		if src[i] == '"' {
			return i + 1, nil
		}
		i++
	}
	return 0, fmt.Errorf("unterminated string starting at offset %d", start)
}

func (p *deserializer) parseNumber() (Value, error) {
	start := p.pos
	isFloat := false
	if p.peek() == '-' {
		p.pos++
	}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' || c == 'e' || c == 'E' {
			isFloat = true
			p.pos++
			if c != '.' && p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
				p.pos++
			}
			continue
		}
		break
	}
	if p.pos == start {
		return nil, fmt.Errorf("invalid literal at offset %d", start)
	}
	text := p.src[start:p.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, err
	}
	return Integer(n), nil
}

func (p *deserializer) parseList() (Value, error) {
	p.pos++ // consume '['
	list := NewList()
	p.skipSpace()
	if p.peek() == ']' {
		p.pos++
		return list, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, v)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	p.skipSpace()
	if p.peek() != ']' {
		return nil, fmt.Errorf("expected ']' at offset %d", p.pos)
	}
	p.pos++
	return list, nil
}

func (p *deserializer) parseHash() (Value, error) {
	p.pos++ // consume '{'
	h := NewHash()
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return h, nil
	}
	for {
		p.skipSpace()
		key, err := p.parseQuotedString()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ':' {
			return nil, fmt.Errorf("expected ':' at offset %d", p.pos)
		}
		p.pos++
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		h.Set(key, v)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	p.skipSpace()
	if p.peek() != '}' {
		return nil, fmt.Errorf("expected '}' at offset %d", p.pos)
	}
	p.pos++
	return h, nil
}
