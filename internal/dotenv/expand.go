package dotenv

import "fmt"

// expand substitutes ${VAR} and $VAR references in value against entries
// defined earlier in the current parse. It returns the expanded string and
// the depth of the longest reference chain it consumed.
//
// References only see what came before them: a forward reference is an
// undefined variable. In strict mode an undefined reference is an error;
// otherwise it expands to the empty string and leaves a warning on the model.
func (p *parser) expand(value string, lineNum int) (string, int, error) {
	var out []byte
	maxDepth := 0

	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '$' {
			out = append(out, c)
			continue
		}
		if i+1 >= len(value) {
			out = append(out, '$')
			continue
		}

		var name string
		var next int
		if value[i+1] == '{' {
			end := indexByteFrom(value, '}', i+2)
			if end < 0 {
				// no closing brace: keep literal
				out = append(out, '$')
				continue
			}
			name = value[i+2 : end]
			next = end
		} else {
			j := i + 1
			for j < len(value) && isIdentByte(value[j], j == i+1) {
				j++
			}
			if j == i+1 {
				out = append(out, '$')
				continue
			}
			name = value[i+1 : j]
			next = j - 1
		}

		resolved, depth, err := p.lookupRef(name, lineNum)
		if err != nil {
			return "", 0, err
		}
		if depth > maxDepth {
			maxDepth = depth
		}
		out = append(out, resolved...)
		i = next
	}
	return string(out), maxDepth, nil
}

func (p *parser) lookupRef(name string, lineNum int) (string, int, error) {
	e, ok := p.model.Get(name)
	if !ok {
		if p.cfg.Strict {
			return "", 0, &UndefinedVariableError{Line: lineNum, Name: name}
		}
		p.model.Warnings = append(p.model.Warnings,
			fmt.Sprintf("line %d: undefined variable %q expands to empty string", lineNum, name))
		return "", 0, nil
	}
	depth := p.depths[name] + 1
	if depth > p.cfg.MaxExpansionDepth {
		return "", 0, &ExpansionOverflowError{Line: lineNum, Max: p.cfg.MaxExpansionDepth}
	}
	// e.Value is already fully expanded at its own definition site.
	return e.Value, depth, nil
}

func isIdentByte(c byte, first bool) bool {
	if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return true
	}
	return !first && c >= '0' && c <= '9'
}

func indexByteFrom(s string, c byte, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
