package svgstmt

import "strconv"

// Tokenizing of path data (the `d` attribute).

// commandArities maps each supported command letter (upper case form)
// to the number of parameters one invocation consumes.
var commandArities = map[byte]int{
	'A': 7, 'C': 6, 'H': 1, 'L': 2, 'M': 2,
	'Q': 4, 'S': 4, 'T': 2, 'V': 1, 'Z': 0,
}

// PathToken is one drawing command of a path: the command letter with
// its case preserved, and exactly one arity's worth of parameters, kept
// as the numeric strings found in the source.
type PathToken struct {
	Command byte
	Params  []string
}

// numberLexer accumulates the characters of one numeric parameter.
// Numbers may be packed without separators: a '-' always ends the
// current parameter and starts the next one, and a second '.' inside
// the same run ends the current parameter and starts a new one at
// that '.' (so "1.5.6" splits into "1.5" and ".6").
type numberLexer struct {
	buf    []byte
	hasDot bool
	out    []string
}

// flush terminates the parameter under accumulation, if any.
func (l *numberLexer) flush() {
	if len(l.buf) != 0 {
		l.out = append(l.out, string(l.buf))
		l.buf = l.buf[:0]
	}
	l.hasDot = false
}

func (l *numberLexer) push(c byte) {
	switch c {
	case '-':
		l.flush()
		l.buf = append(l.buf, c)
	case '.':
		if l.hasDot {
			l.flush()
		}
		l.hasDot = true
		l.buf = append(l.buf, c)
	default:
		l.buf = append(l.buf, c)
	}
}

func upperLetter(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// appendTokens validates the accumulated parameters of `cmd` and
// appends the resulting tokens: a parameter count spanning several
// invocations is expanded into one token per arity sized slice,
// preserving order. A nil command (nothing accumulated yet) is a no-op.
func appendTokens(tokens []PathToken, cmd byte, params []string) ([]PathToken, error) {
	if cmd == 0 {
		return tokens, nil
	}
	arity := commandArities[upperLetter(cmd)]
	for _, p := range params {
		if _, err := strconv.ParseFloat(p, 64); err != nil {
			return nil, PathSyntaxError{Command: cmd, Reason: "parameter " + strconv.Quote(p) + " is not a number"}
		}
	}
	if arity == 0 {
		if len(params) != 0 {
			return nil, PathSyntaxError{Command: cmd, Expected: 0, Got: len(params),
				Reason: "command takes no parameters"}
		}
		return append(tokens, PathToken{Command: cmd}), nil
	}
	if len(params)%arity != 0 {
		return nil, PathSyntaxError{Command: cmd, Expected: arity, Got: len(params)}
	}
	for len(params) != 0 {
		tokens = append(tokens, PathToken{Command: cmd, Params: params[:arity:arity]})
		params = params[arity:]
	}
	return tokens, nil
}

// TokenizePath decomposes raw path data into its commands.
// Command letters are matched case insensitively against the ten
// supported codes (A C H L M Q S T V Z) and keep their original case in
// the tokens. Space and comma separate parameters; newline and tab are
// skipped outright. An unknown command letter, parameters on a Z, or a
// parameter count which is not an exact multiple of the command arity
// are fatal (PathSyntaxError). Data containing no command produces an
// empty sequence.
func TokenizePath(d string) ([]PathToken, error) {
	var (
		tokens  []PathToken
		lex     numberLexer
		command byte
		err     error
	)
	for i := 0; i < len(d); i++ {
		c := d[i]
		switch {
		case c == '\n' || c == '\t':
			// skipped entirely, not even a separator
		case isLetter(c):
			if _, known := commandArities[upperLetter(c)]; !known {
				return nil, PathSyntaxError{Command: c, Reason: "unknown command"}
			}
			lex.flush()
			tokens, err = appendTokens(tokens, command, lex.out)
			if err != nil {
				return nil, err
			}
			command = c
			lex.out = nil
		case c == ' ' || c == ',':
			lex.flush()
		default:
			if command != 0 {
				lex.push(c)
			}
		}
	}
	lex.flush()
	return appendTokens(tokens, command, lex.out)
}
