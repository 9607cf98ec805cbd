package gcb

import (
	"bytes"

	"github.com/kpango/glg"
)

// Comment metadata keys and the marker the scanner reacts to.
const (
	KeyThumbnail  = "thumbnail"
	KeyTotalLines = "file_total_lines"
	// DefaultMarker is the phrase a post-processed file starts its first comment with.
	DefaultMarker = "post-processed by sm2lbpp"
)

//go:generate stringer -type=State,Stop -linecomment -output=state_string.go

// State is the state of the scanner.
type State int

const (
	StateLineStart State = iota // LineStart
	StateSkipLine               // SkipToLineStart
	StateCommand                // CommandToken
	StateComment                // Comment
	StateValue                  // ParameterValue
)

// Stop tells why a scan ended before the end of input.
type Stop int

const (
	// StopNone means the whole input was scanned.
	StopNone Stop = iota // none
	// StopMarker means the idempotency marker was found.
	StopMarker // marker
	// StopThumbnail means a thumbnail key was found.
	StopThumbnail // thumbnail
)

// Token is a view (offset + length) into the scanned buffer.
// The zero Token is absent, which is not the same as a valid empty token.
type Token struct {
	Offset, Length int
	valid          bool
}

func tokenAt(offset int) Token {
	return Token{Offset: offset, valid: true}
}

// Valid reports whether the token was seen at all.
func (t Token) Valid() bool {
	return t.valid
}

// End returns the offset right after the token.
func (t Token) End() int {
	return t.Offset + t.Length
}

// Bytes returns the token's bytes in data, or nil if the token is absent.
func (t Token) Bytes(data []byte) []byte {
	if !t.valid {
		return nil
	}

	return data[t.Offset:t.End()]
}

// Result holds what a scan found besides the commands it dispatched.
type Result struct {
	// Lines counts lines starting with 1; every '\n' adds one.
	Lines int
	Stop  Stop
	// TotalLines is the value of the file_total_lines key.
	TotalLines Token
	// TotalLinesLine spans the whole line with the file_total_lines key,
	// terminator included. It is valid with zero length if the line never ended.
	TotalLinesLine Token
	// TotalLinesKeyLine is the line number of the file_total_lines key (0 if not found).
	TotalLinesKeyLine int
}

// AlreadyProcessed reports whether the input already carries a preview.
func (r *Result) AlreadyProcessed() bool {
	return r.Stop != StopNone
}

// TotalLinesValue returns the parsed file_total_lines value.
func (r *Result) TotalLinesValue(data []byte) (uint, bool) {
	if !r.TotalLines.Valid() || r.TotalLines.Length == 0 {
		return 0, false
	}

	return parseUint(r.TotalLines.Bytes(data)), true
}

// Handler receives every command line the scanner recognizes.
// The command is reused after Command returns and must not be retained.
type Handler interface {
	Command(cmd *Command) error
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(cmd *Command) error

func (f HandlerFunc) Command(cmd *Command) error {
	return f(cmd)
}

// ScanOption configures Scan.
type ScanOption func(*scanner)

// WithTrace logs every scanned byte at debug level.
func WithTrace(trace bool) ScanOption {
	return func(s *scanner) {
		s.trace = trace
	}
}

// WithKeepGoing makes Scan read past the marker and thumbnail.
// Result.Stop still tells what was seen.
func WithKeepGoing(keep bool) ScanOption {
	return func(s *scanner) {
		s.keepGoing = keep
	}
}

// WithMarker changes the idempotency marker phrase.
func WithMarker(marker string) ScanOption {
	return func(s *scanner) {
		s.marker = []byte(marker)
	}
}

type scanner struct {
	data      []byte
	h         Handler
	marker    []byte
	trace     bool
	keepGoing bool

	state     State
	lineStart int

	// param is the letter of the open command token (0 if none).
	param       byte
	token       Token
	cmd         Command
	keyCaptured bool
	res         Result
}

// Scan walks data once and dispatches all G/M command lines to h.
// It stops early (without error) when data turns out to be post-processed already.
func Scan(data []byte, h Handler, opts ...ScanOption) (*Result, error) {
	if h == nil {
		return nil, ErrNilHandler
	}

	s := &scanner{
		data:   data,
		h:      h,
		marker: []byte(DefaultMarker),
		state:  StateLineStart,
		res:    Result{Lines: 1},
	}

	for _, opt := range opts {
		opt(s)
	}

	for i, ch := range data {
		if s.trace {
			s.traceByte(ch)
		}

		switch s.state {
		case StateLineStart:
			s.lineStartByte(i, ch)
		case StateSkipLine:
			if ch == '\n' {
				s.state = StateLineStart
			}
		case StateCommand:
			if err := s.commandByte(i, ch); err != nil {
				return &s.res, &LineError{Line: s.res.Lines, Err: err}
			}
		case StateComment:
			s.commentByte(i, ch)
		case StateValue:
			s.valueByte(i, ch)
		}

		if s.res.Stop != StopNone && !s.keepGoing {
			return &s.res, nil
		}

		switch ch {
		case '\n':
			s.res.Lines++
			s.lineStart = i + 1
		case '\r':
			s.lineStart = i + 1
		}
	}

	// the last line has no terminator
	if s.state == StateCommand {
		s.closeToken()
		if err := s.h.Command(&s.cmd); err != nil {
			return &s.res, &LineError{Line: s.res.Lines, Err: err}
		}
	}

	return &s.res, nil
}

func (s *scanner) lineStartByte(i int, ch byte) {
	switch {
	case ch == ';':
		s.token = Token{}
		s.state = StateComment
	case ch == 'G' || ch == 'M':
		s.cmd = Command{}
		s.param = ch
		s.token = tokenAt(i + 1)
		s.state = StateCommand
	case !isSpace(ch):
		// a command we do not know
		s.state = StateSkipLine
	}
}

func (s *scanner) commandByte(i int, ch byte) error {
	switch {
	case s.extendsNumber(ch):
		s.token.Length++
	case ch == 'X' || ch == 'Y' || ch == 'P' || ch == 'S':
		s.closeToken()
		s.param = ch
		s.token = tokenAt(i + 1)
	default:
		s.closeToken()
		s.param = 0
		s.token = Token{}

		if ch != '\n' && ch != ';' {
			return nil
		}

		if err := s.h.Command(&s.cmd); err != nil {
			return err
		}

		if ch == '\n' {
			s.state = StateLineStart
		} else {
			s.state = StateComment
		}
	}

	return nil
}

// extendsNumber reports whether ch continues the open numeric token.
// Command numbers take digits only, parameters also take '.' and a leading '-'.
func (s *scanner) extendsNumber(ch byte) bool {
	if !s.token.Valid() {
		return false
	}

	if isDigit(ch) {
		return true
	}

	if s.param == 'G' || s.param == 'M' {
		return false
	}

	return ch == '.' || (ch == '-' && s.token.Length == 0)
}

// closeToken applies the open token to the current command.
func (s *scanner) closeToken() {
	if !s.token.Valid() {
		return
	}

	tok := s.token.Bytes(s.data)
	switch s.param {
	case 'G', 'M':
		s.cmd.Code = Code(s.param, parseUint(tok))
	case 'X', 'Y', 'P', 'S':
		s.cmd.Set(s.param, parseFloat(tok))
	}
}

func (s *scanner) commentByte(i int, ch byte) {
	switch {
	case ch == '\n':
		s.state = StateLineStart
	case !s.token.Valid():
		if !isSpace(ch) {
			// first word of the comment
			s.token = Token{Offset: i, Length: 1, valid: true}
		}
	case ch == ' ':
		if s.token.Length > 0 && bytes.Equal(s.token.Bytes(s.data), s.marker) {
			s.res.Stop = StopMarker
		}
	case ch == ':':
		s.keyByte()
	case !isSpace(ch):
		// trailing spaces stay outside of the token
		s.token.Length = i - s.token.Offset + 1
	}
}

func (s *scanner) keyByte() {
	switch string(s.token.Bytes(s.data)) {
	case KeyThumbnail:
		s.res.Stop = StopThumbnail
	case KeyTotalLines:
		s.token = Token{}
		if s.keyCaptured {
			// only the first key counts
			s.state = StateSkipLine
			return
		}

		s.keyCaptured = true
		s.res.TotalLinesLine = tokenAt(s.lineStart)
		s.res.TotalLinesKeyLine = s.res.Lines
		s.state = StateValue
	default:
		s.state = StateSkipLine
	}
}

func (s *scanner) valueByte(i int, ch byte) {
	value := &s.res.TotalLines
	switch {
	case ch == '\n':
		line := &s.res.TotalLinesLine
		if line.Length == 0 {
			line.Length = i - line.Offset + 1
		}

		s.state = StateLineStart
	case isSpace(ch):
	case !value.Valid():
		*value = Token{Offset: i, Length: 1, valid: true}
	default:
		value.Length = i - value.Offset + 1
	}
}

func (s *scanner) traceByte(ch byte) {
	glg.Debugf("%d:%s: %q, token: %q, value: %q",
		s.res.Lines, s.state, ch, s.token.Bytes(s.data), s.res.TotalLines.Bytes(s.data))
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// parseUint reads leading decimal digits and stops at anything else.
func parseUint(tok []byte) uint {
	var v uint
	for _, ch := range tok {
		if !isDigit(ch) {
			break
		}

		v = v*10 + uint(ch-'0')
	}

	return v
}

// parseFloat reads a simple decimal number ("-12.5") and stops at anything unexpected.
func parseFloat(tok []byte) float32 {
	if len(tok) == 0 {
		return 0
	}

	sign := 1.0
	if tok[0] == '-' {
		sign = -1
		tok = tok[1:]
	}

	var whole, frac uint64
	div := 1.0
	isFrac := false

loop:
	for _, ch := range tok {
		switch {
		case isDigit(ch) && !isFrac:
			whole = whole*10 + uint64(ch-'0')
		case isDigit(ch):
			frac = frac*10 + uint64(ch-'0')
			div *= 10
		case ch == '.':
			isFrac = true
		default:
			break loop
		}
	}

	return float32(sign * (float64(whole) + float64(frac)/div))
}
