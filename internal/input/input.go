// Package input turns raw keyboard data into discrete game input events.
package input

import (
	"io"
	"time"
)

// DefaultHoldDuration is how long a direction is considered held after its last press.
// Terminals report no key-up, so a held key shows up as repeated presses.
const DefaultHoldDuration = 250 * time.Millisecond

// Direction identifies one of the four movement keys.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Kind identifies the type of an input event.
type Kind int

const (
	DirectionDown Kind = iota
	DirectionUp
	Fire
	Quit
)

// Event is a single discrete input signal delivered to the game.
type Event struct {
	Kind Kind
	Dir  Direction // Only meaningful for DirectionDown / DirectionUp
}

// Tracker synthesizes key-down/key-up events from a stream of presses.
// The first press of a direction emits DirectionDown; when no further press
// arrives within the hold duration, Expire emits DirectionUp.
type Tracker struct {
	hold     time.Duration
	held     [len(Directions)]bool
	lastSeen [len(Directions)]time.Time
}

// NewTracker creates a tracker with the given hold duration.
func NewTracker(hold time.Duration) *Tracker {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &Tracker{hold: hold}
}

// Press records a press of dir at now. Returns a DirectionDown event if the
// direction was not already held.
func (t *Tracker) Press(dir Direction, now time.Time) (Event, bool) {
	t.lastSeen[dir] = now
	if t.held[dir] {
		return Event{}, false
	}
	t.held[dir] = true
	return Event{Kind: DirectionDown, Dir: dir}, true
}

// Expire appends DirectionUp events for every held direction whose last press
// is older than the hold duration.
func (t *Tracker) Expire(now time.Time, events []Event) []Event {
	for _, dir := range Directions {
		if t.held[dir] && now.Sub(t.lastSeen[dir]) >= t.hold {
			t.held[dir] = false
			events = append(events, Event{Kind: DirectionUp, Dir: dir})
		}
	}
	return events
}

// Held reports whether dir is currently considered held.
func (t *Tracker) Held(dir Direction) bool {
	return t.held[dir]
}

// Reset releases all held directions without emitting events.
func (t *Tracker) Reset() {
	t.held = [len(Directions)]bool{}
}

// Stream delivers input bytes via a channel and decodes them into events.
type Stream struct {
	ch      chan byte
	done    chan struct{}
	tracker *Tracker
	buf     []byte // Holds an unfinished escape sequence between polls
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// Close must be called once the stream is no longer polled.
func StartStream(r io.ByteReader, hold time.Duration) *Stream {
	s := &Stream{
		ch:      make(chan byte, 128),
		done:    make(chan struct{}),
		tracker: NewTracker(hold),
	}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close stops delivering bytes. The reader goroutine exits after its next
// read returns.
func (s *Stream) Close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// Poll drains all available bytes from the stream (non-blocking) and returns
// the events they produce, followed by any key releases due at now.
// A closed input (EOF) yields a Quit event.
func (s *Stream) Poll(now time.Time) []Event {
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			s.buf = append(s.buf, b)
		default:
			break drain
		}
	}

	events, n := Decode(s.buf, now, s.tracker, nil)
	s.buf = append(s.buf[:0], s.buf[n:]...)
	events = s.tracker.Expire(now, events)
	if closed {
		s.buf = s.buf[:0]
		events = append(events, Event{Kind: Quit})
	}
	return events
}

// Decode parses raw terminal bytes into events, appending them to events.
// It returns the events and the number of bytes consumed; an escape sequence
// cut off at the end of buf is left unconsumed so the caller can retry it with
// more data.
//
// Arrow keys arrive as CSI (ESC [ A..D) or SS3 (ESC O A..D) sequences, with
// or without modifier parameters such as ESC [ 1 ; 5 A. Other escape
// sequences are skipped. WASD are accepted too.
func Decode(buf []byte, now time.Time, tracker *Tracker, events []Event) ([]Event, int) {
	press := func(dir Direction) {
		if ev, ok := tracker.Press(dir, now); ok {
			events = append(events, ev)
		}
	}

	i := 0
	for i < len(buf) {
		b := buf[i]

		if b == '\x1b' {
			n, final, complete := escapeSequence(buf[i:])
			if !complete {
				return events, i
			}
			if dir, ok := arrowDirection(final); ok {
				press(dir)
			}
			i += n
			continue
		}

		switch b {
		case 'w', 'W':
			press(Up)
		case 's', 'S':
			press(Down)
		case 'a', 'A':
			press(Left)
		case 'd', 'D':
			press(Right)
		case ' ':
			events = append(events, Event{Kind: Fire})
		case 'q', 'Q', '\x03':
			events = append(events, Event{Kind: Quit})
		}
		i++
	}
	return events, i
}

// escapeSequence measures the sequence starting with ESC at buf[0]. It returns
// its length and final byte, or complete=false when buf ends mid-sequence.
// An ESC followed by anything other than '[' or 'O' is a lone escape of
// length one with final byte 0.
func escapeSequence(buf []byte) (n int, final byte, complete bool) {
	if len(buf) < 2 {
		return 0, 0, false
	}
	switch buf[1] {
	case 'O':
		if len(buf) < 3 {
			return 0, 0, false
		}
		return 3, buf[2], true
	case '[':
		// Parameter and intermediate bytes run up to a final byte in 0x40..0x7e.
		for j := 2; j < len(buf); j++ {
			if c := buf[j]; c >= 0x40 && c <= 0x7e {
				return j + 1, c, true
			} else if c < 0x20 || c > 0x3f {
				// Not a valid CSI byte: drop the introducer and resume here.
				return j, 0, true
			}
		}
		return 0, 0, false
	default:
		return 1, 0, true
	}
}

func arrowDirection(final byte) (Direction, bool) {
	switch final {
	case 'A':
		return Up, true
	case 'B':
		return Down, true
	case 'C':
		return Right, true
	case 'D':
		return Left, true
	default:
		return 0, false
	}
}
