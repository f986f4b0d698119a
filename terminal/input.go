package terminal

import (
	"io"
)

// Decoder turns a raw byte stream into key events.
//
// An ESC byte is paired with the byte that follows it and reported as
// {PrefixEscape, key}, which is how terminals encode Alt+key. A lone Escape
// press therefore has to be typed twice, arriving as {PrefixEscape, KeyEsc}.
type Decoder struct {
	r io.ByteReader
	// pending is set after an ESC was consumed and its partner byte not yet read
	pending bool
}

// NewDecoder reads bytes from r. A source may return ErrNoInput to signal
// that nothing arrived in time; decoding resumes on the next call.
func NewDecoder(r io.ByteReader) *Decoder {
	return &Decoder{r: r}
}

// Pending reports whether an ESC is waiting for its partner byte
func (d *Decoder) Pending() bool {
	return d.pending
}

// Next decodes one event, pairing a leading ESC with the following byte
func (d *Decoder) Next() (Event, error) {
	if !d.pending {
		b, err := d.r.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if b != ESC {
			return Event{Prefix: PrefixNone, Key: b}, nil
		}
		d.pending = true
	}

	b, err := d.r.ReadByte()
	if err != nil {
		return Event{}, err
	}
	d.pending = false
	return Event{Prefix: PrefixEscape, Key: b}, nil
}

// NextRaw returns the next byte literally, with no ESC pairing.
// An ESC left pending by Next is released as a plain key first.
func (d *Decoder) NextRaw() (Event, error) {
	if d.pending {
		d.pending = false
		return Event{Prefix: PrefixNone, Key: ESC}, nil
	}
	b, err := d.r.ReadByte()
	if err != nil {
		return Event{}, err
	}
	return Event{Prefix: PrefixNone, Key: b}, nil
}

// Decode parses every complete event in data.
// A trailing lone ESC is returned as rest.
func Decode(data []byte) (events []Event, rest []byte) {
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b != ESC {
			events = append(events, Event{Prefix: PrefixNone, Key: b})
			continue
		}
		if i+1 >= len(data) {
			return events, data[i:]
		}
		i++
		events = append(events, Event{Prefix: PrefixEscape, Key: data[i]})
	}
	return events, nil
}
