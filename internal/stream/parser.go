package stream

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/SoofabhMK1/ai-writing-system/internal/model"
)

// parser incrementally reassembles SSE records from arbitrarily split byte
// chunks. The trailing partial line is held back between feeds, so a line
// (or a multi-byte UTF-8 sequence inside one) may straddle read boundaries
// at any offset without corruption.
type parser struct {
	buf   []byte // held-back incomplete line
	event string // current event type, reset at record boundaries
}

// eventPayload is the JSON carried on a data line.
type eventPayload struct {
	Chunk string `json:"chunk"`
	Error string `json:"error"`
}

// feed consumes one chunk of raw bytes and returns the events completed by
// it, in input order.
func (p *parser) feed(data []byte) []model.StreamEvent {
	p.buf = append(p.buf, data...)

	var events []model.StreamEvent
	for {
		i := bytes.IndexByte(p.buf, '\n')
		if i < 0 {
			return events
		}
		line := string(bytes.TrimRight(p.buf[:i], "\r"))
		p.buf = p.buf[i+1:]

		if ev, ok := p.parseLine(line); ok {
			events = append(events, ev)
		}
	}
}

// parseLine handles one complete line of SSE framing. Only data lines with
// a routable, well-formed payload yield an event.
func (p *parser) parseLine(line string) (model.StreamEvent, bool) {
	switch {
	case strings.HasPrefix(line, "event:"):
		p.event = strings.TrimSpace(line[len("event:"):])

	case strings.HasPrefix(line, "data:"):
		raw := strings.TrimSpace(line[len("data:"):])
		if raw == "" {
			break
		}
		var payload eventPayload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			// A malformed payload skips the line, never the stream.
			slog.Warn("Skipping malformed stream data line", "data", raw, "error", err)
			break
		}
		switch {
		case p.event == string(model.EventReasoning) && payload.Chunk != "":
			return model.StreamEvent{Type: model.EventReasoning, Chunk: payload.Chunk}, true
		case p.event == string(model.EventContent) && payload.Chunk != "":
			return model.StreamEvent{Type: model.EventContent, Chunk: payload.Chunk}, true
		case p.event == string(model.EventError) && payload.Error != "":
			return model.StreamEvent{Type: model.EventError, Err: payload.Error}, true
		}

	case strings.TrimSpace(line) == "":
		// Blank line: record boundary.
		p.event = ""
	}
	return model.StreamEvent{}, false
}
