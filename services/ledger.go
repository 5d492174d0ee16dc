package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLine is returned for a malformed materials entry: empty
// name, quantity not greater than zero, or negative unit price.
var ErrInvalidLine = errors.New("invalid material line")

// MaterialLine is one materials entry on a quote.
type MaterialLine struct {
	Name      string
	Quantity  float64
	UnitPrice Money
}

// LineTotal is quantity × unit price at full precision.
func (l MaterialLine) LineTotal() Money {
	return l.UnitPrice.MulScalar(l.Quantity)
}

// Ledger is the ordered, name-keyed collection of material lines on a
// quote. Names are unique; re-adding an existing name replaces the line
// in place so display order stays stable across edits.
type Ledger struct {
	lines []MaterialLine
	index map[string]int
}

func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// AddOrReplace inserts a line, or overwrites the existing line with the
// same name without moving it.
func (lg *Ledger) AddOrReplace(name string, quantity float64, unitPrice Money) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidLine)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity %v for %q", ErrInvalidLine, quantity, name)
	}
	if unitPrice.IsNegative() {
		return fmt.Errorf("%w: negative unit price for %q", ErrInvalidLine, name)
	}

	line := MaterialLine{Name: name, Quantity: quantity, UnitPrice: unitPrice}
	if i, ok := lg.index[name]; ok {
		lg.lines[i] = line
		return nil
	}
	lg.index[name] = len(lg.lines)
	lg.lines = append(lg.lines, line)
	return nil
}

// Remove deletes the named line. Removing an absent name is a no-op.
func (lg *Ledger) Remove(name string) {
	i, ok := lg.index[strings.TrimSpace(name)]
	if !ok {
		return
	}
	delete(lg.index, lg.lines[i].Name)
	lg.lines = append(lg.lines[:i], lg.lines[i+1:]...)
	for j := i; j < len(lg.lines); j++ {
		lg.index[lg.lines[j].Name] = j
	}
}

// Lines returns the lines in insertion order.
func (lg *Ledger) Lines() []MaterialLine {
	out := make([]MaterialLine, len(lg.lines))
	copy(out, lg.lines)
	return out
}

func (lg *Ledger) Len() int { return len(lg.lines) }

// Total sums the line totals. An empty ledger totals zero.
func (lg *Ledger) Total() Money {
	total := Zero
	for _, l := range lg.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// persistedLine matches the stored materials map value shape.
type persistedLine struct {
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// MarshalJSON writes the name-keyed object shape the store expects,
// keys in ledger order.
func (lg *Ledger) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range lg.lines {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(l.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(persistedLine{Quantity: l.Quantity, Price: l.UnitPrice.Float()})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the persisted name-keyed object, preserving the
// document's key order. Stored lines that violate the line rules are
// rejected rather than silently dropped.
func (lg *Ledger) UnmarshalJSON(data []byte) error {
	lg.lines = nil
	lg.index = make(map[string]int)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("materials: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := keyTok.(string)

		var pl persistedLine
		if err := dec.Decode(&pl); err != nil {
			return fmt.Errorf("materials %q: %w", name, err)
		}
		price, err := MoneyFromFloat(pl.Price)
		if err != nil {
			return fmt.Errorf("materials %q: %w", name, err)
		}
		if err := lg.AddOrReplace(name, pl.Quantity, price); err != nil {
			return err
		}
	}
	// Consume closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
