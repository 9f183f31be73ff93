package lr

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/rezi"
	"github.com/dekarrin/srparse/internal/util"
)

// Format is a serialization format for a Table.
type Format int

const (
	// FormatJSON is the textual object notation that reference tables are
	// distributed in: {"states":[{"actions":{SYMBOL: ACTION, ...}}, ...]}
	// where ACTION is {"Shift":N}, {"Reduce":{"left":L,"right":[...]}}, or
	// "Accept".
	FormatJSON Format = iota

	// FormatTOML is an array of [[states]] tables, each with an actions
	// sub-table mapping symbols to {type, state, left, right} tables.
	FormatTOML

	// FormatREZI is the REZI binary encoding.
	FormatREZI
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatREZI:
		return "rezi"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses the name of a format. Case is ignored.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "rezi", "bin":
		return FormatREZI, nil
	default:
		return FormatJSON, fmt.Errorf("format not one of 'json', 'toml', or 'rezi': %q", s)
	}
}

// FormatForPath gives the Format implied by the extension of a file path.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatJSON, fmt.Errorf("%s: no file extension to determine format from", path)
	}
	return ParseFormat(ext)
}

// LoadTable reads a Table from the file at path, using the format implied by
// its extension. The table is validated before it is returned.
func LoadTable(path string) (Table, error) {
	f, err := FormatForPath(path)
	if err != nil {
		return Table{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read table file: %w", err)
	}

	t, err := DecodeTable(data, f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// SaveTable writes a Table to the file at path in the format implied by its
// extension.
func SaveTable(t Table, path string) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}

	data, err := EncodeTable(t, f)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write table file: %w", err)
	}
	return nil
}

// DecodeTable decodes a Table from data in the given format and validates it.
func DecodeTable(data []byte, f Format) (Table, error) {
	var t Table
	var err error

	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &t)
	case FormatTOML:
		err = t.UnmarshalTOML(data)
	case FormatREZI:
		_, err = decodeBinary(data, &t)
	default:
		return Table{}, fmt.Errorf("unknown table format %s", f)
	}
	if err != nil {
		return Table{}, fmt.Errorf("decode %s table: %w", f, err)
	}

	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// EncodeTable encodes a Table in the given format.
func EncodeTable(t Table, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(t, "", "  ")
	case FormatTOML:
		return t.MarshalTOML()
	case FormatREZI:
		return rezi.EncBinary(t), nil
	default:
		return nil, fmt.Errorf("unknown table format %s", f)
	}
}

// UnmarshalJSON fills t from the reference JSON layout. Missing action maps
// are made empty.
func (t *Table) UnmarshalJSON(data []byte) error {
	var raw struct {
		States []State `json:"states"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for i := range raw.States {
		if raw.States[i].Actions == nil {
			raw.States[i].Actions = map[string]Action{}
		}
	}
	t.States = raw.States
	return nil
}

type marshaledTable struct {
	States []marshaledState `toml:"states"`
}

type marshaledState struct {
	Actions map[string]marshaledAction `toml:"actions"`
}

type marshaledAction struct {
	Type  string   `toml:"type"`
	State int      `toml:"state,omitempty"`
	Left  string   `toml:"left,omitempty"`
	Right []string `toml:"right,omitempty"`
}

// MarshalTOML encodes the table as TOML.
func (t Table) MarshalTOML() ([]byte, error) {
	mt := marshaledTable{States: make([]marshaledState, len(t.States))}

	for i := range t.States {
		mt.States[i].Actions = make(map[string]marshaledAction, len(t.States[i].Actions))
		for sym, act := range t.States[i].Actions {
			ma := marshaledAction{Type: act.Type.String()}
			switch act.Type {
			case Shift:
				ma.State = act.State
			case Reduce:
				ma.Left = act.Derivation.Left
				ma.Right = act.Derivation.Right
			}
			mt.States[i].Actions[sym] = ma
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(mt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalTOML decodes TOML data in the layout written by MarshalTOML.
func (t *Table) UnmarshalTOML(data []byte) error {
	var mt marshaledTable
	if err := toml.Unmarshal(data, &mt); err != nil {
		return err
	}

	states := make([]State, len(mt.States))
	for i := range mt.States {
		states[i].Actions = make(map[string]Action, len(mt.States[i].Actions))
		for sym, ma := range mt.States[i].Actions {
			var act Action
			switch strings.ToLower(ma.Type) {
			case "shift":
				act = ShiftTo(ma.State)
			case "reduce":
				right := ma.Right
				if right == nil {
					right = []string{}
				}
				act = ReduceBy(NewDerivation(ma.Left, right...))
			case "accept":
				act = AcceptAction()
			default:
				return &TableError{State: i, Symbol: sym, Problem: fmt.Sprintf("unknown action type %q", ma.Type)}
			}
			states[i].Actions[sym] = act
		}
	}

	t.States = states
	return nil
}

// MarshalBinary encodes the table with REZI. Symbols within a state are
// written in alphabetical order so the encoding is deterministic.
func (t Table) MarshalBinary() ([]byte, error) {
	var data []byte

	data = append(data, rezi.EncInt(len(t.States))...)
	for i := range t.States {
		syms := util.OrderedKeys(t.States[i].Actions)
		data = append(data, rezi.EncInt(len(syms))...)
		for _, sym := range syms {
			data = append(data, rezi.EncString(sym)...)
			data = append(data, rezi.EncBinary(t.States[i].Actions[sym])...)
		}
	}

	return data, nil
}

// UnmarshalBinary decodes a table from data written by MarshalBinary.
func (t *Table) UnmarshalBinary(data []byte) error {
	var n int
	var err error

	numStates, n, err := decodeCount(data, "state count")
	if err != nil {
		return err
	}
	data = data[n:]

	states := make([]State, numStates)
	for i := 0; i < numStates; i++ {
		var numActions int
		numActions, n, err = decodeCount(data, "action count")
		if err != nil {
			return fmt.Errorf("state %d: %w", i, err)
		}
		data = data[n:]

		states[i].Actions = make(map[string]Action, numActions)
		for j := 0; j < numActions; j++ {
			var sym string
			sym, n, err = rezi.DecString(data)
			if err != nil {
				return fmt.Errorf("state %d: symbol: %w", i, err)
			}
			data = data[n:]

			var act Action
			n, err = decodeBinary(data, &act)
			if err != nil {
				return fmt.Errorf("state %d: action on %q: %w", i, sym, err)
			}
			data = data[n:]

			states[i].Actions[sym] = act
		}
	}

	t.States = states
	return nil
}

// MarshalBinary encodes the action with REZI.
func (act Action) MarshalBinary() ([]byte, error) {
	data := rezi.EncInt(int(act.Type))

	switch act.Type {
	case Shift:
		data = append(data, rezi.EncInt(act.State)...)
	case Reduce:
		data = append(data, rezi.EncBinary(act.Derivation)...)
	}

	return data, nil
}

// UnmarshalBinary decodes an action from data written by MarshalBinary.
func (act *Action) UnmarshalBinary(data []byte) error {
	typeNum, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("action type: %w", err)
	}
	data = data[n:]

	switch ActionType(typeNum) {
	case Shift:
		state, _, err := rezi.DecInt(data)
		if err != nil {
			return fmt.Errorf("shift state: %w", err)
		}
		*act = ShiftTo(state)
	case Reduce:
		var d Derivation
		if _, err := decodeBinary(data, &d); err != nil {
			return fmt.Errorf("reduce derivation: %w", err)
		}
		*act = ReduceBy(d)
	case Accept:
		*act = AcceptAction()
	default:
		return fmt.Errorf("unknown action type %d", typeNum)
	}

	return nil
}

// MarshalBinary encodes the derivation with REZI.
func (d Derivation) MarshalBinary() ([]byte, error) {
	data := rezi.EncString(d.Left)
	data = append(data, rezi.EncInt(len(d.Right))...)
	for i := range d.Right {
		data = append(data, rezi.EncString(d.Right[i])...)
	}
	return data, nil
}

// UnmarshalBinary decodes a derivation from data written by MarshalBinary.
func (d *Derivation) UnmarshalBinary(data []byte) error {
	left, n, err := rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("left: %w", err)
	}
	data = data[n:]

	count, n, err := decodeCount(data, "right count")
	if err != nil {
		return err
	}
	data = data[n:]

	right := make([]string, count)
	for i := 0; i < count; i++ {
		right[i], n, err = rezi.DecString(data)
		if err != nil {
			return fmt.Errorf("right[%d]: %w", i, err)
		}
		data = data[n:]
	}

	d.Left = left
	d.Right = right
	return nil
}

// decodeCount reads an element count and checks it against the bytes left
// after it. Every counted element takes at least one byte, so a larger count
// cannot be honest.
func decodeCount(data []byte, what string) (int, int, error) {
	count, n, err := rezi.DecInt(data)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", what, err)
	}
	if count < 0 {
		return 0, 0, &TableError{Problem: fmt.Sprintf("%s is negative (%d)", what, count)}
	}
	if remaining := len(data) - n; count > remaining {
		return 0, 0, &TableError{Problem: fmt.Sprintf("%s %d exceeds the %d remaining bytes", what, count, remaining)}
	}
	return count, n, nil
}

// decodeBinary is rezi.DecBinary with its length prefix checked first, since
// rezi slices by a negative length without complaint.
func decodeBinary(data []byte, b encoding.BinaryUnmarshaler) (int, error) {
	if _, _, err := decodeCount(data, "encoded length"); err != nil {
		return 0, err
	}
	return rezi.DecBinary(data, b)
}
