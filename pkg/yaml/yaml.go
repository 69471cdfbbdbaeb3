package yaml

import (
	"fmt"
	"io"
)

// Marshal returns the text encoding of a generic JSON-shaped value, going
// through FromJSON and Serialize.
func Marshal(v any) ([]byte, error) {
	return []byte(Serialize(FromJSON(v))), nil
}

// Unmarshal parses the encoded data and stores the resulting generic JSON
// value in the value pointed to by v.
func Unmarshal(data []byte, v *any) error {
	if v == nil {
		return fmt.Errorf("yaml: Unmarshal(nil destination)")
	}
	doc, err := Parse(string(data))
	if err != nil {
		return err
	}
	*v = ToJSON(doc.Root())
	return nil
}

// Encoder writes values to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the text encoding of v to the stream.
func (e *Encoder) Encode(v any) error {
	_, err := io.WriteString(e.w, Serialize(FromJSON(v)))
	return err
}

// Decoder reads and decodes values from an input stream.
//
// Note: this is a non-streaming implementation. It reads the entire reader
// into memory first before parsing.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the whole input and stores the resulting generic JSON value
// in the value pointed to by v.
func (d *Decoder) Decode(v *any) error {
	if d.r == nil {
		return fmt.Errorf("yaml: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	return Unmarshal(data, v)
}
