package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Spec is one display attribute. Value is either a string or a json.Number.
type Spec struct {
	Name  string
	Value any
}

// Display renders the value the way the product page shows it.
func (s Spec) Display() string {
	switch v := s.Value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Specs keeps attributes in insertion order. Its JSON form is an object.
type Specs []Spec

func Text(name, value string) Spec {
	return Spec{Name: name, Value: value}
}

func Num(name string, value float64) Spec {
	return Spec{Name: name, Value: json.Number(strconv.FormatFloat(value, 'f', -1, 64))}
}

func (s Specs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, spec := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(spec.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(spec.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Specs) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("specs: expected object, got %v", tok)
	}

	out := Specs{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("specs: expected key, got %v", tok)
		}

		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}
		switch v.(type) {
		case string, json.Number:
		default:
			return fmt.Errorf("specs: %q must be a string or number", name)
		}
		out = append(out, Spec{Name: name, Value: v})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}
