package gridpaper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// OptionsFromJSON decodes a JSON object of grid arguments on top of
// NewOptions. Keys are snake_case ("cols", "major_color", ...); absent keys
// and nulls keep their defaults. A value of the wrong JSON kind, including a
// fractional number for an integer argument, is reported as a *TypeError,
// and unknown keys as a *ValueError. Values are not range-checked here;
// that happens in Resolve.
func OptionsFromJSON(raw json.RawMessage) (Options, error) {
	opts := NewOptions()
	if len(bytes.TrimSpace(raw)) == 0 {
		return opts, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return opts, typeErr("arguments", "an object", jsonKind(raw))
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		v := fields[key]
		if isNull(v) {
			continue
		}
		var err error
		switch key {
		case "filename":
			var s string
			s, err = decodeString(key, v)
			opts.Filename = &s
		case "format":
			opts.Format, err = decodeString(key, v)
		case "cols":
			opts.Cols, err = decodeInt(key, v)
		case "rows":
			opts.Rows, err = decodeInt(key, v)
		case "width":
			opts.CellWidth, err = decodeInt(key, v)
		case "height":
			opts.CellHeight, err = decodeInt(key, v)
		case "unit":
			opts.Unit, err = decodeString(key, v)
		case "resolution", "dpi":
			opts.Resolution, err = decodeInt(key, v)
		case "background":
			opts.Background, err = decodeColor(key, v)
		case "style":
			opts.Style, err = decodeString(key, v)
		case "thickness":
			opts.Thickness, err = decodeInt(key, v)
		case "color":
			opts.Color, err = decodeColor(key, v)
		case "major_interval":
			opts.MajorInterval, err = decodeOptionalInt(key, v)
		case "major_horizontal_interval":
			opts.MajorHorizontalInterval, err = decodeOptionalInt(key, v)
		case "major_vertical_interval":
			opts.MajorVerticalInterval, err = decodeOptionalInt(key, v)
		case "major_style":
			var s string
			s, err = decodeString(key, v)
			opts.MajorStyle = &s
		case "major_thickness":
			opts.MajorThickness, err = decodeOptionalInt(key, v)
		case "major_color":
			var c ColorSpec
			c, err = decodeColor(key, v)
			opts.MajorColor = &c
		default:
			err = valueErr(key, nil, "is not a recognized grid argument")
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func decodeString(param string, v json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", typeErr(param, "a string", jsonKind(v))
	}
	return s, nil
}

func decodeInt(param string, v json.RawMessage) (int, error) {
	// json.Number also accepts quoted numbers, so check the kind first.
	if kind := jsonKind(v); kind != "number" {
		return 0, typeErr(param, "an integer", kind)
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, typeErr(param, "an integer", "number")
	}
	i, err := n.Int64()
	if err != nil {
		if strings.ContainsAny(n.String(), ".eE") {
			return 0, typeErr(param, "an integer", "a fractional number")
		}
		return 0, valueErr(param, n.String(), "is out of range")
	}
	if int64(int(i)) != i {
		return 0, valueErr(param, n.String(), "is out of range")
	}
	return int(i), nil
}

func decodeOptionalInt(param string, v json.RawMessage) (*int, error) {
	i, err := decodeInt(param, v)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// decodeColor accepts a color string or an array of integer channels.
func decodeColor(param string, v json.RawMessage) (ColorSpec, error) {
	switch jsonKind(v) {
	case "string":
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return ColorSpec{}, typeErr(param, "a string or an array of integers", "string")
		}
		if strings.EqualFold(strings.TrimSpace(s), "none") {
			return NoColor, nil
		}
		return Named(s), nil
	case "array":
		var elems []json.RawMessage
		if err := json.Unmarshal(v, &elems); err != nil {
			return ColorSpec{}, typeErr(param, "a string or an array of integers", "array")
		}
		ch := make([]int, len(elems))
		for i, e := range elems {
			n, err := decodeInt(fmt.Sprintf("%s[%d]", param, i), e)
			if err != nil {
				return ColorSpec{}, err
			}
			ch[i] = n
		}
		return Channels(ch), nil
	}
	return ColorSpec{}, typeErr(param, "a string or an array of integers", jsonKind(v))
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// jsonKind names the kind of a JSON value for error messages.
func jsonKind(v json.RawMessage) string {
	t := bytes.TrimSpace(v)
	if len(t) == 0 {
		return "nothing"
	}
	switch t[0] {
	case '"':
		return "string"
	case '[':
		return "array"
	case '{':
		return "object"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
