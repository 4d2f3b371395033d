// Package export serializes filtered rows to downloadable CSV files.
//
// The output format is fixed by the collaborating import tooling: header
// cells unquoted, every data cell double-quoted, rows terminated by CRLF.
// encoding/csv quotes only when it must, so the writer here is explicit.
package export

import (
	"fmt"
	"strings"
	"time"
)

// ValueType tags how a cell value is formatted.
type ValueType int

const (
	TypePlain ValueType = iota
	TypeDate
	TypeBool
)

// Cell is one value to serialize, with its formatting tag.
type Cell struct {
	Value any
	Type  ValueType
}

// File is a named payload ready to hand to the user.
type File struct {
	Name string
	Data []byte
}

// CSV renders headers and rows into the fixed CSV format.
func CSV(headers []string, rows [][]Cell) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	b.WriteString("\r\n")

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(FormatValue(cell.Value, cell.Type), `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}

// FormatValue renders one cell value: dates in long form ("January 5,
// 2024"), booleans as Yes/No, nil as the empty string, everything else
// via its plain string form.
func FormatValue(value any, t ValueType) string {
	if value == nil {
		return ""
	}
	switch t {
	case TypeDate:
		return formatDate(value)
	case TypeBool:
		if b, ok := value.(bool); ok && b {
			return "Yes"
		}
		return "No"
	default:
		return fmt.Sprint(value)
	}
}

func formatDate(value any) string {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format("January 2, 2006")
	case string:
		if v == "" {
			return ""
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t.Format("January 2, 2006")
			}
		}
		return v
	default:
		return fmt.Sprint(value)
	}
}
