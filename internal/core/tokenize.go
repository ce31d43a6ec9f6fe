package core

// tokenize.go implements quote-aware splitting of delimited text.
//
// The rules match standard CSV quoting: a field wrapped in double quotes may
// contain the delimiter and raw newlines, and a doubled quote inside a quoted
// field is one literal quote character. Malformed quoting never aborts the
// import — an unterminated quote is implicitly closed at end of input, which
// favors partial recovery over rejection of the whole file.

import (
	"strings"
	"unicode/utf8"
)

// TokenizeLine splits one logical line of delimited text into fields.
// Whitespace around unquoted fields is trimmed; whitespace inside quoted
// fields is preserved. The function is pure and never fails.
func TokenizeLine(line string, delim rune) []string {
	if delim == 0 {
		delim = ','
	}
	fields, _ := scanRecord(line, delim)
	return fields
}

// TokenizeText splits raw delimited text into records of fields. Record
// boundaries are newlines outside of quotes, so a quoted field may span
// multiple raw lines. A trailing newline does not produce an empty record,
// but blank interior lines do — header inference relies on seeing spacer rows.
func TokenizeText(text string, delim rune) [][]string {
	if delim == 0 {
		delim = ','
	}

	var records [][]string
	rest := text
	for len(rest) > 0 {
		fields, n := scanRecord(rest, delim)
		records = append(records, fields)
		rest = rest[n:]
	}
	return records
}

// scanRecord parses one record from the front of s and reports how many bytes
// were consumed, including the terminating newline if any. Newlines inside
// quotes belong to the field.
func scanRecord(s string, delim rune) ([]string, int) {
	var (
		fields   []string
		buf      strings.Builder
		quoted   bool // current field was opened with a quote
		inQuotes bool
	)

	flush := func() {
		v := buf.String()
		if !quoted {
			v = strings.TrimSpace(v)
		}
		fields = append(fields, v)
		buf.Reset()
		quoted = false
	}

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '"':
			switch {
			case inQuotes && strings.HasPrefix(s[i+size:], `"`):
				// Doubled quote is a literal quote character.
				buf.WriteRune('"')
				i += size * 2
				continue
			case inQuotes:
				inQuotes = false
				// Discard whitespace between the closing quote and
				// the next delimiter or newline.
				i += size
				for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
					i++
				}
				continue
			case strings.TrimSpace(buf.String()) == "":
				// Opening quote: drop any leading whitespace.
				buf.Reset()
				quoted = true
				inQuotes = true
			default:
				// Stray quote mid-field; keep it literally.
				buf.WriteRune('"')
			}
			i += size

		case r == delim && !inQuotes:
			flush()
			i += size

		case (r == '\n' || r == '\r') && !inQuotes:
			flush()
			i += size
			if r == '\r' && i < len(s) && s[i] == '\n' {
				i++
			}
			return fields, i

		default:
			buf.WriteRune(r)
			i += size
		}
	}

	// An unterminated quote falls out here and is treated as implicitly
	// closed; whatever was collected becomes the final field.
	flush()
	return fields, len(s)
}
