package core

import (
	"reflect"
	"testing"
)

func TestTokenizeLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim rune
		want  []string
	}{
		{
			name: "plain fields",
			line: "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "quoted field with embedded delimiter and escaped quotes",
			line: `"Acme, Inc.","Widget with ""quotes""",10.50`,
			want: []string{"Acme, Inc.", `Widget with "quotes"`, "10.50"},
		},
		{
			name: "unquoted whitespace trimmed",
			line: "  a  , b ,c  ",
			want: []string{"a", "b", "c"},
		},
		{
			name: "quoted whitespace preserved",
			line: `"  padded  ",x`,
			want: []string{"  padded  ", "x"},
		},
		{
			name: "unterminated quote implicitly closed",
			line: `"never closed,still here`,
			want: []string{"never closed,still here"},
		},
		{
			name: "empty fields",
			line: "a,,c,",
			want: []string{"a", "", "c", ""},
		},
		{
			name: "newline inside quotes is literal",
			line: "\"line one\nline two\",b",
			want: []string{"line one\nline two", "b"},
		},
		{
			name:  "semicolon delimiter",
			line:  `a;"b;c";d`,
			delim: ';',
			want:  []string{"a", "b;c", "d"},
		},
		{
			name: "stray quote mid-field kept literally",
			line: `it"s fine,b`,
			want: []string{`it"s fine`, "b"},
		},
		{
			name: "empty line is one empty field",
			line: "",
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenizeLine(tt.line, tt.delim)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenizeLine(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestTokenizeText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [][]string
	}{
		{
			name: "multiple records",
			text: "a,b\nc,d\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "quoted field spans raw lines",
			text: "a,\"two\nlines\"\nb,c",
			want: [][]string{{"a", "two\nlines"}, {"b", "c"}},
		},
		{
			name: "crlf terminators",
			text: "a,b\r\nc,d\r\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "blank interior line survives as empty record",
			text: "Title\n\nPart Number,Qty\n",
			want: [][]string{{"Title"}, {""}, {"Part Number", "Qty"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenizeText(tt.text, ',')
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenizeText(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

// Tokenizing then normalizing must always reconcile width: every produced
// record below the header normalizes against the header's field count.
func TestTokenizeWidthReconciliation(t *testing.T) {
	text := "Part Number,Description,Quantity\n" +
		`R-1,"Resistor, 10k",5` + "\n" +
		"R-2,Short\n" +
		"R-3,Long,7,extra,cells\n"

	items, err := ImportText(text, DefaultOptions())
	if err != nil {
		t.Fatalf("ImportText: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Description != "Resistor, 10k" {
		t.Errorf("embedded delimiter lost: %q", items[0].Description)
	}
	if items[1].Quantity != 1 {
		t.Errorf("short row quantity should default to 1, got %d", items[1].Quantity)
	}
	if items[2].Quantity != 7 {
		t.Errorf("long row quantity = %d, want 7", items[2].Quantity)
	}
}
