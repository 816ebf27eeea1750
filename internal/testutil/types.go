// Package testutil defines support code for unit tests.
package testutil

import "github.com/creachadair/jtrace"

// Valid is a collection of well-formed JSON documents that use only the
// escapes accepted by default.
var Valid = []string{
	`{}`,
	`[]`,
	`0`,
	`-0`,
	`-12.5e+10`,
	`1E-7`,
	`""`,
	`"hello, world"`,
	`"a \"quoted\" word and a \\ backslash"`,
	`true`,
	`false`,
	`null`,
	`[[[]]]`,
	`{"a":1,"a":2}`,
	`[1, "two", true, false, null, {}, []]`,
	`{"list": [{"x": 1}, {"x": 2.25}], "y": {"hello": "there"}}`,
	"\n\t{ \"spread\" :\r\n [ 1 ,\n 2 ] }\n",
}

// Invalid is a collection of malformed documents, each mapped to the kind
// of error the parser reports for it.
var Invalid = map[string]jtrace.ErrorKind{
	`1.`:        jtrace.InvalidNumber,
	`01`:        jtrace.InvalidNumber,
	`-`:         jtrace.InvalidNumber,
	`1e`:        jtrace.InvalidNumber,
	`[1.e5]`:    jtrace.InvalidNumber,
	"\"a\tb\"":  jtrace.UnterminatedOrControlChar,
	"\"a\nb\"":  jtrace.UnterminatedOrControlChar,
	`"abc`:      jtrace.UnterminatedOrControlChar,
	`"a\qb"`:    jtrace.InvalidEscape,
	`"a\tb"`:    jtrace.InvalidEscape,
	`'single'`:  jtrace.UnexpectedChar,
	`tru`:       jtrace.UnexpectedChar,
	`nullify`:   jtrace.UnexpectedChar,
	`+1`:        jtrace.UnexpectedChar,
	``:          jtrace.UnexpectedToken,
	`]`:         jtrace.UnexpectedToken,
	`{1:2}`:     jtrace.UnexpectedToken,
	`{"a" 1}`:   jtrace.UnexpectedToken,
	`[1 2]`:     jtrace.UnexpectedToken,
	`{"a":}`:    jtrace.UnexpectedToken,
	`[1,2,]`:    jtrace.TrailingCommaOrMissingElement,
	`[1,,2]`:    jtrace.TrailingCommaOrMissingElement,
	`{"a":1,}`:  jtrace.TrailingCommaOrMissingElement,
	`{"a":1,2}`: jtrace.TrailingCommaOrMissingElement,
	`[1,`:       jtrace.TrailingCommaOrMissingElement,
	`1 2`:       jtrace.UnconsumedInput,
	`{}}`:       jtrace.UnconsumedInput,
	`[] []`:     jtrace.UnconsumedInput,
}
