package tools

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	sentenceBreak = regexp.MustCompile(`[.!?]+`)
	titleWord     = regexp.MustCompile(`[\p{L}\p{N}_]\S*`)
)

// AnalyzeText reports word, character and sentence counts. Characters are
// UTF-16 code units of the untrimmed input.
func AnalyzeText(input string) string {
	return fmt.Sprintf("Words: %d, Characters: %d, Sentences: %d",
		countWords(input), utf16Len(input), countSentences(input))
}

// isJSSpace matches the JavaScript \s class: Unicode White_Space minus
// U+0085, plus the byte order mark U+FEFF.
func isJSSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}

// countWords splits the trimmed input on whitespace runs. Splitting an empty
// string still yields one (empty) field, so blank input counts as one word.
func countWords(s string) int {
	fields := strings.FieldsFunc(s, isJSSpace)
	if len(fields) == 0 {
		return 1
	}
	return len(fields)
}

func countSentences(s string) int {
	n := 0
	for _, part := range sentenceBreak.Split(s, -1) {
		if strings.TrimFunc(part, isJSSpace) != "" {
			n++
		}
	}
	return n
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// ConvertCase renders the input in upper, lower and title case, one per line.
func ConvertCase(input string) string {
	return fmt.Sprintf("Uppercase: %s\nLowercase: %s\nTitle Case: %s",
		cases.Upper(language.Und).String(input),
		cases.Lower(language.Und).String(input),
		titleCase(input),
	)
}

// titleCase capitalizes the first letter of every non-whitespace run and
// lowercases the rest of it. Leading punctuation in a run is left alone, so
// "(hello" becomes "(Hello".
func titleCase(s string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	return titleWord.ReplaceAllStringFunc(s, func(word string) string {
		_, size := utf8.DecodeRuneInString(word)
		return upper.String(word[:size]) + lower.String(word[size:])
	})
}

// Reverse reverses the input by grapheme cluster, so combining marks and
// emoji sequences survive intact. CRLF is a single cluster but is still
// reversed to LF CR like any other pair of ASCII characters.
func Reverse(input string) string {
	var clusters []string
	g := uniseg.NewGraphemes(input)
	for g.Next() {
		if c := g.Str(); c == "\r\n" {
			clusters = append(clusters, "\r", "\n")
		} else {
			clusters = append(clusters, c)
		}
	}
	slices.Reverse(clusters)
	return "Reversed: " + strings.Join(clusters, "")
}
