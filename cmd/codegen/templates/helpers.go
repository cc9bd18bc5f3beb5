package templates

import (
	"strconv"
	"strings"
)

// prefixedStrings renders "T0, T1, T2" style comma lists.
func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// repeatedStrings renders "nil, nil, nil" style comma lists.
func repeatedStrings(s string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(s)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// joinedCalls renders "src0.Value(), src1.Value()" style comma lists.
func joinedCalls(prefix, call string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(call)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// indexedLines renders one line per index, replacing every # in format with
// the index. Each line ends with a newline.
func indexedLines(format string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(strings.ReplaceAll(format, "#", strconv.Itoa(i)))
		sb.WriteString("\n")
	}
	return sb.String()
}
