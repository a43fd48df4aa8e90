package format

import "strings"

var (
	smallWords = [...]string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tensWords = [...]string{
		"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	}
	scaleWords = [...]string{
		"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion",
	}
)

// Words spells n in British English: hundreds are joined to their remainder
// with "and", as is a trailing group below one hundred that follows a larger
// group ("one thousand and five").
func Words(n uint64) string {
	if n == 0 {
		return smallWords[0]
	}

	var groups []uint64
	for m := n; m > 0; m /= 1000 {
		groups = append(groups, m%1000)
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		words := groupWords(g)
		if i == 0 && g < 100 && len(groups) > 1 {
			words = "and " + words
		}
		if scaleWords[i] != "" {
			words += " " + scaleWords[i]
		}
		parts = append(parts, words)
	}
	return strings.Join(parts, " ")
}

// groupWords spells a value in [1, 999].
func groupWords(g uint64) string {
	var b strings.Builder
	if h := g / 100; h > 0 {
		b.WriteString(smallWords[h])
		b.WriteString(" hundred")
		if g%100 == 0 {
			return b.String()
		}
		b.WriteString(" and ")
	}

	r := g % 100
	if r < 20 {
		b.WriteString(smallWords[r])
		return b.String()
	}
	b.WriteString(tensWords[r/10])
	if r%10 != 0 {
		b.WriteByte('-')
		b.WriteString(smallWords[r%10])
	}
	return b.String()
}
