package format

import "strings"

// Биржа присылает числа строками вида "0.00100000" — для печати
// хвостовые нули только мешают.

// TrimZeros убирает лишние нули справа, оставляя хотя бы один знак
// после точки; "0.00100000" -> "0.001", "25000.00" -> "25000.0".
func TrimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// GroupThousands разбивает целую часть пробелами: "1234567.5" -> "1 234 567.5".
func GroupThousands(s string) string {
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return intPart + frac
	}
	var out []byte
	cnt := 0
	for i := len(intPart) - 1; i >= 0; i-- {
		out = append(out, intPart[i])
		cnt++
		if cnt%3 == 0 && i != 0 {
			out = append(out, ' ')
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out) + frac
}
