package roster

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeID は従業員 ID (matricula) を比較可能な形に正規化します。
// スプレッドシート由来の "1234.0" のような数値表現は "1234" に揃えます。
func NormalizeID(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasSuffix(trimmed, ".0") {
		head := strings.TrimSuffix(trimmed, ".0")
		if head != "" && isDigits(head) {
			return head
		}
	}
	return trimmed
}

// FoldLabel は契約名などのラベルを大文字小文字・アクセントを無視して比較できる形にします。
func FoldLabel(raw string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(raw))
	if err != nil {
		folded = strings.TrimSpace(raw)
	}
	return strings.ToUpper(strings.Join(strings.Fields(folded), " "))
}

// SameLabel は 2 つのラベルが FoldLabel 後に一致するかを返します。
func SameLabel(a, b string) bool {
	return FoldLabel(a) == FoldLabel(b)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
