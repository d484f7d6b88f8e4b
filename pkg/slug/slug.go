package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make gera um slug URL-safe a partir de um nome: minúsculas, sem acentos,
// espaços e pontuação viram hífen. Ex: "João da Silva" -> "joao-da-silva".
func Make(name string) string {
	// NFD separa letras de seus acentos; runes.Remove descarta as marcas (Mn)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}

	var b strings.Builder
	lastHyphen := true // evita hífen inicial
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// WithSuffix anexa um sufixo ao slug base (usado para desambiguar colisões).
func WithSuffix(base, suffix string) string {
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
