package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Name cleans a display name: NFC form, no surrounding space, inner runs of
// whitespace collapsed to one space. Case is kept.
func Name(name string) string {
	return strings.Join(strings.Fields(norm.NFC.String(name)), " ")
}
