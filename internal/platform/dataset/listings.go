package dataset

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"lohnplaner/internal/domain/scenario"
)

// Cantons lists every canton present in the municipality table, sorted.
func Cantons(rules *scenario.Ruleset) []string {
	cantons := lo.Uniq(lo.FilterMap(lo.Keys(rules.Factors), func(key string, _ int) (string, bool) {
		canton, _, ok := strings.Cut(key, "/")
		return canton, ok && canton != ""
	}))
	sort.Strings(cantons)
	return cantons
}

// Communes lists the communes of one canton, sorted.
func Communes(rules *scenario.Ruleset, canton string) []string {
	communes := lo.FilterMap(lo.Keys(rules.Factors), func(key string, _ int) (string, bool) {
		c, commune, ok := strings.Cut(key, "/")
		return commune, ok && c == canton && commune != ""
	})
	sort.Strings(communes)
	return communes
}
