package clix

import (
	"strings"

	"github.com/spf13/pflag"
)

// ParseContexts reads the --contexts flag as a comma-separated list,
// trimming whitespace and dropping empty entries. Order is preserved since
// the first context drives categorization.
func ParseContexts(flags *pflag.FlagSet) ([]string, error) {
	contextsStr, _ := flags.GetString("contexts")
	var contexts []string
	if contextsStr != "" {
		raw := strings.Split(contextsStr, ",")
		for _, c := range raw {
			trimmed := strings.TrimSpace(c)
			if trimmed != "" {
				contexts = append(contexts, trimmed)
			}
		}
	}
	return contexts, nil
}
