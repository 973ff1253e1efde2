package airutil

import "github.com/drone/envsubst"

// ExpandEnv substitutes ${VAR} references in s with values from
// the environment. If s cannot be parsed it is returned as-is.
func ExpandEnv(s string) string {
	val, err := envsubst.EvalEnv(s)
	if err != nil {
		return s
	}
	return val
}
