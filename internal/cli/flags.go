package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/spotter/internal/domain"
	"github.com/spf13/pflag"
)

func addPlanFlag(fs *pflag.FlagSet, dst *string) {
	fs.StringVarP(dst, "plan", "p", "", "Plan id, name, list number or YAML file")
}

func addBarFlag(fs *pflag.FlagSet, dst *float64, def float64) {
	fs.Float64Var(dst, "bar", def, "Bar weight")
}

func addMutedFlag(fs *pflag.FlagSet, dst *bool, def bool) {
	fs.BoolVar(dst, "muted", def, "Silence the rest-expiry bell")
}

// difficultyValue is a pflag.Value restricted to the known difficulty tiers.
type difficultyValue struct {
	d *domain.Difficulty
}

func newDifficultyValue(def domain.Difficulty, dst *domain.Difficulty) *difficultyValue {
	*dst = def
	return &difficultyValue{d: dst}
}

func (v *difficultyValue) String() string { return string(*v.d) }
func (v *difficultyValue) Type() string   { return "difficulty" }

func (v *difficultyValue) Set(s string) error {
	for d := range domain.ValidDifficulties {
		if strings.EqualFold(d, s) {
			*v.d = domain.Difficulty(d)
			return nil
		}
	}
	return fmt.Errorf("invalid difficulty %q (expected Beginner, Intermediate or Advanced)", s)
}

var _ pflag.Value = (*difficultyValue)(nil)

// rpeValue is a pflag.Value accepting 1..10.
type rpeValue struct {
	n *int
}

func newRPEValue(def int, dst *int) *rpeValue {
	*dst = def
	return &rpeValue{n: dst}
}

func (v *rpeValue) String() string { return strconv.Itoa(*v.n) }
func (v *rpeValue) Type() string   { return "rpe" }

func (v *rpeValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 10 {
		return fmt.Errorf("rpe must be a number from 1 to 10")
	}
	*v.n = n
	return nil
}

var _ pflag.Value = (*rpeValue)(nil)
