package por

import (
	"github.com/tchecker-go/tchecker/model"
	"github.com/tchecker-go/tchecker/ts"
)

// Por4 is the --source-set por4 CLI flag's registered policy: Validate
// always refuses (spec.md §7 model-structural refusal, §9 Open Question
// 1). The flag is accepted on the command-line surface, as spec.md §6
// requires, but no reduction is ever performed.
type Por4 struct{}

var _ Policy = Por4{}

func (Por4) Name() string { return "por4" }

func (Por4) Validate(*model.System) error { return ErrPor4Unsupported }

func (Por4) InitialMemory(*model.System, ts.Vloc) any { return noSelectedProcess }

func (Por4) SourceSet(sys *model.System, vloc ts.Vloc, memory any, vedges []ts.Vedge) []ts.Vedge {
	return vedges
}

func (Por4) NextMemory(sys *model.System, before, after ts.Vloc, memory any, taken ts.Vedge) any {
	return noSelectedProcess
}

func (Por4) MemoryCover(n, c any) bool { return n.(int) == c.(int) }
