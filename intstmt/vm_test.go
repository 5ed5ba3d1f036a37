package intstmt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tchecker-go/tchecker/intstmt"
)

func TestEvalGuard(t *testing.T) {
	v := &intstmt.Valuation{Values: []int64{3}, Min: []int64{0}, Max: []int64{10}}
	// x >= 2
	prog := intstmt.Program{
		{Op: intstmt.OpLoadVar, Arg: 0},
		{Op: intstmt.OpPushConst, Arg: 2},
		{Op: intstmt.OpGe},
	}
	ok, err := intstmt.Eval(prog, v)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestExecStatementAssigns(t *testing.T) {
	v := &intstmt.Valuation{Values: []int64{0}, Min: []int64{0}, Max: []int64{10}}
	// x := x + 1
	prog := intstmt.Program{
		{Op: intstmt.OpLoadVar, Arg: 0},
		{Op: intstmt.OpPushConst, Arg: 1},
		{Op: intstmt.OpAdd},
		{Op: intstmt.OpStoreVar, Arg: 0},
	}
	require.NoError(t, intstmt.Exec(prog, v))
	require.Equal(t, int64(1), v.Values[0])
}

func TestExecStatementOutOfRangeFails(t *testing.T) {
	v := &intstmt.Valuation{Values: []int64{10}, Min: []int64{0}, Max: []int64{10}}
	prog := intstmt.Program{
		{Op: intstmt.OpLoadVar, Arg: 0},
		{Op: intstmt.OpPushConst, Arg: 1},
		{Op: intstmt.OpAdd},
		{Op: intstmt.OpStoreVar, Arg: 0},
	}
	err := intstmt.Exec(prog, v)
	require.ErrorIs(t, err, intstmt.ErrValueOutOfRange)
}

func TestDivisionByZero(t *testing.T) {
	v := &intstmt.Valuation{Values: []int64{5}, Min: []int64{0}, Max: []int64{10}}
	prog := intstmt.Program{
		{Op: intstmt.OpLoadVar, Arg: 0},
		{Op: intstmt.OpPushConst, Arg: 0},
		{Op: intstmt.OpDiv},
	}
	_, err := intstmt.Eval(prog, v)
	require.ErrorIs(t, err, intstmt.ErrDivisionByZero)
}

func TestEmptyGuardIsVacuouslyTrue(t *testing.T) {
	ok, err := intstmt.Eval(nil, &intstmt.Valuation{})
	require.NoError(t, err)
	require.True(t, ok)
}
