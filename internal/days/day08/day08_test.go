package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/internal/solve"
)

const example = `nop +0
acc +1
jmp +4
acc +3
jmp -3
acc -99
acc +1
jmp -4
acc +6`

func TestParse(t *testing.T) {
	program, err := parse(solve.FromString(example))
	require.NoError(t, err)
	require.Len(t, program, 9)
	assert.Equal(t, instruction{op: opNop, arg: 0}, program[0])
	assert.Equal(t, instruction{op: opAcc, arg: -99}, program[5])
	assert.Equal(t, instruction{op: opJmp, arg: -4}, program[7])

	_, err = parse(solve.FromString("hlt +1"))
	assert.ErrorIs(t, err, solve.ErrBadInput)
}

func TestRunLoops(t *testing.T) {
	program, err := parse(solve.FromString(example))
	require.NoError(t, err)

	acc, terminated := run(program)
	assert.False(t, terminated)
	assert.Equal(t, 5, acc)
}

func TestParts(t *testing.T) {
	in := solve.FromString(example)

	got1, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, "5", got1)

	got2, err := Part2(in)
	require.NoError(t, err)
	assert.Equal(t, "8", got2)
}
