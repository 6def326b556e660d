// Package day08 solves Handheld Halting: run a tiny accumulator VM and
// repair its boot loop.
package day08

import (
	"strconv"
	"strings"

	"advent2020/internal/solve"
)

type opcode string

const (
	opAcc opcode = "acc"
	opJmp opcode = "jmp"
	opNop opcode = "nop"
)

type instruction struct {
	op  opcode
	arg int
}

func parse(in *solve.Input) ([]instruction, error) {
	lines := in.Lines()
	program := make([]instruction, 0, len(lines))
	for _, line := range lines {
		opStr, argStr, ok := strings.Cut(line, " ")
		if !ok {
			return nil, solve.BadInputf("malformed instruction %q", line)
		}
		op := opcode(opStr)
		if op != opAcc && op != opJmp && op != opNop {
			return nil, solve.BadInputf("unknown opcode %q", opStr)
		}
		arg, err := strconv.Atoi(strings.TrimPrefix(argStr, "+"))
		if err != nil {
			return nil, solve.BadInputf("bad argument %q", argStr)
		}
		program = append(program, instruction{op: op, arg: arg})
	}
	return program, nil
}

// run executes the program until it terminates past the last
// instruction or revisits one. It returns the accumulator and whether
// the program terminated normally.
func run(program []instruction) (acc int, terminated bool) {
	visited := make([]bool, len(program))
	pc := 0
	for pc < len(program) {
		if visited[pc] {
			return acc, false
		}
		visited[pc] = true
		switch inst := program[pc]; inst.op {
		case opAcc:
			acc += inst.arg
			pc++
		case opJmp:
			pc += inst.arg
		case opNop:
			pc++
		}
	}
	return acc, true
}

func Part1(in *solve.Input) (string, error) {
	program, err := parse(in)
	if err != nil {
		return "", err
	}
	acc, terminated := run(program)
	if terminated {
		return "", solve.NoSolutionf("program terminated without looping")
	}
	return strconv.Itoa(acc), nil
}

// Part2 flips one jmp/nop at a time until the program terminates.
func Part2(in *solve.Input) (string, error) {
	program, err := parse(in)
	if err != nil {
		return "", err
	}
	for i, inst := range program {
		switch inst.op {
		case opJmp:
			program[i].op = opNop
		case opNop:
			program[i].op = opJmp
		default:
			continue
		}
		if acc, terminated := run(program); terminated {
			return strconv.Itoa(acc), nil
		}
		program[i] = inst
	}
	return "", solve.NoSolutionf("no single flip terminates the program")
}
