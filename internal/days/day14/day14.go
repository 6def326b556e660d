// Package day14 solves Docking Data: apply 36-bit bitmasks to values,
// then to floating addresses.
package day14

import (
	"strconv"
	"strings"

	"advent2020/internal/solve"
)

// mask is one "mask = ..." line split into its three roles: forced
// zeroes, forced ones, and floating bits.
type mask struct {
	zeroes, ones, floating uint64
}

type write struct {
	addr, value uint64
}

// statement is either a mask change or a memory write.
type statement struct {
	mask  *mask
	write *write
}

func parseMask(s string) (*mask, error) {
	if len(s) != 36 {
		return nil, solve.BadInputf("mask %q is not 36 bits", s)
	}
	m := &mask{}
	for _, c := range s {
		m.zeroes <<= 1
		m.ones <<= 1
		m.floating <<= 1
		switch c {
		case '0':
			m.zeroes |= 1
		case '1':
			m.ones |= 1
		case 'X':
			m.floating |= 1
		default:
			return nil, solve.BadInputf("unexpected mask bit %q", c)
		}
	}
	return m, nil
}

func parse(in *solve.Input) ([]statement, error) {
	lines := in.Lines()
	stmts := make([]statement, 0, len(lines))
	for _, line := range lines {
		lhs, rhs, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, solve.BadInputf("malformed statement %q", line)
		}
		switch {
		case lhs == "mask":
			m, err := parseMask(rhs)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, statement{mask: m})
		case strings.HasPrefix(lhs, "mem[") && strings.HasSuffix(lhs, "]"):
			addr, err := strconv.ParseUint(lhs[4:len(lhs)-1], 10, 64)
			if err != nil {
				return nil, solve.BadInputf("bad address in %q", line)
			}
			value, err := strconv.ParseUint(rhs, 10, 64)
			if err != nil {
				return nil, solve.BadInputf("bad value in %q", line)
			}
			stmts = append(stmts, statement{write: &write{addr: addr, value: value}})
		default:
			return nil, solve.BadInputf("malformed statement %q", line)
		}
	}
	return stmts, nil
}

func memorySum(mem map[uint64]uint64) uint64 {
	var sum uint64
	for _, v := range mem {
		sum += v
	}
	return sum
}

// runValueMasked applies the mask to written values.
func runValueMasked(stmts []statement) (uint64, error) {
	mem := map[uint64]uint64{}
	var current *mask
	for _, s := range stmts {
		if s.mask != nil {
			current = s.mask
			continue
		}
		if current == nil {
			return 0, solve.BadInputf("write before first mask")
		}
		mem[s.write.addr] = (s.write.value | current.ones) &^ current.zeroes
	}
	return memorySum(mem), nil
}

// floatingAddrs expands the floating bits of a base address into every
// concrete address, via subset enumeration.
func floatingAddrs(base, floating uint64) []uint64 {
	base &^= floating
	addrs := []uint64{base}
	subset := floating
	for subset != 0 {
		addrs = append(addrs, base|subset)
		subset = (subset - 1) & floating
	}
	return addrs
}

// runAddrMasked applies the mask to addresses: ones are forced, X bits
// float over all combinations.
func runAddrMasked(stmts []statement) (uint64, error) {
	mem := map[uint64]uint64{}
	var current *mask
	for _, s := range stmts {
		if s.mask != nil {
			current = s.mask
			continue
		}
		if current == nil {
			return 0, solve.BadInputf("write before first mask")
		}
		for _, addr := range floatingAddrs(s.write.addr|current.ones, current.floating) {
			mem[addr] = s.write.value
		}
	}
	return memorySum(mem), nil
}

func Part1(in *solve.Input) (string, error) {
	stmts, err := parse(in)
	if err != nil {
		return "", err
	}
	sum, err := runValueMasked(stmts)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(sum, 10), nil
}

func Part2(in *solve.Input) (string, error) {
	stmts, err := parse(in)
	if err != nil {
		return "", err
	}
	sum, err := runAddrMasked(stmts)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(sum, 10), nil
}
