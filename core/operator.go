package core

import (
	"fmt"
	"strings"
)

type QueryOperator int

const (
	Eq QueryOperator = iota
	Neq
	Gt
	Lt
	Ge
	Le
	Contains
)

var operatorNames = []string{"eq", "neq", "gt", "lt", "ge", "le", "contains"}

var operatorDescriptions = []string{
	"Equal to",
	"Not equal to",
	"Greater than",
	"Less than",
	"Greater than or equal to",
	"Less than or equal to",
	"Checks if a string contains a substring",
}

// Operators lists every query operator in declaration order.
func Operators() []QueryOperator {
	return []QueryOperator{Eq, Neq, Gt, Lt, Ge, Le, Contains}
}

// ParseOperator accepts the keyword form of an operator, ignoring case.
func ParseOperator(keyword string) (QueryOperator, error) {
	lower := strings.ToLower(strings.TrimSpace(keyword))
	for i, name := range operatorNames {
		if name == lower {
			return QueryOperator(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrInvalidInput, keyword)
}

func (op QueryOperator) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return fmt.Sprintf("QueryOperator(%d)", int(op))
	}
	return operatorNames[op]
}

func (op QueryOperator) Description() string {
	if op < 0 || int(op) >= len(operatorDescriptions) {
		return ""
	}
	return operatorDescriptions[op]
}

// Relational reports whether the operator orders numbers (gt, lt, ge, le).
func (op QueryOperator) Relational() bool {
	return op == Gt || op == Lt || op == Ge || op == Le
}

// Matches evaluates "candidate op probe". Combinations the operator does not
// apply to never match.
func (op QueryOperator) Matches(candidate, probe Value) bool {
	if op.Relational() {
		return op.matchesOrdered(candidate, probe)
	}
	switch op {
	case Eq:
		return candidate.Equal(probe)
	case Neq:
		return !candidate.Equal(probe)
	case Contains:
		c, cok := candidate.AsText()
		p, pok := probe.AsText()
		return cok && pok && strings.Contains(c, p)
	}
	return false
}

func (op QueryOperator) matchesOrdered(candidate, probe Value) bool {
	if !candidate.IsNumeric() || !probe.IsNumeric() {
		return false
	}
	cmp, ok := candidate.Compare(probe)
	if !ok {
		return false
	}
	switch op {
	case Gt:
		return cmp > 0
	case Lt:
		return cmp < 0
	case Ge:
		return cmp >= 0
	default:
		return cmp <= 0
	}
}
