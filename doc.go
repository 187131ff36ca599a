// Package amounts implements a calculator for token amounts written as short
// expressions, e.g. in configuration files.
//
// An expression is a sum of terms joined by + and -. A term is a decimal
// literal with an optional suffix, or random(a, b) for a uniform draw from the
// inclusive range between two terms. "10gwei - random(1gwei, 2gwei)" and
// "1.5estimate + 1" are expressions. There is no multiplication and there are
// no parentheses other than those of random.
//
// A suffix is either a unit, which scales the literal by a power of ten given
// by SuffixDecimals, or the name of the single variable given by Var, in which
// case the literal is a coefficient of the variable's value. All arithmetic is
// exact: integer results never silently drop a fractional part of a unit, and
// decimal results carry the exact scale of their inputs.
//
package amounts
