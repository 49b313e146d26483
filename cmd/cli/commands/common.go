// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands holds the calculator subcommands. Operands are
// decimal positive machine integers; results print as the value followed
// by the full stored bit pattern.
package commands

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/uintbits/uintbits/bitint"
)

func parseOperand(s string) (*bitint.Int, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "operand %q", s)
	}
	u, err := bitint.New(i)
	if err != nil {
		return nil, errors.Wrapf(err, "operand %q", s)
	}
	return u, nil
}

func parseOperands(args []string) (*bitint.Int, *bitint.Int, error) {
	a, err := parseOperand(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := parseOperand(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
