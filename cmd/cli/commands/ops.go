// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uintbits/uintbits/bitint"
)

func binaryCmd(use, short string, op func(a, b *bitint.Int) *bitint.Int) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [a] [b]",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			r := op(a, b)
			fmt.Printf("%v (%s)\n", r.ToInt(), r)
			return nil
		},
	}
}

// AndCmd ands two values
func AndCmd() *cobra.Command {
	return binaryCmd("and", "Bitwise AND of two values", bitint.And)
}

// OrCmd ors two values
func OrCmd() *cobra.Command {
	return binaryCmd("or", "Bitwise OR of two values", bitint.Or)
}

// XorCmd xors two values
func XorCmd() *cobra.Command {
	return binaryCmd("xor", "Bitwise XOR of two values", bitint.Xor)
}

// AddCmd adds two values
func AddCmd() *cobra.Command {
	return binaryCmd("add", "Add two values", bitint.Add)
}

// SubCmd subtracts two values, saturating at zero
func SubCmd() *cobra.Command {
	return binaryCmd("sub", "Subtract two values (saturates at zero)", bitint.Sub)
}

// MulCmd multiplies two values
func MulCmd() *cobra.Command {
	return binaryCmd("mul", "Multiply two values", bitint.Mul)
}
