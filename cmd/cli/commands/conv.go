// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ConvCmd shows the bit representation of a value
func ConvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conv [a]",
		Short: "Show the bit representation of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			fmt.Println("value:", u.ToInt())
			fmt.Println("bits:", u.String())
			fmt.Println("length:", u.Len())
			return nil
		},
	}
}
