// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uintbits/uintbits/cmd/cli/commands"
)

var rootCmd = &cobra.Command{
	Use:           "uintbits-cli",
	Short:         "bit-array unsigned integer calculator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(
		commands.AndCmd(),
		commands.OrCmd(),
		commands.XorCmd(),
		commands.AddCmd(),
		commands.SubCmd(),
		commands.MulCmd(),
		commands.ConvCmd(),
		commands.VersionCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
