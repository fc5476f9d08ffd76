// Copyright 2024 The ethabi Authors
// This file is part of the ethabi library.
//
// The ethabi library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ethabi library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ethabi library. If not, see <http://www.gnu.org/licenses/>.

// abitool computes selectors and topic identifiers and converts call data
// between its textual and ABI-encoded forms.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/evmkit/ethabi/abi"
	"github.com/evmkit/ethabi/common"
	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:  "abitool",
	Usage: "contract ABI signature and call data tool",
	Commands: []*cli.Command{
		selectorCommand,
		topicCommand,
		encodeCommand,
		decodeCommand,
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var selectorCommand = &cli.Command{
	Name:      "selector",
	Usage:     "print the 4 byte selector of a function signature",
	ArgsUsage: "<signature>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.Exit("one signature argument required", 1)
		}
		fn, err := abi.ParseFunction(ctx.Args().First())
		if err != nil {
			return err
		}
		sel := fn.Selector()
		fmt.Printf("%s\t0x%x\n", fn.Sig(), sel[:])
		return nil
	},
}

var topicCommand = &cli.Command{
	Name:      "topic",
	Usage:     "print the 32 byte topic identifier of an event signature",
	ArgsUsage: "<signature>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return cli.Exit("one signature argument required", 1)
		}
		ev, err := abi.ParseEvent(ctx.Args().First())
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", ev.Sig(), ev.ID().Hex())
		return nil
	},
}

var encodeCommand = &cli.Command{
	Name:      "encode",
	Usage:     "encode call data for a function signature",
	ArgsUsage: "<signature> [arg...]",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			return cli.Exit("signature argument required", 1)
		}
		fn, err := abi.ParseFunction(ctx.Args().First())
		if err != nil {
			return err
		}
		raw := ctx.Args().Slice()[1:]
		if len(raw) != len(fn.Inputs) {
			return cli.Exit(fmt.Sprintf("need %d arguments, got %d", len(fn.Inputs), len(raw)), 1)
		}
		args := make([]interface{}, len(raw))
		for i, r := range raw {
			if args[i], err = parseArg(fn.Inputs[i], r); err != nil {
				return err
			}
		}
		data, err := fn.EncodeCall(args...)
		if err != nil {
			return err
		}
		fmt.Printf("0x%x\n", data)
		return nil
	},
}

var decodeCommand = &cli.Command{
	Name:      "decode",
	Usage:     "decode call data against a function signature",
	ArgsUsage: "<signature> <hexdata>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 2 {
			return cli.Exit("signature and hex data arguments required", 1)
		}
		fn, err := abi.ParseFunction(ctx.Args().First())
		if err != nil {
			return err
		}
		data := common.FromHex(ctx.Args().Get(1))
		values, err := fn.DecodeCall(data)
		if err != nil {
			return err
		}
		for i, v := range values {
			fmt.Printf("%s\t%v\n", fn.Inputs[i], format(v))
		}
		return nil
	},
}

// parseArg converts a command line token into a value for the given type.
// Composite types are out of scope for the command line surface.
func parseArg(t abi.Type, s string) (interface{}, error) {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		n, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		return n, nil
	case abi.BoolTy:
		switch s {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf("invalid bool %q", s)
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address %q", s)
		}
		return common.HexToAddress(s), nil
	case abi.StringTy:
		return s, nil
	case abi.BytesTy, abi.FixedBytesTy:
		if !strings.HasPrefix(s, "0x") {
			return nil, fmt.Errorf("bytes argument %q must be 0x-prefixed hex", s)
		}
		return common.FromHex(s), nil
	default:
		return nil, fmt.Errorf("type %v is not supported on the command line", t)
	}
}

func format(v interface{}) string {
	switch v := v.(type) {
	case []byte:
		return "0x" + common.Bytes2Hex(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
