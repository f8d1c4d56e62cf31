package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MixinNetwork/fraction/common"
	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/MixinNetwork/fraction/rpc"
	"github.com/urfave/cli/v2"
)

const customKey = "custom"

func setupCmd(c *cli.Context) error {
	custom := config.Default()
	if file := c.String("config"); file != "" {
		conf, err := config.Initialize(file)
		if err != nil {
			return err
		}
		custom = conf
	}
	if l := c.Int("log"); l > 0 {
		custom.Logger.Level = l
	}
	if f := c.String("filter"); f != "" {
		custom.Logger.Filter = f
	}
	err := logger.Configure(custom.Logger.Level, custom.Logger.Filter, custom.Logger.Limiter)
	if err != nil {
		return err
	}
	c.App.Metadata = map[string]interface{}{customKey: custom}
	return nil
}

func customFromContext(c *cli.Context) *config.Custom {
	if custom, ok := c.App.Metadata[customKey].(*config.Custom); ok {
		return custom
	}
	return config.Default()
}

// readOperand takes "n/d" text or a finite decimal such as "-3.14".
func readOperand(s string) (common.Fraction, error) {
	if strings.Contains(s, "/") {
		return common.Parse(s)
	}
	return common.ParseDecimal(s)
}

// operands drops a leading "--", commands that skip flag parsing keep it.
func operands(c *cli.Context) []string {
	args := c.Args().Slice()
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

func readArgs(c *cli.Context, count int) ([]common.Fraction, error) {
	args := operands(c)
	if len(args) != count {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", c.Command.Name, count, len(args))
	}
	values := make([]common.Fraction, count)
	for i := range values {
		v, err := readOperand(args[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func parseCmd(c *cli.Context) error {
	args, err := readArgs(c, 1)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, args[0].String())
	return nil
}

func arithmeticCmd(c *cli.Context) error {
	args, err := readArgs(c, 2)
	if err != nil {
		return err
	}
	x, y := args[0], args[1]
	logger.Debugf("%s %s %s", c.Command.Name, x.RatString(), y.RatString())

	var result common.Fraction
	switch c.Command.Name {
	case "add":
		result = x.Add(y)
	case "sub":
		result = x.Sub(y)
	case "mul":
		result = x.Mul(y)
	case "div":
		result, err = x.Div(y)
		if err != nil {
			return err
		}
	case "cmp":
		fmt.Fprintln(c.App.Writer, x.Cmp(y))
		return nil
	default:
		return fmt.Errorf("unknown command %s", c.Command.Name)
	}
	fmt.Fprintln(c.App.Writer, result.String())
	return nil
}

func absCmd(c *cli.Context) error {
	args, err := readArgs(c, 1)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, args[0].Abs().String())
	return nil
}

func decimalCmd(c *cli.Context) error {
	args, err := readArgs(c, 1)
	if err != nil {
		return err
	}
	places := customFromContext(c).Format.DecimalPlaces
	if c.IsSet("places") {
		places = int32(c.Int("places"))
	}
	if places < 0 {
		return fmt.Errorf("invalid decimal places %d", places)
	}
	fmt.Fprintln(c.App.Writer, args[0].Decimal(places).StringFixed(places))
	return nil
}

func fromDecimalCmd(c *cli.Context) error {
	args := operands(c)
	if len(args) != 1 {
		return fmt.Errorf("fromdecimal expects 1 argument, got %d", len(args))
	}
	f, err := common.ParseDecimal(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, f.String())
	return nil
}

func rpcCmd(c *cli.Context) error {
	custom := customFromContext(c)
	port := custom.RPC.Port
	if c.IsSet("port") {
		port = c.Int("port")
	}
	server := rpc.NewServer(custom, port)
	logger.Printf("RPC listening on %s\n", server.Addr)
	return server.ListenAndServe()
}

func callCmd(c *cli.Context) error {
	var params []interface{}
	err := json.Unmarshal([]byte(c.String("params")), &params)
	if err != nil {
		return err
	}
	data, err := rpc.CallRPC(c.String("node"), c.String("method"), params)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}
