// Command ecdsa generates keys, signs and verifies messages over the built-in
// or YAML-defined short Weierstrass curves, and audits signature sets for
// related nonces.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const usage = `usage: ecdsa <command> [flags]

commands:
  curves   list available curves
  keygen   generate a key pair
  sign     sign a message
  verify   verify a signature
  audit    recover keys from signatures with related nonces

Run "ecdsa <command> -h" for command flags.
`

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}

	var cmd func(args []string, stdout, stderr io.Writer) error
	switch args[0] {
	case "curves":
		cmd = runCurves
	case "keygen":
		cmd = runKeygen
	case "sign":
		cmd = runSign
	case "verify":
		cmd = runVerify
	case "audit":
		cmd = runAudit
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return errUsage
	}
	return cmd(args[1:], stdout, stderr)
}

// newLogger writes to w: console output at debug level with -v, JSON at
// warn level otherwise.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	level := zapcore.WarnLevel
	if verbose {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}
