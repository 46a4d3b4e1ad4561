package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecdsa-weierstrass/internal/config"
	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/audit"
	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/curve"
	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/ecdsa"
)

// common holds the flags every command accepts.
type common struct {
	curveName string
	curveFile string
	hashName  string
	verbose   bool
}

func newFlagSet(name string, stderr io.Writer, c *common) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.curveName, "curve", "secp256k1", "curve name (built-in or from -curve-file)")
	fs.StringVar(&c.curveFile, "curve-file", "", "YAML file with additional curve definitions")
	fs.StringVar(&c.hashName, "hash", "sha256", "message digest: "+strings.Join(ecdsa.HasherNames(), ", "))
	fs.BoolVar(&c.verbose, "v", false, "verbose logging")
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errUsage
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return nil
}

func (c *common) curves() (*config.CurveSet, error) {
	if c.curveFile == "" {
		return nil, nil
	}
	return config.LoadCurves(c.curveFile)
}

func (c *common) scheme() (*ecdsa.Scheme, error) {
	set, err := c.curves()
	if err != nil {
		return nil, err
	}
	crv, err := set.Lookup(c.curveName)
	if err != nil {
		return nil, err
	}
	h, ok := ecdsa.HasherByName(c.hashName)
	if !ok {
		return nil, fmt.Errorf("unknown hash %q", c.hashName)
	}
	return ecdsa.NewScheme(crv).WithHasher(h), nil
}

func hexInt(v *big.Int) string {
	return "0x" + v.Text(16)
}

// parsePoint parses "x,y".
func parsePoint(s string) (*big.Int, *big.Int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("invalid point format %q, want x,y", s)
	}
	x, err := config.ParseInt(parts[0])
	if err != nil {
		return nil, nil, err
	}
	y, err := config.ParseInt(parts[1])
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func parseRange(s string) ([2]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]int{}, fmt.Errorf("invalid range format: %s", s)
	}

	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return [2]int{}, err
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return [2]int{}, err
	}
	if lo > hi {
		return [2]int{}, fmt.Errorf("invalid range %d > %d", lo, hi)
	}
	return [2]int{lo, hi}, nil
}

func runCurves(args []string, stdout, stderr io.Writer) error {
	var c common
	fs := newFlagSet("curves", stderr, &c)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	set, err := c.curves()
	if err != nil {
		return err
	}

	names := append(curve.PresetNames(), set.Names()...)
	for _, name := range names {
		crv, err := set.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%-12s p=%d bits  n=%s\n", name, crv.Field().BitLen(), hexInt(crv.Order()))
	}
	return nil
}

func runKeygen(args []string, stdout, stderr io.Writer) error {
	var c common
	fs := newFlagSet("keygen", stderr, &c)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	logger := newLogger(c.verbose, stderr)
	defer logger.Sync()

	scheme, err := c.scheme()
	if err != nil {
		return err
	}

	priv, err := scheme.GenerateKey()
	if err != nil {
		return err
	}
	logger.Debug("generated key", zap.String("curve", scheme.Curve().Name()))

	pub := priv.Public()
	fmt.Fprintf(stdout, "private: %s\n", hexInt(priv.D()))
	fmt.Fprintf(stdout, "public:  %s,%s\n", hexInt(pub.X()), hexInt(pub.Y()))
	return nil
}

func runSign(args []string, stdout, stderr io.Writer) error {
	var c common
	fs := newFlagSet("sign", stderr, &c)
	key := fs.String("key", "", "private scalar d (decimal or 0x-hex)")
	msg := fs.String("msg", "", "message to sign")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	logger := newLogger(c.verbose, stderr)
	defer logger.Sync()

	if *key == "" {
		return fmt.Errorf("-key is required")
	}
	scheme, err := c.scheme()
	if err != nil {
		return err
	}
	d, err := config.ParseInt(*key)
	if err != nil {
		return err
	}
	priv, err := ecdsa.NewPrivateKey(scheme.Curve(), d)
	if err != nil {
		return err
	}

	sig, err := scheme.Sign([]byte(*msg), priv)
	if err != nil {
		return err
	}
	logger.Debug("signed message",
		zap.String("curve", scheme.Curve().Name()),
		zap.String("hash", scheme.Hasher().Name()),
		zap.Int("bytes", len(*msg)),
	)

	fmt.Fprintf(stdout, "r: %s\n", hexInt(sig.R))
	fmt.Fprintf(stdout, "s: %s\n", hexInt(sig.S))
	return nil
}

func runVerify(args []string, stdout, stderr io.Writer) error {
	var c common
	fs := newFlagSet("verify", stderr, &c)
	pubFlag := fs.String("pub", "", "public key x,y")
	rFlag := fs.String("r", "", "signature r")
	sFlag := fs.String("s", "", "signature s")
	msg := fs.String("msg", "", "signed message")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	logger := newLogger(c.verbose, stderr)
	defer logger.Sync()

	scheme, err := c.scheme()
	if err != nil {
		return err
	}
	x, y, err := parsePoint(*pubFlag)
	if err != nil {
		return err
	}
	pub, err := ecdsa.NewPublicKey(scheme.Curve(), x, y)
	if err != nil {
		return err
	}
	r, err := config.ParseInt(*rFlag)
	if err != nil {
		return err
	}
	s, err := config.ParseInt(*sFlag)
	if err != nil {
		return err
	}

	if err := scheme.CheckSignature([]byte(*msg), &ecdsa.Signature{R: r, S: s}, pub); err != nil {
		logger.Info("signature rejected", zap.Error(err))
		fmt.Fprintln(stdout, "invalid")
		return err
	}
	fmt.Fprintln(stdout, "valid")
	return nil
}

func runAudit(args []string, stdout, stderr io.Writer) error {
	var c common
	fs := newFlagSet("audit", stderr, &c)
	recordsFile := fs.String("records", "", "YAML file with signature records")
	pubFlag := fs.String("pub", "", "public key x,y used to confirm candidates")
	knownA := fs.Int("known-a", 0, "known affine coefficient a (k2 = a*k1 + b)")
	knownB := fs.Int("known-b", 0, "known affine offset b (k2 = a*k1 + b)")
	aRange := fs.String("a-range", "", "brute-force range for a (min,max)")
	bRange := fs.String("b-range", "", "brute-force range for b (min,max)")
	maxPairs := fs.Int("max-pairs", 100, "maximum record pairs to test in brute-force")
	workers := fs.Int("workers", 0, "parallel workers (0 = number of CPUs)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	logger := newLogger(c.verbose, stderr)
	defer logger.Sync()

	if *recordsFile == "" {
		return fmt.Errorf("-records is required")
	}
	scheme, err := c.scheme()
	if err != nil {
		return err
	}
	records, err := config.LoadRecords(*recordsFile, scheme)
	if err != nil {
		return err
	}

	var pub *ecdsa.PublicKey
	if *pubFlag != "" {
		x, y, err := parsePoint(*pubFlag)
		if err != nil {
			return err
		}
		if pub, err = ecdsa.NewPublicKey(scheme.Curve(), x, y); err != nil {
			return err
		}
	}

	var result *audit.Result
	if *knownA != 0 || *knownB != 0 {
		a, b := big.NewInt(int64(*knownA)), big.NewInt(int64(*knownB))
		search := audit.NewSmartSearch(scheme.Curve()).
			WithLogger(logger).
			WithPatternConfig(audit.PatternConfig{
				CustomPatterns: []audit.Pattern{{A: a, B: b, Name: fmt.Sprintf("known_a%d_b%d", *knownA, *knownB)}},
			}).
			WithRangeConfig(audit.RangeConfig{ARange: [2]int{*knownA, *knownA}, BRange: [2]int{*knownB, *knownB}, MaxPairs: *maxPairs, NumWorkers: *workers})
		result = search.Search(context.Background(), records, pub)
	} else {
		search := audit.NewSmartSearch(scheme.Curve()).WithLogger(logger)
		if *aRange != "" || *bRange != "" {
			cfg := audit.DefaultRangeConfig()
			if *aRange != "" {
				if cfg.ARange, err = parseRange(*aRange); err != nil {
					return err
				}
			}
			if *bRange != "" {
				if cfg.BRange, err = parseRange(*bRange); err != nil {
					return err
				}
			}
			cfg.MaxPairs, cfg.NumWorkers = *maxPairs, *workers
			search = search.WithRangeConfig(cfg)
		}
		result = search.Search(context.Background(), records, pub)
	}

	if result == nil {
		fmt.Fprintln(stdout, "no key recovered")
		return fmt.Errorf("no affine nonce relationship found in %d records", len(records))
	}

	fmt.Fprintf(stdout, "private key:  %s\n", hexInt(result.PrivateKey))
	fmt.Fprintf(stdout, "relationship: k2 = %s*k1 + %s\n", result.Relationship.A, result.Relationship.B)
	fmt.Fprintf(stdout, "record pair:  (%d, %d)\n", result.RecordPair[0], result.RecordPair[1])
	fmt.Fprintf(stdout, "pattern:      %s\n", result.Pattern)
	fmt.Fprintf(stdout, "verified:     %t\n", result.Verified)
	return nil
}
