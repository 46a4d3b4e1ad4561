// Package audit checks ECDSA signatures for nonce misuse. Two signatures
// whose ephemeral scalars satisfy k₂ = a·k₁ + b for known a and b leak the
// private key; reusing a nonce outright is the case a = 1, b = 0.
//
// The recovery follows "Breaking ECDSA with Two Affinely Related Nonces"
// (arXiv:2504.13737) and works over any curve from the curve package.
//
// # Quick Start
//
//	scheme := ecdsa.NewScheme(curve.Secp256k1())
//
//	records := []audit.Record{
//	    audit.RecordFromSignature(scheme, msg1, sig1),
//	    audit.RecordFromSignature(scheme, msg2, sig2),
//	}
//
//	result := audit.NewSmartSearch(scheme.Curve()).Search(ctx, records, pub)
//	if result != nil {
//	    fmt.Printf("key leaked via %s\n", result.Pattern)
//	}
//
// # Customization
//
//	search := audit.NewSmartSearch(c).
//	    WithRangeConfig(audit.RangeConfig{
//	        ARange:     [2]int{1, 10},
//	        BRange:     [2]int{-50000, 50000},
//	        MaxPairs:   100,
//	        NumWorkers: 16,
//	    }).
//	    WithPatternConfig(audit.PatternConfig{
//	        CustomPatterns: []audit.Pattern{
//	            {A: big.NewInt(1), B: big.NewInt(12345), Name: "custom_step", Priority: 1},
//	        },
//	        IncludeCommonPatterns: true,
//	    }).
//	    WithLogger(logger)
//
// Implement Strategy to plug in a different search.
package audit
