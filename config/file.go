package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func parseFile(path string) ([]Option, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	var opts []Option

	sc := bufio.NewScanner(f)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("config: %q line %d: expected key=value", path, lineNo)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		opt, err := parseKV(key, value)
		if err != nil {
			return nil, fmt.Errorf("config: %q line %d: %w", path, lineNo, err)
		}
		if opt != nil {
			opts = append(opts, opt)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("config: reading %q: %w", path, err)
	}

	return opts, nil
}

func parseKV(key, value string) (Option, error) {
	switch key {
	case "volume":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("volume: %w", err)
		}

		return WithVolume(v), nil
	case "max_primal_pivots":
		v, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("max_primal_pivots: %w", err)
		}

		return WithMaxPrimalPivots(v), nil
	case "max_dual_pivots":
		v, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("max_dual_pivots: %w", err)
		}

		return WithMaxDualPivots(v), nil
	case "max_depth":
		v, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("max_depth: %w", err)
		}

		return WithMaxDepth(v), nil
	case "rand_seed":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("rand_seed: %w", err)
		}

		return WithRandSeed(v), nil
	case "log_level":
		return WithLogLevel(value), nil
	default:
		return nil, nil // unknown key: ignored, not an error
	}
}
