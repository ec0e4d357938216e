// Command snrinfo estimates narrowband SNR at one or more target
// frequencies from a power spectrum.
//
// Usage:
//
//	snrinfo [flags] target-frequency ...
//
// The spectrum is read as two whitespace-separated columns per line
// (frequency in Hz, power), from -in or stdin. Lines starting with '#' and
// blank lines are skipped.
//
// Examples:
//
//	snrinfo -in spectrum.txt 10 12 15
//	welch eeg.raw | snrinfo 12
//	snrinfo -in spectrum.txt -band 2 -guard 1 12
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ssvep/measure/snr"
)

func main() {
	in := flag.String("in", "", "spectrum file (default stdin)")
	band := flag.Float64("band", snr.DefaultNeighborBandHz, "neighbor band half-width in Hz")
	guard := flag.Float64("guard", snr.DefaultGuardBandHz, "guard band half-width in Hz")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: snrinfo [flags] target-frequency ...\n\n")
		fmt.Fprintf(os.Stderr, "Estimates narrowband SNR at each target frequency from a power spectrum.\n")
		fmt.Fprintf(os.Stderr, "The spectrum is read as 'frequency power' lines from -in or stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  snrinfo -in spectrum.txt 10 12 15\n")
		fmt.Fprintf(os.Stderr, "  snrinfo -band 2 -guard 1 12 < spectrum.txt\n")
	}
	flag.Parse()

	targets, err := parseTargets(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(targets) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	power, freqs, err := readSpectrum(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	conds := make([]snr.Condition, len(targets))
	for i, targetHz := range targets {
		conds[i] = snr.Condition{TargetHz: targetHz, Power: power, Freqs: freqs}
	}

	outcomes := snr.EstimateAll(conds, snr.WithNeighborBand(*band), snr.WithGuardBand(*guard))

	if !printOutcomes(outcomes) {
		os.Exit(1)
	}
}

func parseTargets(args []string) ([]float64, error) {
	var targets []float64
	for _, arg := range args {
		// Allow comma-separated lists as well as separate arguments.
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid target frequency %q", field)
			}
			targets = append(targets, v)
		}
	}
	return targets, nil
}

func readSpectrum(path string) (power, freqs []float64, err error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: want 'frequency power', got %q", line, text)
		}

		f, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: invalid frequency %q", line, fields[0])
		}
		p, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: invalid power %q", line, fields[1])
		}

		freqs = append(freqs, f)
		power = append(power, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(freqs) == 0 {
		return nil, nil, fmt.Errorf("no spectrum data")
	}
	return power, freqs, nil
}

// printOutcomes renders the result table and reports whether at least one
// target was estimated successfully.
func printOutcomes(outcomes []snr.Outcome) bool {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Target [Hz]\tBin [Hz]\tSNR\tSNR [dB]\tNeighbors\n")
	fmt.Fprintf(tw, "-----------\t--------\t---\t--------\t---------\n")

	anyOK := false
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(tw, "%.3f\t-\t-\t-\t-\n", o.TargetHz)
			fmt.Fprintf(os.Stderr, "warning: target %.3f Hz: %v\n", o.TargetHz, o.Err)
			continue
		}
		anyOK = true
		fmt.Fprintf(tw, "%.3f\t%.3f\t%.4f\t%.2f\t%d\n",
			o.TargetHz,
			o.Result.BinHz,
			o.Result.SNR,
			o.Result.SNR_dB,
			o.Result.NeighborBins,
		)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return false
	}
	return anyOK
}
