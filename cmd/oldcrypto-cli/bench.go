package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/core"
	"github.com/BackendStack21/old-crypto-go/utils"
)

func (a *app) newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every catalog cipher on its sample parameters",
		Args:  cobra.NoArgs,
		RunE:  a.runBench,
	}
	cmd.Flags().IntP("iterations", "n", 10, "runs per cipher")
	cmd.Flags().Int("size", 1024, "approximate message size in bytes")
	cmd.Flags().StringSlice("only", nil, "restrict to these ciphers")
	return cmd
}

func (a *app) runBench(cmd *cobra.Command, args []string) error {
	iterations := a.v.GetInt("iterations")
	if iterations < 1 {
		iterations = 1
	}
	size := a.v.GetInt("size")
	if err := utils.CheckLength(size, utils.MaxMessageSize); err != nil {
		return fmt.Errorf("size: %w", err)
	}
	only := map[string]bool{}
	for _, name := range a.v.GetStringSlice("only") {
		only[name] = true
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "oldcrypto Benchmark Results\n")
	fmt.Fprintf(w, "===========================\n")
	fmt.Fprintf(w, "Iterations: %d\n\n", iterations)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CIPHER\tBYTES\tENCRYPT (avg)\tDECRYPT (avg)")
	for _, e := range core.List() {
		if len(only) > 0 && !only[e.Name] {
			continue
		}
		msg := sampleMessage(e.SampleText, size)
		enc, dec, err := benchEntry(e, msg, iterations)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		a.log.Debug("benchmarked", "cipher", e.Name, "bytes", len(msg), "encrypt", enc, "decrypt", dec)
		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\n", e.Name, len(msg), enc, dec)
	}
	return tw.Flush()
}

// sampleMessage repeats text up to roughly size bytes.
func sampleMessage(text string, size int) []byte {
	n := size / len(text)
	if n < 1 {
		n = 1
	}
	return []byte(strings.Repeat(text, n))
}

func benchEntry(e core.Entry, msg []byte, iterations int) (enc, dec time.Duration, err error) {
	b, err := core.New(e.Sample)
	if err != nil {
		return 0, 0, err
	}
	reset := func() {
		if r, ok := b.(oldcrypto.Resetter); ok {
			r.Reset()
		}
	}

	var ct []byte
	for i := 0; i < iterations; i++ {
		reset()
		start := time.Now()
		ct, err = b.Encrypt(msg)
		enc += time.Since(start)
		if err != nil {
			return 0, 0, err
		}
	}
	for i := 0; i < iterations; i++ {
		reset()
		start := time.Now()
		_, err = b.Decrypt(ct)
		dec += time.Since(start)
		if err != nil {
			return 0, 0, err
		}
	}
	return enc / time.Duration(iterations), dec / time.Duration(iterations), nil
}
