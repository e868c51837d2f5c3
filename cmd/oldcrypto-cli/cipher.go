package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/core"
	"github.com/BackendStack21/old-crypto-go/pipeline"
	"github.com/BackendStack21/old-crypto-go/recipe"
	"github.com/BackendStack21/old-crypto-go/utils"
)

// traceable is satisfied by pipelines and by the composite ciphers that
// embed one.
type traceable interface {
	oldcrypto.Block
	Stages() []pipeline.Stage
	Trace(src []byte) ([][]byte, error)
	TraceDecrypt(src []byte) ([][]byte, error)
	WithLogger(l *slog.Logger) *pipeline.Pipeline
}

// addCipherFlags registers the options of every catalog cipher.
func addCipherFlags(f *pflag.FlagSet) {
	f.StringP("cipher", "c", "", "cipher to use (see 'list')")
	f.String("profile", "", "named parameter set from the config file")
	f.StringP("key", "k", "", "primary key or keyword")
	f.String("key2", "", "secondary key (second wheel, transposition key)")
	f.String("passphrase", "", "derive the chaocipher wheels from a passphrase")
	f.Int("shift", 0, "caesar shift")
	f.String("start", "", "wheatstone start letter")
	f.String("alphabet", "", "replace the default alphabet")
	f.Bool("pass-through", false, "copy symbols outside the alphabet unchanged")
	f.String("filler", "", "playfair filler letter")
	f.String("alt-filler", "", "playfair filler used when the filler is doubled")
	f.Bool("no-conflate", false, "keep J distinct from I")
	f.String("coords", "", "polybius coordinate symbols, e.g. 12345 or ADFGVX")
	f.String("escapes", "", "checkerboard escape digits")
	f.String("frequent", "", "eight letters given single digit codes")
	f.String("additive-key", "", "nihilist additive digits")
	f.String("personal", "", "VIC personal number")
	f.String("indicator", "", "VIC message indicator")
	f.String("phrase", "", "VIC phrase, at least twenty letters")
	f.String("msgno", "", "VIC message number")
	f.Bool("disrupted", false, "VIC disrupted second transposition")
	f.Bool("adfgx", false, "ADFGX variant of ADFGVX")
}

// params assembles the cipher parameters: the selected profile first,
// then every flag, environment variable or config key that is set.
func (a *app) params() (core.Params, error) {
	var p core.Params
	if name := a.v.GetString("profile"); name != "" {
		key := "profiles." + name
		if !a.v.IsSet(key) {
			return p, fmt.Errorf("%w: unknown profile %q", oldcrypto.ErrInvalidConfiguration, name)
		}
		if err := a.v.UnmarshalKey(key, &p); err != nil {
			return p, fmt.Errorf("profile %s: %w", name, err)
		}
	}

	str := func(key string, dst *string) {
		if a.v.IsSet(key) {
			*dst = a.v.GetString(key)
		}
	}
	flag := func(key string, dst *bool) {
		if a.v.IsSet(key) {
			*dst = a.v.GetBool(key)
		}
	}
	str("cipher", &p.Cipher)
	str("key", &p.Key)
	str("key2", &p.Key2)
	str("passphrase", &p.Passphrase)
	if a.v.IsSet("shift") {
		p.Shift = a.v.GetInt("shift")
	}
	str("start", &p.Start)
	str("alphabet", &p.Alphabet)
	flag("pass-through", &p.PassThrough)
	str("filler", &p.Filler)
	str("alt-filler", &p.AltFiller)
	flag("no-conflate", &p.NoConflate)
	str("coords", &p.Coords)
	str("escapes", &p.Escapes)
	str("frequent", &p.Frequent)
	str("additive-key", &p.AdditiveKey)
	str("personal", &p.Personal)
	str("indicator", &p.Indicator)
	str("phrase", &p.Phrase)
	str("msgno", &p.MessageNumber)
	flag("disrupted", &p.Disrupted)
	flag("adfgx", &p.ADFGX)

	for _, s := range []string{p.Key, p.Key2, p.Passphrase, p.Alphabet, p.Phrase, p.AdditiveKey} {
		if err := utils.CheckLength(len(s), utils.MaxKeyLength); err != nil {
			return p, fmt.Errorf("%w: key material: %v", oldcrypto.ErrInvalidKey, err)
		}
	}
	return p.Normalized(), nil
}

// block builds the cipher selected by --recipe or by the cipher options.
// Cipher defaults from the config file or environment do not conflict with
// --recipe; only options given on the command line do.
func (a *app) block(cmd *cobra.Command) (traceable, error) {
	if name := a.v.GetString("recipe"); name != "" {
		if cmd.Flags().Changed("cipher") || cmd.Flags().Changed("profile") {
			return nil, fmt.Errorf("%w: --recipe can not be combined with --cipher or --profile", oldcrypto.ErrInvalidConfiguration)
		}
		store := recipe.NewStore(a.recipesDir())
		if err := store.Load(); err != nil {
			return nil, err
		}
		r, ok := store.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: no recipe named %q in %s", oldcrypto.ErrInvalidConfiguration, name, store.Dir())
		}
		a.log.Debug("recipe selected", "name", r.Name, "id", r.ID, "stages", len(r.Stages))
		return r.Build()
	}

	p, err := a.params()
	if err != nil {
		return nil, err
	}
	a.log.Debug("cipher selected", keyAttrs(p)...)
	b, err := core.New(p)
	if err != nil {
		return nil, err
	}
	if t, ok := b.(traceable); ok {
		return t, nil
	}
	return pipeline.New(p.Cipher, pipeline.Stage{Name: p.Cipher, Block: b})
}

// keyAttrs describes p for logging. Key material appears only as
// fingerprints.
func keyAttrs(p core.Params) []any {
	attrs := []any{"cipher", p.Cipher}
	for _, kv := range []struct{ name, val string }{
		{"key", p.Key},
		{"key2", p.Key2},
		{"passphrase", p.Passphrase},
		{"additive_key", p.AdditiveKey},
		{"phrase", p.Phrase},
	} {
		if kv.val != "" {
			attrs = append(attrs, kv.name+"_fp", utils.Fingerprint([]byte(kv.val)))
		}
	}
	return attrs
}

func (a *app) newCipherCmd(encrypt bool) *cobra.Command {
	use, short := "encrypt", "Encrypt text"
	if !encrypt {
		use, short = "decrypt", "Decrypt text"
	}
	cmd := &cobra.Command{
		Use:   use + " [TEXT...]",
		Short: short,
		Long: short + ` with a catalog cipher or a saved recipe.

Text is taken from the arguments, from --input, or from stdin. Unless --raw
is given it is uppercased and stripped of everything but letters and digits.`,
		Example: fmt.Sprintf(`  %[1]s %[2]s --cipher caesar --shift 3 "attack at dawn"
  %[1]s %[2]s --cipher adfgvx --key PORTABLE --key2 SUBWAY --trace ATTACKATDAWN
  %[1]s %[2]s --recipe field-cipher --input message.txt --block`, appName, use),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCipher(cmd, args, encrypt)
		},
	}

	f := cmd.Flags()
	addCipherFlags(f)
	f.String("recipe", "", "use a saved recipe instead of a single cipher")
	f.StringP("input", "i", "", "read text from file ('-' for stdin)")
	f.StringP("output", "o", "", "write the result to file (mode 0600)")
	f.Bool("raw", false, "do not normalise the text")
	f.Bool("block", false, "print the result in groups of five")
	f.Bool("trace", false, "print the output of every stage")
	return cmd
}

func (a *app) runCipher(cmd *cobra.Command, args []string, encrypt bool) error {
	b, err := a.block(cmd)
	if err != nil {
		return err
	}
	b.WithLogger(a.log)

	text, err := a.readText(cmd, args)
	if err != nil {
		return err
	}
	if len(text) == 0 {
		return fmt.Errorf("%w: no text to process", oldcrypto.ErrInvalidConfiguration)
	}

	run, trace := b.Encrypt, b.Trace
	if !encrypt {
		run, trace = b.Decrypt, b.TraceDecrypt
	}

	if a.v.GetBool("trace") {
		steps, err := trace(text)
		if err != nil {
			return err
		}
		a.printTrace(cmd.OutOrStdout(), b.Stages(), steps, encrypt)
		return nil
	}

	out, err := run(text)
	if err != nil {
		return err
	}
	return a.writeResult(cmd.OutOrStdout(), a.format(out))
}

func (a *app) readText(cmd *cobra.Command, args []string) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	switch in := a.v.GetString("input"); {
	case len(args) > 0:
		raw = []byte(strings.Join(args, " "))
	case in == "" || in == "-":
		raw, err = utils.ReadLimited(cmd.InOrStdin(), utils.MaxMessageSize)
	default:
		var f *os.File
		f, err = os.Open(in)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		raw, err = utils.ReadLimited(f, utils.MaxMessageSize)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if err := utils.CheckLength(len(raw), utils.MaxMessageSize); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if a.v.GetBool("raw") {
		return []byte(strings.TrimRight(string(raw), "\r\n")), nil
	}
	return []byte(utils.Normalize(string(raw), utils.Base36)), nil
}

func (a *app) format(out []byte) string {
	if a.v.GetBool("block") {
		return utils.OutputAsBlock(string(out))
	}
	return string(out)
}

func (a *app) printTrace(w io.Writer, stages []pipeline.Stage, steps [][]byte, encrypt bool) {
	for i, step := range steps {
		idx := i
		if !encrypt {
			idx = len(stages) - 1 - i
		}
		fmt.Fprintf(w, "%d %-16s %s\n", idx, stages[idx].Name, a.format(step))
	}
}

// writeResult prints s or, with --output, writes it owner-only.
func (a *app) writeResult(w io.Writer, s string) error {
	name := a.v.GetString("output")
	if name == "" {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, s); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	// Enforce the mode on files that already existed.
	if err := os.Chmod(name, 0o600); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}
	a.log.Debug("result written", "path", name, "bytes", len(s))
	return nil
}
