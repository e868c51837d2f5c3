package core

import (
	"strings"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/adfgvx"
	"github.com/BackendStack21/old-crypto-go/ciphers/additive"
	"github.com/BackendStack21/old-crypto-go/ciphers/caesar"
	"github.com/BackendStack21/old-crypto-go/ciphers/chaocipher"
	"github.com/BackendStack21/old-crypto-go/ciphers/null"
	"github.com/BackendStack21/old-crypto-go/ciphers/playfair"
	"github.com/BackendStack21/old-crypto-go/ciphers/solitaire"
	"github.com/BackendStack21/old-crypto-go/ciphers/square"
	"github.com/BackendStack21/old-crypto-go/ciphers/straddling"
	"github.com/BackendStack21/old-crypto-go/ciphers/transposition"
	"github.com/BackendStack21/old-crypto-go/ciphers/wheatstone"
	"github.com/BackendStack21/old-crypto-go/nihilist"
	"github.com/BackendStack21/old-crypto-go/vic"
)

// Defaults applied by the catalog builders when an option is left empty.
const (
	DefaultStart   = 'M'
	DefaultEscapes = "89"
)

func init() {
	for _, e := range catalog() {
		MustRegister(e)
	}
}

func catalog() []Entry {
	return []Entry{
		{
			Name:        "null",
			Sample:      Params{Cipher: "null"},
			SampleText:  "HELLOWORLD",
			Kind:        oldcrypto.KindIdentity,
			Description: "identity transform, for testing pipelines",
			Build: func(Params) (oldcrypto.Block, error) {
				return null.New(), nil
			},
		},
		{
			Name:        "caesar",
			Sample:      Params{Cipher: "caesar", Shift: 3},
			SampleText:  "ATTACKATDAWN",
			Kind:        oldcrypto.KindSubstitution,
			Description: "shift every letter by a fixed amount",
			Fields:      []string{FieldShift, FieldAlphabet, FieldPassThrough},
			Build: func(p Params) (oldcrypto.Block, error) {
				var opts []caesar.Option
				if p.Alphabet != "" {
					opts = append(opts, caesar.WithAlphabet(p.Alphabet))
				}
				if p.PassThrough {
					opts = append(opts, caesar.WithPassThrough(true))
				}
				return caesar.New(p.Shift, opts...)
			},
		},
		{
			Name:        "wheatstone",
			Sample:      Params{Cipher: "wheatstone", Key: "CIPHER", Key2: "MACHINE", Start: "M"},
			SampleText:  "BEWAREOFTHEDOG",
			Kind:        oldcrypto.KindSubstitution,
			Description: "Wheatstone cryptograph, two concentric keyed wheels",
			Fields:      []string{FieldKey, FieldKey2, FieldStart},
			Build: func(p Params) (oldcrypto.Block, error) {
				start, err := single("wheatstone", FieldStart, p.Start, DefaultStart)
				if err != nil {
					return nil, err
				}
				return wheatstone.New(start, p.Key, p.Key2)
			},
		},
		{
			Name:        "playfair",
			Sample:      Params{Cipher: "playfair", Key: "MONARCHY"},
			SampleText:  "HIDEGOLD",
			Kind:        oldcrypto.KindPolygraphic,
			Description: "Playfair digram substitution on a keyed 5x5 square",
			Fields:      []string{FieldKey, FieldFiller, FieldAltFiller, FieldNoConflate},
			Build: func(p Params) (oldcrypto.Block, error) {
				filler, err := single("playfair", FieldFiller, p.Filler, playfair.DefaultFiller)
				if err != nil {
					return nil, err
				}
				alt, err := single("playfair", FieldAltFiller, p.AltFiller, playfair.DefaultAltFiller)
				if err != nil {
					return nil, err
				}
				return playfair.New(p.Key,
					playfair.WithFiller(filler),
					playfair.WithAltFiller(alt),
					playfair.WithConflation(!p.NoConflate),
				)
			},
		},
		{
			Name:        "chaocipher",
			Sample:      Params{Cipher: "chaocipher", Key: "PTLNBQDEOYSFAVZKGJRIHWXUMC", Key2: "HXUCZVAMDSLKPEFJRIGTWOBNYQ"},
			SampleText:  "WELLDONEISBETTERTHANWELLSAID",
			Kind:        oldcrypto.KindSubstitution,
			Description: "Byrne's Chaocipher, self-permuting wheels (stateful)",
			Fields:      []string{FieldKey, FieldKey2, FieldPassphrase},
			Build: func(p Params) (oldcrypto.Block, error) {
				if p.Passphrase != "" {
					if p.Key != "" || p.Key2 != "" {
						return nil, oldcrypto.InvalidConfigf("chaocipher", "passphrase replaces both wheel keys")
					}
					return chaocipher.NewWithPassphrase(p.Passphrase)
				}
				return chaocipher.New(strings.ToUpper(p.Key), strings.ToUpper(p.Key2))
			},
		},
		{
			Name:        "square",
			Sample:      Params{Cipher: "square", Key: "PORTABLE"},
			SampleText:  "ATTACKATDAWN",
			Kind:        oldcrypto.KindSubstitution,
			Description: "Polybius square, each symbol becomes its coordinates",
			Fields:      []string{FieldKey, FieldCoords, FieldAlphabet, FieldNoConflate},
			Build: func(p Params) (oldcrypto.Block, error) {
				coords := p.Coords
				if coords == "" {
					coords = square.Digits5
				}
				var opts []square.Option
				if p.Alphabet != "" {
					opts = append(opts, square.WithAlphabet(p.Alphabet))
				}
				if p.NoConflate {
					opts = append(opts, square.WithConflation(false))
				}
				return square.New(p.Key, coords, opts...)
			},
		},
		{
			Name:        "straddling",
			Sample:      Params{Cipher: "straddling", Key: "ARABESQUE", Escapes: "89"},
			SampleText:  "ATTACKAT2AM",
			Kind:        oldcrypto.KindCheckerboard,
			Description: "straddling checkerboard, letters to one or two digits",
			Fields:      []string{FieldKey, FieldEscapes, FieldFrequent, FieldAlphabet},
			Build: func(p Params) (oldcrypto.Block, error) {
				var opts []straddling.Option
				if p.Frequent != "" {
					opts = append(opts, straddling.WithFrequentLetters(p.Frequent))
				}
				if p.Alphabet != "" {
					opts = append(opts, straddling.WithAlphabet(p.Alphabet))
				}
				return straddling.New(p.Key, escapes(p), opts...)
			},
		},
		{
			Name:        "transposition",
			Sample:      Params{Cipher: "transposition", Key: "SUBWAY"},
			SampleText:  "ATTACKATDAWN",
			Kind:        oldcrypto.KindTransposition,
			Description: "columnar transposition",
			Fields:      []string{FieldKey},
			Build: func(p Params) (oldcrypto.Block, error) {
				return transposition.New(p.Key)
			},
		},
		{
			Name:        "disrupted",
			Sample:      Params{Cipher: "disrupted", Key: "ARABESQUE"},
			SampleText:  "ATTACKATDAWNTHENRETREATTOTHEHILLS",
			Kind:        oldcrypto.KindTransposition,
			Description: "disrupted (triangle) columnar transposition",
			Fields:      []string{FieldKey},
			Build: func(p Params) (oldcrypto.Block, error) {
				return transposition.NewDisrupted(p.Key)
			},
		},
		{
			Name:        "additive",
			Sample:      Params{Cipher: "additive", Key: "741776"},
			SampleText:  "0770808107972297088",
			Kind:        oldcrypto.KindKeystream,
			Description: "non-carrying addition of a repeating digit key",
			Fields:      []string{FieldKey},
			Build: func(p Params) (oldcrypto.Block, error) {
				return additive.New(p.Key)
			},
		},
		{
			Name:        "solitaire",
			Sample:      Params{Cipher: "solitaire", Key: "CRYPTONOMICON"},
			SampleText:  "SOLITAIRE",
			Kind:        oldcrypto.KindKeystream,
			Description: "Schneier's Solitaire card keystream; key is a passphrase",
			Fields:      []string{FieldKey},
			Build: func(p Params) (oldcrypto.Block, error) {
				if p.Key == "" {
					return solitaire.NewUnkeyed(), nil
				}
				for i := 0; i < len(p.Key); i++ {
					if c := p.Key[i] | 0x20; c < 'a' || c > 'z' {
						return nil, oldcrypto.InvalidKeyf("solitaire", "passphrase symbol %q is not a letter", p.Key[i])
					}
				}
				return solitaire.NewWithPassphrase(p.Key), nil
			},
		},
		{
			Name:        "adfgvx",
			Sample:      Params{Cipher: "adfgvx", Key: "PORTABLE", Key2: "SUBWAY"},
			SampleText:  "ATTACKATDAWN",
			Kind:        oldcrypto.KindComposite,
			Description: "ADFGVX: 6x6 square then transposition",
			Fields:      []string{FieldKey, FieldKey2, FieldADFGX, FieldNoConflate},
			Build: func(p Params) (oldcrypto.Block, error) {
				var opts []adfgvx.Option
				if p.ADFGX {
					opts = append(opts, adfgvx.WithADFGX())
				}
				if p.NoConflate {
					if !p.ADFGX {
						return nil, oldcrypto.InvalidConfigf("adfgvx", "%s only applies to the ADFGX variant", FieldNoConflate)
					}
					opts = append(opts, adfgvx.WithoutConflation())
				}
				return adfgvx.New(p.Key, p.Key2, opts...)
			},
		},
		{
			Name:        "adfgx",
			Sample:      Params{Cipher: "adfgx", Key: "PORTABLE", Key2: "SUBWAY"},
			SampleText:  "ATTACKATDAWN",
			Kind:        oldcrypto.KindComposite,
			Description: "ADFGX: 5x5 square then transposition",
			Fields:      []string{FieldKey, FieldKey2, FieldNoConflate},
			Build: func(p Params) (oldcrypto.Block, error) {
				opts := []adfgvx.Option{adfgvx.WithADFGX()}
				if p.NoConflate {
					opts = append(opts, adfgvx.WithoutConflation())
				}
				return adfgvx.New(p.Key, p.Key2, opts...)
			},
		},
		{
			Name:        "nihilist",
			Sample:      Params{Cipher: "nihilist", Key: "ARABESQUE", Key2: "SUBWAY", Escapes: "37"},
			SampleText:  "IFYOUCANREADTHIS",
			Kind:        oldcrypto.KindComposite,
			Description: "Nihilist: checkerboard, optional additive key, transposition",
			Fields:      []string{FieldKey, FieldKey2, FieldEscapes, FieldFrequent, FieldAdditiveKey},
			Build: func(p Params) (oldcrypto.Block, error) {
				var opts []nihilist.Option
				if p.AdditiveKey != "" {
					opts = append(opts, nihilist.WithAdditiveKey(p.AdditiveKey))
				}
				if p.Frequent != "" {
					opts = append(opts, nihilist.WithFrequentLetters(p.Frequent))
				}
				return nihilist.New(p.Key, p.Key2, escapes(p), opts...)
			},
		},
		{
			Name:        "vic",
			Sample:      Params{Cipher: "vic", Personal: "89", Indicator: "741776", Phrase: "IDREAMOFJEANNIEWITHT", MessageNumber: "77651"},
			SampleText:  "CETOOTESTCHIFFREAVECADFGVXETLESCLESMASTODONETSOCIALX",
			Kind:        oldcrypto.KindComposite,
			Description: "simplified VIC: keyed checkerboard and two transpositions",
			Fields:      []string{FieldPersonal, FieldIndicator, FieldPhrase, FieldMessageNumber, FieldDisrupted},
			Build: func(p Params) (oldcrypto.Block, error) {
				var opts []vic.Option
				if p.Disrupted {
					opts = append(opts, vic.WithDisruptedTransposition())
				}
				return vic.New(vic.Material{
					Personal:      p.Personal,
					Indicator:     p.Indicator,
					Phrase:        p.Phrase,
					MessageNumber: p.MessageNumber,
				}, opts...)
			},
		},
	}
}

func escapes(p Params) string {
	if p.Escapes == "" {
		return DefaultEscapes
	}
	return p.Escapes
}
