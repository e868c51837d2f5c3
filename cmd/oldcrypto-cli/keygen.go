package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	oldcrypto "github.com/BackendStack21/old-crypto-go"
	"github.com/BackendStack21/old-crypto-go/ciphers/solitaire"
	"github.com/BackendStack21/old-crypto-go/utils"
)

var keygenKinds = []string{"alphabet", "wheel", "deck", "digits", "indicator", "personal"}

func (a *app) newKeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate random or passphrase derived key material",
		Long: `Generate key material for the catalog ciphers.

Kinds:
  alphabet   a mixed alphabet (--alphabet, default A-Z)
  wheel      a Chaocipher wheel, a mixed A-Z
  deck       a Solitaire deck, the cards 1..54
  digits     --length random digits, e.g. an additive key
  indicator  a five digit VIC indicator
  personal   two distinct digits, a VIC personal number

alphabet, wheel and deck accept --passphrase to derive the material
deterministically with SHAKE256.`,
		Args: cobra.NoArgs,
		RunE: a.runKeygen,
	}
	f := cmd.Flags()
	f.String("kind", "alphabet", "kind of material: "+strings.Join(keygenKinds, ", "))
	f.String("passphrase", "", "derive instead of drawing at random")
	f.String("alphabet", utils.Alphabet, "symbols to mix for --kind alphabet")
	f.Int("length", 5, "number of digits for --kind digits")
	return cmd
}

func (a *app) runKeygen(cmd *cobra.Command, args []string) error {
	kind := a.v.GetString("kind")
	pass := a.v.GetString("passphrase")
	if err := utils.CheckLength(len(pass), utils.MaxKeyLength); err != nil {
		return fmt.Errorf("passphrase: %w", err)
	}

	var (
		out string
		err error
	)
	switch kind {
	case "alphabet", "wheel":
		alphabet := utils.Alphabet
		if kind == "alphabet" {
			alphabet = a.v.GetString("alphabet")
		}
		if alphabet == "" || !utils.Unique(alphabet) {
			return fmt.Errorf("%w: alphabet %q must be unique symbols", oldcrypto.ErrInvalidConfiguration, alphabet)
		}
		if pass != "" {
			out = utils.DeriveAlphabet(pass, alphabet)
		} else {
			out, err = utils.RandomPermutation(alphabet)
		}
	case "deck":
		var deck []int
		if pass != "" {
			deck = utils.DeriveDeck(pass, solitaire.DeckSize)
		} else {
			deck, err = utils.RandomDeck(solitaire.DeckSize)
		}
		out = joinInts(deck)
	case "digits", "indicator", "personal":
		if pass != "" {
			return fmt.Errorf("%w: --passphrase does not apply to %s", oldcrypto.ErrInvalidConfiguration, kind)
		}
		out, err = randomDigits(kind, a.v.GetInt("length"))
	default:
		return fmt.Errorf("%w: unknown kind %q (want one of %s)", oldcrypto.ErrInvalidConfiguration, kind, strings.Join(keygenKinds, ", "))
	}
	if err != nil {
		return err
	}

	a.log.Debug("key material generated", "kind", kind, "derived", pass != "", "fp", utils.Fingerprint([]byte(out)))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func randomDigits(kind string, n int) (string, error) {
	switch kind {
	case "indicator":
		return utils.RandomDigits(5)
	case "personal":
		perm, err := utils.RandomPermutation(utils.Digits)
		if err != nil {
			return "", err
		}
		return perm[:2], nil
	}
	if err := utils.CheckPositive(n, "length"); err != nil {
		return "", fmt.Errorf("%w: %v", oldcrypto.ErrInvalidConfiguration, err)
	}
	if err := utils.CheckLength(n, utils.MaxKeyLength); err != nil {
		return "", fmt.Errorf("length: %w", err)
	}
	return utils.RandomDigits(n)
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
