// Package oldcrypto implements classical paper-and-pencil ciphers.
//
// Every cipher (substitution, transposition or composite) satisfies the
// Block contract so that ciphers can be selected by name and chained into
// super-encipherment pipelines such as ADFGVX, Nihilist and VIC.
//
// WARNING: these algorithms are historical curiosities. All of them are
// trivially broken by modern cryptanalysis. DO NOT use them to protect data.
package oldcrypto

// Version of the old-crypto Go implementation.
const Version = "0.9.0"

// API summary:
//
// Ciphers (ciphers/...):
//   - caesar.New(shift, opts...)              - shift cipher
//   - wheatstone.New(start, pkey, ckey)       - Wheatstone cryptograph
//   - playfair.New(key, opts...)              - digram cipher
//   - chaocipher.New(pkey, ckey)              - stateful two-wheel cipher
//   - square.New(key, coords, opts...)        - Polybius square
//   - straddling.New(key, escapes, opts...)   - straddling checkerboard
//   - transposition.New(key) / NewDisrupted   - columnar transposition
//   - additive.New(digits)                    - non-carrying additive key
//   - solitaire.NewWithPassphrase(p)          - Schneier's Solitaire
//
// Composites:
//   - adfgvx.New(squareKey, tpKey, opts...)
//   - nihilist.New(boardKey, tpKey, escapes, opts...)
//   - vic.New(material, opts...)
//
// Selection by name:
//   - core.New(core.Params{Cipher: "playfair", Key: "MONARCHY"})
//   - core.List() - catalog of registered ciphers
