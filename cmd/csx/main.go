// Command csx drives the CSX-512 AEAD from the command line: generate a
// key/nonce pair, then encrypt or decrypt a file under them.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/vtdev/csx512/csx"
)

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

func main() {
	app := &cli.App{
		Name:  "csx",
		Usage: "encrypt and decrypt files with the CSX-512 authenticated stream cipher",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
		},
		Commands: []*cli.Command{
			keygenCommand,
			encryptCommand,
			decryptCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "csx:", err)
		os.Exit(1)
	}
}

var keygenCommand = &cli.Command{
	Name:  "keygen",
	Usage: "print a random hex-encoded key and nonce pair",
	Action: func(c *cli.Context) error {
		key := make([]byte, csx.KeySize)
		nonce := make([]byte, csx.NonceSize)
		if _, err := rand.Read(key); err != nil {
			return fmt.Errorf("generating key: %w", err)
		}
		if _, err := rand.Read(nonce); err != nil {
			return fmt.Errorf("generating nonce: %w", err)
		}
		fmt.Printf("key:   %s\n", hex.EncodeToString(key))
		fmt.Printf("nonce: %s\n", hex.EncodeToString(nonce))
		return nil
	},
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "key", Usage: "hex-encoded 64-byte key", Required: true},
		&cli.StringFlag{Name: "nonce", Usage: "hex-encoded 16-byte nonce", Required: true},
		&cli.StringFlag{Name: "info", Usage: "hex-encoded info tweak, at most 48 bytes"},
		&cli.StringFlag{Name: "aad", Usage: "hex-encoded associated data"},
		&cli.StringFlag{Name: "in", Usage: "input file path (defaults to stdin)"},
		&cli.StringFlag{Name: "out", Usage: "output file path (defaults to stdout)"},
		&cli.BoolFlag{Name: "reduced-mac", Usage: "use the reduced-round KMAC-R12 MAC variant"},
	}
}

// decodeKeyParams parses the shared --key/--nonce/--info flags into a
// csx.KeyParams, validating that each decodes to its required length.
func decodeKeyParams(c *cli.Context) (*csx.KeyParams, error) {
	key, err := hex.DecodeString(c.String("key"))
	if err != nil {
		return nil, fmt.Errorf("decoding --key: %w", err)
	}
	if len(key) != csx.KeySize {
		return nil, errBadKeyLength
	}

	nonce, err := hex.DecodeString(c.String("nonce"))
	if err != nil {
		return nil, fmt.Errorf("decoding --nonce: %w", err)
	}
	if len(nonce) != csx.NonceSize {
		return nil, errBadNonceLength
	}

	var info []byte
	if s := c.String("info"); s != "" {
		info, err = hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("decoding --info: %w", err)
		}
		if len(info) > csx.InfoMaxSize {
			return nil, errInfoTooLong
		}
	}

	return &csx.KeyParams{Key: key, Nonce: nonce, Info: info}, nil
}

func decodeAAD(c *cli.Context) ([]byte, error) {
	s := c.String("aad")
	if s == "" {
		return nil, nil
	}
	aad, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding --aad: %w", err)
	}
	return aad, nil
}

func openInput(c *cli.Context) (io.Reader, func() error, error) {
	if path := c.String("in"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
	return os.Stdin, func() error { return nil }, nil
}

func openOutput(c *cli.Context) (io.Writer, func() error, error) {
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
	return os.Stdout, func() error { return nil }, nil
}

func macVariant(c *cli.Context) csx.MACVariant {
	if c.Bool("reduced-mac") {
		return csx.ReducedMAC
	}
	return csx.StandardMAC
}

var encryptCommand = &cli.Command{
	Name:  "encrypt",
	Usage: "encrypt plaintext, appending a 64-byte authentication tag",
	Flags: commonFlags(),
	Action: func(c *cli.Context) error {
		log := newLogger(c.Bool("verbose"))

		params, err := decodeKeyParams(c)
		if err != nil {
			return err
		}
		aad, err := decodeAAD(c)
		if err != nil {
			return err
		}

		in, closeIn, err := openInput(c)
		if err != nil {
			return err
		}
		defer closeIn()
		plaintext, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		var st csx.State
		csx.Initialize(&st, params, true, macVariant(c))
		defer csx.Dispose(&st)
		st.SetAssociated(aad)

		out := make([]byte, len(plaintext)+csx.MACSize)
		st.Transform(out, plaintext, len(plaintext))

		w, closeOut, err := openOutput(c)
		if err != nil {
			return err
		}
		defer closeOut()
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		log.Debug("encrypted", "plaintext_bytes", len(plaintext), "reduced_mac", c.Bool("reduced-mac"))
		return nil
	},
}

var decryptCommand = &cli.Command{
	Name:  "decrypt",
	Usage: "verify a tag and decrypt ciphertext",
	Flags: commonFlags(),
	Action: func(c *cli.Context) error {
		log := newLogger(c.Bool("verbose"))

		params, err := decodeKeyParams(c)
		if err != nil {
			return err
		}
		aad, err := decodeAAD(c)
		if err != nil {
			return err
		}

		in, closeIn, err := openInput(c)
		if err != nil {
			return err
		}
		defer closeIn()
		sealed, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if len(sealed) < csx.MACSize {
			return errShortInput
		}
		length := len(sealed) - csx.MACSize

		var st csx.State
		csx.Initialize(&st, params, false, macVariant(c))
		defer csx.Dispose(&st)
		st.SetAssociated(aad)

		out := make([]byte, length)
		if !st.Transform(out, sealed, length) {
			log.Warn("authentication failed", "ciphertext_bytes", length)
			return errAuthFailed
		}

		w, closeOut, err := openOutput(c)
		if err != nil {
			return err
		}
		defer closeOut()
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		log.Debug("decrypted", "plaintext_bytes", length)
		return nil
	},
}
