package main

import (
	"flag"
	"testing"

	"github.com/urfave/cli/v2"
)

func contextWith(t *testing.T, args map[string]string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, name := range []string{"key", "nonce", "info", "aad", "in", "out"} {
		set.String(name, "", "")
	}
	for k, v := range args {
		if err := set.Set(k, v); err != nil {
			t.Fatalf("setting flag %s: %v", k, err)
		}
	}
	return cli.NewContext(nil, set, nil)
}

func TestDecodeKeyParamsValid(t *testing.T) {
	key := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f"
	c := contextWith(t, map[string]string{
		"key":   key,
		"nonce": "000102030405060708090a0b0c0d0e0f",
	})
	params, err := decodeKeyParams(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(params.Key) != 64 {
		t.Fatalf("decoded key length = %d, want 64", len(params.Key))
	}
	if len(params.Nonce) != 16 {
		t.Fatalf("decoded nonce length = %d, want 16", len(params.Nonce))
	}
}

func TestDecodeKeyParamsBadKeyLength(t *testing.T) {
	c := contextWith(t, map[string]string{
		"key":   "aabb",
		"nonce": "000102030405060708090a0b0c0d0e0f",
	})
	if _, err := decodeKeyParams(c); err != errBadKeyLength {
		t.Fatalf("err = %v, want errBadKeyLength", err)
	}
}

func TestDecodeKeyParamsBadNonceLength(t *testing.T) {
	key := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f"
	c := contextWith(t, map[string]string{
		"key":   key,
		"nonce": "aabb",
	})
	if _, err := decodeKeyParams(c); err != errBadNonceLength {
		t.Fatalf("err = %v, want errBadNonceLength", err)
	}
}

func TestDecodeKeyParamsInfoTooLong(t *testing.T) {
	key := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f"
	longInfo := ""
	for i := 0; i < 49; i++ {
		longInfo += "aa"
	}
	c := contextWith(t, map[string]string{
		"key":   key,
		"nonce": "000102030405060708090a0b0c0d0e0f",
		"info":  longInfo,
	})
	if _, err := decodeKeyParams(c); err != errInfoTooLong {
		t.Fatalf("err = %v, want errInfoTooLong", err)
	}
}

func TestDecodeAADEmpty(t *testing.T) {
	c := contextWith(t, map[string]string{})
	aad, err := decodeAAD(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aad != nil {
		t.Fatalf("aad = %v, want nil", aad)
	}
}

func TestMacVariantDefaultsToStandard(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Bool("reduced-mac", false, "")
	c := cli.NewContext(nil, set, nil)
	if got := macVariant(c); got != 0 {
		t.Fatalf("macVariant default = %v, want StandardMAC", got)
	}
}
