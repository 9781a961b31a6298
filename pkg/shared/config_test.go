package shared

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

var configEnvKeys = []string{
	"SYMBOL_NETWORK",
	"NETWORK",
	"SYMBOL_SAMPLE_ADDRESS",
	"SYMBOL_MOSAIC_NONCE",
	"SYMBOL_ENV_FILE",
}

func resetConfigEnv(t *testing.T) {
	t.Helper()
	dotenvLoadOnce = sync.Once{}
	dotenvLoadOnce.Do(func() {})
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	resetConfigEnv(t)

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Network != NetworkTestnet {
		t.Fatalf("expected testnet, got %q", config.Network)
	}
	if config.SampleAddress != DefaultSampleAddress {
		t.Fatalf("unexpected sample address: %s", config.SampleAddress)
	}
	if config.MosaicNonce != 123 {
		t.Fatalf("unexpected nonce: %d", config.MosaicNonce)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	resetConfigEnv(t)
	t.Setenv("NETWORK", "MAINNET")
	t.Setenv("SYMBOL_SAMPLE_ADDRESS", "nasymbollk6fsl7gsemqeawn7vw55zszu2q2q5y")
	t.Setenv("SYMBOL_MOSAIC_NONCE", "7")

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Network != NetworkMainnet {
		t.Fatalf("expected mainnet, got %q", config.Network)
	}
	if config.SampleAddress != "NASYMBOLLK6FSL7GSEMQEAWN7VW55ZSZU2Q2Q5Y" {
		t.Fatalf("expected upper-cased address, got %s", config.SampleAddress)
	}
	if config.MosaicNonce != 7 {
		t.Fatalf("unexpected nonce: %d", config.MosaicNonce)
	}
}

func TestConfigFromEnvSymbolNetworkWins(t *testing.T) {
	resetConfigEnv(t)
	t.Setenv("SYMBOL_NETWORK", "testnet")
	t.Setenv("NETWORK", "mainnet")

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Network != NetworkTestnet {
		t.Fatalf("expected testnet, got %q", config.Network)
	}
}

func TestConfigFromEnvInvalidValues(t *testing.T) {
	resetConfigEnv(t)
	t.Setenv("SYMBOL_NETWORK", "privatenet")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected error for unsupported network")
	}

	resetConfigEnv(t)
	t.Setenv("SYMBOL_MOSAIC_NONCE", "4294967296")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected error for nonce overflowing uint32")
	}

	resetConfigEnv(t)
	t.Setenv("SYMBOL_MOSAIC_NONCE", "abc")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected error for non-numeric nonce")
	}
}

func TestSampleConfigFromEnvIgnoresNetwork(t *testing.T) {
	resetConfigEnv(t)
	t.Setenv("SYMBOL_NETWORK", "privatenet")
	t.Setenv("SYMBOL_MOSAIC_NONCE", "5")

	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected ConfigFromEnv to reject the network")
	}

	sample, err := SampleConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sample.SampleAddress != DefaultSampleAddress || sample.MosaicNonce != 5 {
		t.Fatalf("unexpected sample config: %+v", sample)
	}
}

func TestDotEnvExplicitFile(t *testing.T) {
	resetConfigEnv(t)
	os.Unsetenv("SYMBOL_MOSAIC_NONCE")

	envPath := filepath.Join(t.TempDir(), "custom.env")
	if err := os.WriteFile(envPath, []byte("SYMBOL_MOSAIC_NONCE=77\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	t.Setenv("SYMBOL_ENV_FILE", envPath)
	dotenvLoadOnce = sync.Once{}

	sample, err := SampleConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sample.MosaicNonce != 77 {
		t.Fatalf("expected nonce from explicit .env file, got %d", sample.MosaicNonce)
	}
}

func TestDotEnvDisabledSkipsWorkingDirectory(t *testing.T) {
	resetConfigEnv(t)
	os.Unsetenv("SYMBOL_MOSAIC_NONCE")

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SYMBOL_MOSAIC_NONCE=99\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	t.Setenv("SYMBOL_ENV_FILE", DotEnvDisabled)
	dotenvLoadOnce = sync.Once{}

	sample, err := SampleConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sample.MosaicNonce != DefaultMosaicNonce {
		t.Fatalf("expected default nonce with .env disabled, got %d", sample.MosaicNonce)
	}
}

func TestFindDotEnvWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	envPath := filepath.Join(root, ".env")
	if err := os.WriteFile(envPath, []byte("SYMBOL_NETWORK=mainnet\n"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	found, ok := findDotEnv(nested)
	if !ok {
		t.Fatal("expected .env to be found")
	}
	if found != envPath {
		t.Fatalf("expected %s, got %s", envPath, found)
	}
}

func TestFirstNonEmptyEnv(t *testing.T) {
	t.Setenv("_TEST_FIRST_A", "")
	t.Setenv("_TEST_FIRST_B", " hello ")

	result := firstNonEmptyEnv("_TEST_FIRST_A", "_TEST_FIRST_B")
	if result != "hello" {
		t.Fatalf("expected 'hello', got %q", result)
	}
}
