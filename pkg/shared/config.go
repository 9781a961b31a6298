package shared

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	DefaultSampleAddress = "TASYMBOLLK6FSL7GSEMQEAWN7VW55ZSZU2Q2Q5Y"
	DefaultMosaicNonce   = uint32(123)

	DotEnvDisabled = "none"
)

type Config struct {
	Network string
	SampleConfig
}

// SampleConfig holds the inputs of the mosaic descriptor example. It does not
// depend on the selected network.
type SampleConfig struct {
	SampleAddress string
	MosaicNonce   uint32
}

var dotenvLoadOnce sync.Once

// ConfigFromEnv reads the descriptor tooling configuration from the process
// environment, after loading the nearest .env file if one exists. Variables
// already present in the environment win over the file.
func ConfigFromEnv() (Config, error) {
	loadDotEnvIfPresent()

	network, err := NormalizeNetwork(firstNonEmptyEnv("SYMBOL_NETWORK", "NETWORK"))
	if err != nil {
		return Config{}, err
	}

	sample, err := SampleConfigFromEnv()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Network:      network,
		SampleConfig: sample,
	}, nil
}

// SampleConfigFromEnv reads only SYMBOL_SAMPLE_ADDRESS and SYMBOL_MOSAIC_NONCE,
// so an invalid network setting does not affect it.
func SampleConfigFromEnv() (SampleConfig, error) {
	loadDotEnvIfPresent()

	sampleAddress := firstNonEmptyEnv("SYMBOL_SAMPLE_ADDRESS")
	if sampleAddress == "" {
		sampleAddress = DefaultSampleAddress
	}

	nonce := DefaultMosaicNonce
	if rawNonce := firstNonEmptyEnv("SYMBOL_MOSAIC_NONCE"); rawNonce != "" {
		parsed, parseErr := strconv.ParseUint(rawNonce, 10, 32)
		if parseErr != nil {
			return SampleConfig{}, fmt.Errorf("SYMBOL_MOSAIC_NONCE must be an unsigned 32-bit integer: %w", parseErr)
		}
		nonce = uint32(parsed)
	}

	return SampleConfig{
		SampleAddress: strings.ToUpper(sampleAddress),
		MosaicNonce:   nonce,
	}, nil
}

// SYMBOL_ENV_FILE names the .env file to load instead of searching upward
// from the working directory; "none" disables .env loading.
func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		if explicit := strings.TrimSpace(os.Getenv("SYMBOL_ENV_FILE")); explicit != "" {
			if explicit != DotEnvDisabled {
				_ = godotenv.Load(explicit)
			}
			return
		}

		cwd, err := os.Getwd()
		if err != nil {
			return
		}
		if candidate, ok := findDotEnv(cwd); ok {
			_ = godotenv.Load(candidate)
		}
	})
}

func findDotEnv(start string) (string, bool) {
	current := start
	for {
		candidate := filepath.Join(current, ".env")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}
