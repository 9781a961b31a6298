package shared

import (
	"fmt"
	"strings"
)

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// Node configuration names networks "public" and "public-test".
var networkAliases = map[string]string{
	NetworkMainnet: NetworkMainnet,
	NetworkTestnet: NetworkTestnet,
	"public":       NetworkMainnet,
	"public-test":  NetworkTestnet,
	"public_test":  NetworkTestnet,
}

// NormalizeNetwork maps a user supplied network name to mainnet or testnet.
// Blank input selects testnet.
func NormalizeNetwork(network string) (string, error) {
	candidate := strings.ToLower(strings.TrimSpace(network))
	if candidate == "" {
		return NetworkTestnet, nil
	}

	if normalized, ok := networkAliases[candidate]; ok {
		return normalized, nil
	}
	return "", fmt.Errorf("unsupported network %q", network)
}
