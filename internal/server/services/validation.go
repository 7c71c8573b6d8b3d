// ABOUTME: Input validation for wallet addresses and product route ids
// ABOUTME: Keeps malformed input out of the token store and the log

package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MaxWalletLength bounds accepted wallet addresses.
const MaxWalletLength = 128

// ethAddressPattern matches a hex Ethereum address
var ethAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// sanitizeForLog removes control characters from strings to prevent log injection
// when including user input in error messages
func sanitizeForLog(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}

// IsEthAddress reports whether wallet is a 0x-prefixed 40 hex digit address.
func IsEthAddress(wallet string) bool {
	return ethAddressPattern.MatchString(wallet)
}

// ValidateWallet accepts an Ethereum address or any other non-empty
// address without whitespace, up to MaxWalletLength characters.
func ValidateWallet(wallet string) error {
	if wallet == "" {
		return fmt.Errorf("wallet address cannot be empty")
	}
	if IsEthAddress(wallet) {
		return nil
	}
	if len(wallet) > MaxWalletLength {
		return fmt.Errorf("wallet address exceeds %d characters", MaxWalletLength)
	}
	for _, r := range wallet {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("invalid wallet address: %s", sanitizeForLog(wallet))
		}
	}
	return nil
}

// ParseProductID parses a positive product id from a route parameter.
func ParseProductID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid product id: %s", sanitizeForLog(raw))
	}
	return id, nil
}
