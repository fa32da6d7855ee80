package lexer

import "strconv"

// isSizedType reports whether ident is a valid sized numeric or byte type
// spelling: uint8..uint256 and int8..int256 in steps of 8 bits, or
// bytes1..bytes32, grounded on the width rules enumerated in
// original_source/crates/quorlin-lexer/src/token.rs's regex-matched
// TokenType variants (Uint(u16), Int(u16), Bytes(u8)).
func isSizedType(ident string) bool {
	switch {
	case len(ident) > 4 && ident[:4] == "uint":
		return validBitWidth(ident[4:])
	case len(ident) > 3 && ident[:3] == "int":
		return validBitWidth(ident[3:])
	case len(ident) > 5 && ident[:5] == "bytes":
		return validByteWidth(ident[5:])
	default:
		return false
	}
}

func validBitWidth(digits string) bool {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 8 || n > 256 || n%8 != 0 {
		return false
	}
	return true
}

func validByteWidth(digits string) bool {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > 32 {
		return false
	}
	return true
}
