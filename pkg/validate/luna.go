package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// ReferralCodeLength is the number of digits in a referral code, check digit included.
const ReferralCodeLength = 10

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// NewReferralCode returns a random digit string whose last digit is its Luhn check digit, so
// mistyped codes are rejected before any lookup.
func NewReferralCode() string {
	return goluhn.Generate(ReferralCodeLength)
}

func IsReferralCode(s string) bool {
	return len(s) == ReferralCodeLength && IsLuna(s)
}
