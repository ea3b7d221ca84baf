// Package identity validates Spanish national identity and tax numbers:
// DNI (nationals), NIE (foreign residents) and CIF (organizations).
package identity

import "strings"

// controlLetters is the fixed modulo-23 table shared by DNI and NIE.
const controlLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// cifLetters maps a CIF control digit to its letter form.
const cifLetters = "JABCDEFGHI"

// cifLeading is the set of letters a CIF may start with.
const cifLeading = "ABCDEFGHJKLMNPQRSUVW"

// ValidateDNI reports whether s is a valid DNI: eight digits followed by the
// matching control letter. Malformed input yields false, never a panic.
func ValidateDNI(s string) bool {
	s = normalize(s)
	if len(s) != 9 {
		return false
	}
	number, ok := digitsValue(s[:8])
	if !ok {
		return false
	}
	letter := s[8]
	if letter < 'A' || letter > 'Z' {
		return false
	}
	return controlLetters[number%23] == letter
}

// ValidateNIE reports whether s is a valid NIE: X, Y or Z, seven digits and
// a control letter. The leading letter maps to 0, 1 or 2 and the combined
// eight-digit numeral uses the same modulo-23 table as the DNI.
func ValidateNIE(s string) bool {
	s = normalize(s)
	if len(s) != 9 {
		return false
	}
	var lead int
	switch s[0] {
	case 'X':
		lead = 0
	case 'Y':
		lead = 1
	case 'Z':
		lead = 2
	default:
		return false
	}
	number, ok := digitsValue(s[1:8])
	if !ok {
		return false
	}
	letter := s[8]
	if letter < 'A' || letter > 'Z' {
		return false
	}
	number += lead * 10000000
	return controlLetters[number%23] == letter
}

// ValidateDNIOrNIE dispatches on the leading character: X, Y and Z are
// validated as NIE, anything else as DNI.
func ValidateDNIOrNIE(s string) bool {
	t := normalize(s)
	if t == "" {
		return false
	}
	switch t[0] {
	case 'X', 'Y', 'Z':
		return ValidateNIE(s)
	}
	return ValidateDNI(s)
}

// ValidateCIF reports whether s is a valid CIF: an organization-type letter,
// seven digits and a control character that is either the control digit or
// its letter form, depending on the organization type.
func ValidateCIF(s string) bool {
	s = normalize(s)
	if len(s) != 9 {
		return false
	}
	lead := s[0]
	if !strings.ContainsRune(cifLeading, rune(lead)) {
		return false
	}

	var sumEven, sumOdd int
	for i := 0; i < 7; i++ {
		c := s[1+i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if (i+1)%2 == 0 {
			sumEven += d
		} else {
			doubled := d * 2
			sumOdd += doubled/10 + doubled%10
		}
	}
	controlDigit := (10 - (sumEven+sumOdd)%10) % 10
	controlLetter := cifLetters[controlDigit]

	tail := s[8]
	digitOK := tail == byte('0'+controlDigit)
	letterOK := tail == controlLetter
	switch lead {
	case 'A', 'B', 'E', 'H':
		return digitOK
	case 'K', 'P', 'Q', 'S':
		return letterOK
	}
	if (tail >= '0' && tail <= '9') || (tail >= 'A' && tail <= 'J') {
		return digitOK || letterOK
	}
	return false
}

// ValidateCIFOrNIF accepts the identity number of an organization. In this
// system organizations only carry CIFs, so it is equivalent to ValidateCIF.
func ValidateCIFOrNIF(s string) bool {
	return ValidateCIF(s)
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func digitsValue(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
