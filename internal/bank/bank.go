// Package bank classifies raw statement text into a known issuer profile.
package bank

import "regexp"

// Bank identifies the statement issuer. The label controls which extraction
// template list is tried; issuers without a dedicated list use Generic's.
type Bank string

const (
	Chase         Bank = "chase"
	WellsFargo    Bank = "wellsFargo"
	BankOfAmerica Bank = "bankOfAmerica"
	Citi          Bank = "citi"
	USBank        Bank = "usBank"
	Capital       Bank = "capital"
	Generic       Bank = "generic"
)

type signature struct {
	bank Bank
	re   *regexp.Regexp
}

// signatures are evaluated in order; the first match wins. Keep Citi after
// Bank of America so "citi" inside longer brand strings cannot shadow an
// earlier issuer.
var signatures = []signature{
	{Chase, regexp.MustCompile(`(?i)chase|jpmorgan`)},
	{WellsFargo, regexp.MustCompile(`(?i)wells fargo|wf`)},
	{BankOfAmerica, regexp.MustCompile(`(?i)bank of america|boa`)},
	{Citi, regexp.MustCompile(`(?i)citibank|citi`)},
	{USBank, regexp.MustCompile(`(?i)u\.?s\.?\s*bank`)},
	{Capital, regexp.MustCompile(`(?i)capital one`)},
}

// Detect classifies the full statement text. Pure function of the input:
// the first issuer whose signature matches wins, and text matching no
// signature is Generic.
func Detect(text string) Bank {
	for _, sig := range signatures {
		if sig.re.MatchString(text) {
			return sig.bank
		}
	}
	return Generic
}
