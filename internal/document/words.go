package document

import "strconv"

// AmountWords spells a carrier-invoice amount in French. Only the two
// amounts the business actually bills are spelled out; every other amount
// falls back to the raw numeral plus the currency word.
//
// TODO: replace with a general French numeral-to-words converter once the
// carrier tariffs stop being flat amounts.
func AmountWords(amount float64) string {
	switch amount {
	case 0:
		return "ZERO"
	case 1500:
		return "MILLE CINQ CENTS"
	case 1200:
		return "MILLE DEUX CENTS"
	}
	return strconv.FormatFloat(amount, 'f', -1, 64) + " EUROS"
}
