package core

// UK income tax bands for the rough estimate. Two bands only; the
// additional-rate tier above 125k is intentionally not modeled.
const (
	personalAllowance = 12570.0
	basicBandLimit    = 50270.0
	basicRate         = 0.20
	higherRate        = 0.40
)

// EstimateTaxYearly returns a rough yearly income tax estimate for a gross
// annual income. It is an illustrative calculation, not a compliance feature:
// no national insurance, no allowance taper, two bands.
func EstimateTaxYearly(gross float64) float64 {
	if gross <= personalAllowance {
		return 0
	}
	taxable := gross - personalAllowance
	basicBand := max(0, min(taxable, basicBandLimit-personalAllowance))
	tax := basicBand * basicRate
	higherBand := max(0, taxable-basicBand)
	tax += higherBand * higherRate
	return tax
}
