package output

// DefaultAssumptions lists the modeling assumptions rendered in detailed outputs
var DefaultAssumptions = []string{
	"Interest compounds daily on a 365-day year (daily rate = APY / 365)",
	"A month is 30 days; contributions are made for each whole month in the horizon",
	"The first contribution is made on day 0 alongside the initial amount",
	"Balances are rounded half up to cents; interest is derived from the rounded balance",
	"Rates are held constant for the whole horizon; no fees, taxes or inflation",
}
