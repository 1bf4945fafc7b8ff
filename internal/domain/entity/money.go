package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with two decimals behind the currency symbol.
func FormatMoney(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		return amount.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", symbol, amount.StringFixed(2))
}
