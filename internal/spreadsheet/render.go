package spreadsheet

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	countCurrencyCodeConstant      = "TABKIT_COUNT"
	countCurrencyGraphemeConstant  = ""
	countCurrencyTemplateConstant  = "1"
	countCurrencyDecimalConstant   = "."
	countCurrencyThousandConstant  = ","
	countCurrencyFractionConstant  = 0
	currencyMinorUnitShiftConstant = 2
)

// The count currency renders plain integers with thousands separators, matching #,##0.
var countCurrency = money.AddCurrency(
	countCurrencyCodeConstant,
	countCurrencyGraphemeConstant,
	countCurrencyTemplateConstant,
	countCurrencyDecimalConstant,
	countCurrencyThousandConstant,
	countCurrencyFractionConstant,
)

// RenderCurrency renders an amount the way the $#,##0.00 number format displays it.
func RenderCurrency(amount decimal.Decimal) string {
	minorUnits := amount.Shift(currencyMinorUnitShiftConstant).Round(0).IntPart()
	return money.New(minorUnits, money.USD).Display()
}

// RenderInteger renders a count the way the #,##0 number format displays it.
func RenderInteger(count int64) string {
	return money.New(count, countCurrency.Code).Display()
}
