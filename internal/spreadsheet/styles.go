package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Number formats applied to report cells.
const (
	IntegerNumberFormat  = "#,##0"
	CurrencyNumberFormat = "$#,##0.00"
	DateNumberFormat     = "yyyy-mm-dd"
)

const (
	headerFillColorConstant          = "DDDDDD"
	borderColorConstant              = "000000"
	fillTypePatternConstant          = "pattern"
	solidFillPatternConstant         = 1
	thinBorderStyleConstant          = 1
	topBorderTypeConstant            = "top"
	centerAlignmentConstant          = "center"
	styleRegistrationErrorTemplate   = "unable to register %s style: %w"
	styleNameHeaderConstant          = "header"
	styleNameShadedHeaderConstant    = "shaded header"
	styleNameCenteredHeaderConstant  = "centered header"
	styleNameDateConstant            = "date"
	styleNameIntegerConstant         = "integer"
	styleNameCurrencyConstant        = "currency"
	styleNameTotalsLabelConstant     = "totals label"
	styleNameTotalsIntegerConstant   = "totals integer"
	styleNameTotalsCurrencyConstant  = "totals currency"
	styleNameNumberFormatConstant    = "number format"
	styleNameNumberFormatTemplateKey = "%s %q"
)

// StyleSet holds style identifiers registered once per workbook and shared by every sheet writer.
type StyleSet struct {
	Header         int
	ShadedHeader   int
	CenteredHeader int
	Date           int
	Integer        int
	Currency       int
	TotalsLabel    int
	TotalsInteger  int
	TotalsCurrency int
}

type styleRegistration struct {
	name   string
	target *int
	style  *excelize.Style
}

// NewStyleSet registers the report styles with the workbook.
func NewStyleSet(workbook *excelize.File) (*StyleSet, error) {
	boldFont := &excelize.Font{Bold: true}
	shadedFill := excelize.Fill{Type: fillTypePatternConstant, Pattern: solidFillPatternConstant, Color: []string{headerFillColorConstant}}
	topBorder := []excelize.Border{{Type: topBorderTypeConstant, Color: borderColorConstant, Style: thinBorderStyleConstant}}
	integerFormat := IntegerNumberFormat
	currencyFormat := CurrencyNumberFormat
	dateFormat := DateNumberFormat

	styleSet := &StyleSet{}
	registrations := []styleRegistration{
		{name: styleNameHeaderConstant, target: &styleSet.Header, style: &excelize.Style{Font: boldFont}},
		{name: styleNameShadedHeaderConstant, target: &styleSet.ShadedHeader, style: &excelize.Style{Font: boldFont, Fill: shadedFill}},
		{name: styleNameCenteredHeaderConstant, target: &styleSet.CenteredHeader, style: &excelize.Style{Font: boldFont, Fill: shadedFill, Alignment: &excelize.Alignment{Horizontal: centerAlignmentConstant}}},
		{name: styleNameDateConstant, target: &styleSet.Date, style: &excelize.Style{CustomNumFmt: &dateFormat}},
		{name: styleNameIntegerConstant, target: &styleSet.Integer, style: &excelize.Style{CustomNumFmt: &integerFormat}},
		{name: styleNameCurrencyConstant, target: &styleSet.Currency, style: &excelize.Style{CustomNumFmt: &currencyFormat}},
		{name: styleNameTotalsLabelConstant, target: &styleSet.TotalsLabel, style: &excelize.Style{Font: boldFont, Border: topBorder}},
		{name: styleNameTotalsIntegerConstant, target: &styleSet.TotalsInteger, style: &excelize.Style{Font: boldFont, Border: topBorder, CustomNumFmt: &integerFormat}},
		{name: styleNameTotalsCurrencyConstant, target: &styleSet.TotalsCurrency, style: &excelize.Style{Font: boldFont, Border: topBorder, CustomNumFmt: &currencyFormat}},
	}

	for _, registration := range registrations {
		styleIdentifier, registrationError := workbook.NewStyle(registration.style)
		if registrationError != nil {
			return nil, fmt.Errorf(styleRegistrationErrorTemplate, registration.name, registrationError)
		}
		*registration.target = styleIdentifier
	}

	return styleSet, nil
}

// NumberFormatStyles registers one style per distinct number format on demand.
type NumberFormatStyles struct {
	workbook       *excelize.File
	styleByFormat  map[string]int
	styleByBuiltin map[int]int
}

// NewNumberFormatStyles constructs a cache bound to the workbook.
func NewNumberFormatStyles(workbook *excelize.File) *NumberFormatStyles {
	return &NumberFormatStyles{
		workbook:       workbook,
		styleByFormat:  make(map[string]int),
		styleByBuiltin: make(map[int]int),
	}
}

// Resolve returns a style identifier carrying the number format described by sourceStyle.
// A zero identifier means the default style applies.
func (cache *NumberFormatStyles) Resolve(sourceStyle *excelize.Style) (int, error) {
	if sourceStyle == nil {
		return 0, nil
	}

	if sourceStyle.CustomNumFmt != nil && len(*sourceStyle.CustomNumFmt) > 0 {
		customFormat := *sourceStyle.CustomNumFmt
		if styleIdentifier, cached := cache.styleByFormat[customFormat]; cached {
			return styleIdentifier, nil
		}
		styleIdentifier, registrationError := cache.workbook.NewStyle(&excelize.Style{CustomNumFmt: &customFormat})
		if registrationError != nil {
			return 0, fmt.Errorf(styleRegistrationErrorTemplate, fmt.Sprintf(styleNameNumberFormatTemplateKey, styleNameNumberFormatConstant, customFormat), registrationError)
		}
		cache.styleByFormat[customFormat] = styleIdentifier
		return styleIdentifier, nil
	}

	if sourceStyle.NumFmt == 0 {
		return 0, nil
	}

	if styleIdentifier, cached := cache.styleByBuiltin[sourceStyle.NumFmt]; cached {
		return styleIdentifier, nil
	}
	styleIdentifier, registrationError := cache.workbook.NewStyle(&excelize.Style{NumFmt: sourceStyle.NumFmt})
	if registrationError != nil {
		return 0, fmt.Errorf(styleRegistrationErrorTemplate, styleNameNumberFormatConstant, registrationError)
	}
	cache.styleByBuiltin[sourceStyle.NumFmt] = styleIdentifier
	return styleIdentifier, nil
}
