// Package pricing computes quotation totals and applies draft mutations.
//
// Every function is pure: inputs are never mutated and no I/O happens here. Money
// is fixed-point (shopspring/decimal); rounding to cents is left to whoever
// formats the figures for display.
package pricing

import (
	"errors"
	"fmt"

	"quotely/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrIndexOutOfRange = errors.New("line index out of range")
)

var (
	tierHigh = decimal.NewFromInt(10000)
	tierMid  = decimal.NewFromInt(5000)
	tierLow  = decimal.NewFromInt(2000)

	rateHigh = decimal.RequireFromString("0.15")
	rateMid  = decimal.RequireFromString("0.10")
	rateLow  = decimal.RequireFromString("0.05")
)

// LineBreakdown is the computed total of one line.
type LineBreakdown struct {
	Index    int
	Quantity int
	Base     decimal.Decimal
	Fees     decimal.Decimal
	Total    decimal.Decimal
}

// Breakdown is the derived view of a quotation. It is recomputed on every read.
type Breakdown struct {
	Lines          []LineBreakdown
	Subtotal       decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalTotal     decimal.Decimal
}

// LineTotal is quantity*basePrice plus the flat per-line fees. Fees are not
// multiplied by quantity.
func LineTotal(line entities.QuotationLine) decimal.Decimal {
	return lineBase(line).Add(lineFees(line))
}

func lineBase(line entities.QuotationLine) decimal.Decimal {
	return line.SelectedVariation.BasePrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

func lineFees(line entities.QuotationLine) decimal.Decimal {
	sum := decimal.Zero
	for _, f := range line.Fees {
		sum = sum.Add(f.Amount)
	}
	return sum
}

func Subtotal(q entities.Quotation) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range q.Lines {
		sum = sum.Add(LineTotal(line))
	}
	return sum
}

// DiscountRate is the volume tier for a pre-discount subtotal. Comparisons are
// strict and checked from the top tier down, so a tie resolves to the lower tier.
func DiscountRate(subtotal decimal.Decimal) decimal.Decimal {
	switch {
	case subtotal.GreaterThan(tierHigh):
		return rateHigh
	case subtotal.GreaterThan(tierMid):
		return rateMid
	case subtotal.GreaterThan(tierLow):
		return rateLow
	default:
		return decimal.Zero
	}
}

func DiscountAmount(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(DiscountRate(subtotal))
}

func FinalTotal(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(DiscountAmount(subtotal))
}

func Summarize(q entities.Quotation) Breakdown {
	lines := make([]LineBreakdown, 0, len(q.Lines))
	subtotal := decimal.Zero
	for i, line := range q.Lines {
		base, fees := lineBase(line), lineFees(line)
		total := base.Add(fees)
		lines = append(lines, LineBreakdown{Index: i, Quantity: line.Quantity, Base: base, Fees: fees, Total: total})
		subtotal = subtotal.Add(total)
	}
	return Breakdown{
		Lines:          lines,
		Subtotal:       subtotal,
		DiscountRate:   DiscountRate(subtotal),
		DiscountAmount: DiscountAmount(subtotal),
		FinalTotal:     FinalTotal(subtotal),
	}
}

// AddLine appends a new line at the product's MOQ with no fees. Fees are applied
// separately through SetLineFees.
func AddLine(q entities.Quotation, product entities.Product, variation entities.ProductVariation) (entities.Quotation, error) {
	if product.MOQ < 0 {
		return q, fmt.Errorf("%w: product %q has negative moq", ErrValidation, product.ID)
	}
	if variation.BasePrice.IsNegative() {
		return q, fmt.Errorf("%w: variation %q has negative base price", ErrValidation, variation.Size)
	}
	if !offersVariation(product, variation) {
		return q, fmt.Errorf("%w: variation %q is not offered by product %q", ErrValidation, variation.Size, product.ID)
	}

	out := cloneQuotation(q, 1)
	out.Lines = append(out.Lines, entities.QuotationLine{
		Product:           product,
		SelectedVariation: variation,
		Quantity:          product.MOQ,
		Fees:              []entities.Fee{},
	})
	return out, nil
}

// RemoveLine drops the line at index. An invalid index returns ErrIndexOutOfRange
// and the input unchanged.
func RemoveLine(q entities.Quotation, index int) (entities.Quotation, error) {
	if index < 0 || index >= len(q.Lines) {
		return q, fmt.Errorf("%w: %d (lines: %d)", ErrIndexOutOfRange, index, len(q.Lines))
	}
	out := cloneQuotation(q, 0)
	out.Lines = append(out.Lines[:index], out.Lines[index+1:]...)
	return out, nil
}

// AdjustQuantity steps the quantity by exactly one product increment, clamped at
// the MOQ floor. There is no upper bound.
func AdjustQuantity(line entities.QuotationLine, delta int) (entities.QuotationLine, error) {
	inc := line.Product.Increment
	if inc <= 0 {
		return line, fmt.Errorf("%w: product %q has no order increment", ErrValidation, line.Product.ID)
	}
	if delta != inc && delta != -inc {
		return line, fmt.Errorf("%w: quantity must move by %d, got %d", ErrValidation, inc, delta)
	}
	next := line.Quantity + delta
	if next < line.Product.MOQ {
		next = line.Product.MOQ
	}
	out := line
	out.Fees = cloneFees(line.Fees)
	out.Quantity = next
	return out, nil
}

// AdjustLineQuantity applies AdjustQuantity to the line at index.
func AdjustLineQuantity(q entities.Quotation, index, delta int) (entities.Quotation, error) {
	if index < 0 || index >= len(q.Lines) {
		return q, fmt.Errorf("%w: %d (lines: %d)", ErrIndexOutOfRange, index, len(q.Lines))
	}
	line, err := AdjustQuantity(q.Lines[index], delta)
	if err != nil {
		return q, err
	}
	out := cloneQuotation(q, 0)
	out.Lines[index] = line
	return out, nil
}

// SetLineFees replaces the fees of the line at index.
func SetLineFees(q entities.Quotation, index int, fees []entities.Fee) (entities.Quotation, error) {
	if index < 0 || index >= len(q.Lines) {
		return q, fmt.Errorf("%w: %d (lines: %d)", ErrIndexOutOfRange, index, len(q.Lines))
	}
	for _, f := range fees {
		if f.Amount.IsNegative() {
			return q, fmt.Errorf("%w: fee %q has negative amount", ErrValidation, f.Name)
		}
	}
	out := cloneQuotation(q, 0)
	out.Lines[index].Fees = cloneFees(fees)
	return out, nil
}

func offersVariation(product entities.Product, variation entities.ProductVariation) bool {
	if len(product.Variations) == 0 {
		return true
	}
	for _, v := range product.Variations {
		if v.ID == variation.ID && v.Size == variation.Size && v.BasePrice.Equal(variation.BasePrice) {
			return true
		}
	}
	return false
}

func cloneQuotation(q entities.Quotation, extra int) entities.Quotation {
	lines := make([]entities.QuotationLine, len(q.Lines), len(q.Lines)+extra)
	for i, line := range q.Lines {
		line.Fees = cloneFees(line.Fees)
		lines[i] = line
	}
	return entities.Quotation{Lines: lines, Details: q.Details}
}

func cloneFees(fees []entities.Fee) []entities.Fee {
	if fees == nil {
		return nil
	}
	out := make([]entities.Fee, len(fees))
	copy(out, fees)
	return out
}
