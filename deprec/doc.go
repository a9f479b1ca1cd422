// Package deprec computes depreciation schedules.
//
// A Schedule reports the book value of an asset after t periods and the
// depreciation charged in period t. Five conventions are provided:
//
//	StraightLine            equal charges every period
//	DecliningBalance        a fixed fraction of the remaining book value
//	DoubleDecliningBalance  declining balance at 2/life, optionally floored at salvage
//	SumOfYearsDigits        charges proportional to the remaining life
//	UnitsOfProduction       charges proportional to each period's output
//
// Book(0) is always the basis. Book(Life) is the salvage value, except for
// UnitsOfProduction, which reaches salvage once cumulative output reaches
// lifetime output, and DoubleDecliningBalance without a floor, which need not
// land on salvage at all.
//
// Every schedule embeds Asset and so also reports the capital gain, the
// recaptured depreciation and the loss on disposal for a given market value.
package deprec
