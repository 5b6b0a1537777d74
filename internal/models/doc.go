// Package models defines the core domain models for the billing desk.
//
// # Models
//
//   - LineItem: one row of the bill being assembled at the counter
//   - BillHeader: customer and invoice details printed on the bill
//   - Product: a read-only catalogue entry used to seed line items
//   - SaleRecord: one completed payment in the sales history
//   - MonthlyTotal: sales summed for one calendar month (derived, never stored)
//
// # Design Principles
//
// 1. **Raw input is kept**: quantities and prices hold the clerk's text; coercion
// to numbers happens when totals are computed, never when values are entered.
// 2. **Stable wire shape**: SaleRecord serialises to exactly date/total/createdAt so
// histories written by the browser version of the tool stay readable.
// 3. **No pointers between models**: line items are addressed by ID strings.
package models
