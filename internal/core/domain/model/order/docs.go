// Package order provides the coffee order value object and the fluent builder that
// produces it.
//
// The package includes:
//   - Base, Size, Milk: menu enums backed by fixed price tables
//   - Order: an immutable snapshot of a priced order with a rendered description
//   - Builder: a reusable, validating builder that computes the price and creates Orders
//
// Key business rules:
//   - Base and size are required; milk defaults to "none"
//   - At most MaxSyrups distinct syrups; adding a syrup twice is a silent no-op
//   - Sugar is limited to MinSugar..MaxSugar teaspoons
//   - price = base price * size multiplier + milk price + SyrupPrice per syrup
//     + IcedSurcharge when iced
//
// Orders never share state with the Builder that produced them, so a Builder can be
// changed and built again without affecting earlier Orders.
package order
