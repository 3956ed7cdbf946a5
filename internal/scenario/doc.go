// Package scenario projects a subscription business month by month.
//
// The package defines the projection primitives:
//
//   - [Assumptions]: the scalar inputs of one run
//   - [Simulate]: the customer/revenue/cost/profit recurrence
//   - [Trajectory]: customer counts entering each month
//   - [Run]: the base, optimistic and pessimistic projections together
//
// # Example
//
//	a := scenario.Assumptions{Months: 12, InitialCustomers: 100, MonthlyFee: 50}
//	res := scenario.Simulate(0.10, a)
//	fmt.Println(res.Profit)
//
// Every function is pure. Non-finite values are not guarded against and
// propagate into the returned series.
package scenario
