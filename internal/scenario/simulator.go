package scenario

// Simulate runs the monthly recurrence for one growth rate.
//
// Revenue and variable cost are billed on the customers entering the month;
// growth net of churn is applied multiplicatively afterwards. Counts are
// never rounded and may go negative when growthRate-ChurnRate < -1.
func Simulate(growthRate float64, a Assumptions) Result {
	n := a.Horizon()
	res := Result{
		Revenue: make([]float64, n),
		Cost:    make([]float64, n),
		Profit:  make([]float64, n),
	}

	multiplier := 1 + growthRate - a.ChurnRate
	current := a.InitialCustomers

	for i := 0; i < n; i++ {
		next := current * multiplier

		res.Revenue[i] = current * a.MonthlyFee
		res.Cost[i] = a.FixedCosts + current*a.VariableCostPerCustomer
		res.Profit[i] = res.Revenue[i] - res.Cost[i]

		current = next
	}

	return res
}

// Trajectory returns the customer count entering each month, followed by
// the count after the final month. customers[0] is InitialCustomers.
func Trajectory(growthRate float64, a Assumptions) []float64 {
	n := a.Horizon()
	customers := make([]float64, n+1)
	customers[0] = a.InitialCustomers

	multiplier := 1 + growthRate - a.ChurnRate
	for i := 0; i < n; i++ {
		customers[i+1] = customers[i] * multiplier
	}

	return customers
}

// Project simulates a single scenario kind.
func Project(k Kind, a Assumptions) Projection {
	g := a.Growth.For(k)
	return Projection{
		Kind:       k,
		GrowthRate: g,
		Result:     Simulate(g, a),
		Customers:  Trajectory(g, a),
	}
}
