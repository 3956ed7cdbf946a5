package scenario_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bizsim/internal/scenario"
)

func defaultAssumptions() scenario.Assumptions {
	return scenario.Assumptions{
		Months:                  12,
		InitialCustomers:        100,
		MonthlyFee:              50,
		ChurnRate:               0.05,
		FixedCosts:              5000,
		VariableCostPerCustomer: 10,
		Growth: scenario.GrowthRates{
			Base:        0.10,
			Optimistic:  0.15,
			Pessimistic: 0.05,
		},
	}
}

var _ = Describe("Simulate", func() {
	var a scenario.Assumptions

	BeforeEach(func() {
		a = defaultAssumptions()
	})

	Context("with a zero horizon", func() {
		It("returns three empty series", func() {
			a.Months = 0
			res := scenario.Simulate(0.5, a)
			Expect(res.Revenue).To(BeEmpty())
			Expect(res.Cost).To(BeEmpty())
			Expect(res.Profit).To(BeEmpty())
		})

		It("treats a negative horizon the same way", func() {
			a.Months = -4
			res := scenario.Simulate(0.5, a)
			Expect(res.Len()).To(Equal(0))
			Expect(scenario.Trajectory(0.5, a)).To(Equal([]float64{100}))
		})
	})

	It("returns series exactly as long as the horizon", func() {
		for _, months := range []int{1, 3, 12, 60} {
			a.Months = months
			res := scenario.Simulate(a.Growth.Base, a)
			Expect(res.Revenue).To(HaveLen(months))
			Expect(res.Cost).To(HaveLen(months))
			Expect(res.Profit).To(HaveLen(months))
		}
	})

	It("keeps profit the exact difference of revenue and cost", func() {
		a.Months = 48
		for _, g := range []float64{-0.3, 0, 0.07, 0.2, 1.5} {
			res := scenario.Simulate(g, a)
			for i := range res.Profit {
				Expect(res.Profit[i]).To(Equal(res.Revenue[i] - res.Cost[i]))
			}
		}
	})

	It("bills revenue on the customers entering each month", func() {
		a.Months = 24
		res := scenario.Simulate(a.Growth.Base, a)
		customers := scenario.Trajectory(a.Growth.Base, a)
		Expect(customers[0]).To(Equal(a.InitialCustomers))
		for i := range res.Revenue {
			Expect(res.Revenue[i]).To(Equal(customers[i] * a.MonthlyFee))
			Expect(res.Cost[i]).To(Equal(a.FixedCosts + customers[i]*a.VariableCostPerCustomer))
		}
	})

	It("holds customers constant when growth equals churn", func() {
		customers := scenario.Trajectory(a.ChurnRate, a)
		for _, c := range customers {
			Expect(c).To(Equal(a.InitialCustomers))
		}
		res := scenario.Simulate(a.ChurnRate, a)
		for _, r := range res.Revenue {
			Expect(r).To(Equal(a.InitialCustomers * a.MonthlyFee))
		}
	})

	It("grows customers strictly when growth exceeds churn", func() {
		a.Months = 36
		customers := scenario.Trajectory(0.08, a)
		for i := 1; i < len(customers); i++ {
			Expect(customers[i]).To(BeNumerically(">", customers[i-1]))
		}
	})

	It("matches the worked three month example", func() {
		a.Months = 3
		res := scenario.Simulate(0.10, a)
		customers := scenario.Trajectory(0.10, a)

		Expect(customers[:3]).To(HaveExactElements(
			BeNumerically("~", 100, 1e-9),
			BeNumerically("~", 105, 1e-9),
			BeNumerically("~", 110.25, 1e-9),
		))
		Expect(res.Revenue).To(HaveExactElements(
			BeNumerically("~", 5000, 1e-9),
			BeNumerically("~", 5250, 1e-9),
			BeNumerically("~", 5512.5, 1e-9),
		))
		Expect(res.Cost).To(HaveExactElements(
			BeNumerically("~", 6000, 1e-9),
			BeNumerically("~", 6050, 1e-9),
			BeNumerically("~", 6102.5, 1e-9),
		))
		Expect(res.Profit).To(HaveExactElements(
			BeNumerically("~", -1000, 1e-9),
			BeNumerically("~", -800, 1e-9),
			BeNumerically("~", -590, 1e-9),
		))
	})

	It("lets the customer count cross zero when the multiplier is negative", func() {
		a.Months = 4
		a.ChurnRate = 2.5
		customers := scenario.Trajectory(0.0, a)
		Expect(customers[1]).To(BeNumerically("<", 0))
		Expect(customers[2]).To(BeNumerically(">", 0))
	})

	It("propagates overflow instead of failing", func() {
		a.Months = 400
		res := scenario.Simulate(1e10, a)
		Expect(res.IsFinite()).To(BeFalse())
		Expect(math.IsInf(res.Revenue[len(res.Revenue)-1], 1)).To(BeTrue())
	})

	It("is deterministic", func() {
		first := scenario.Simulate(0.12, a)
		second := scenario.Simulate(0.12, a)
		Expect(second).To(Equal(first))
	})
})

var _ = Describe("Run", func() {
	It("projects the three scenarios in report order", func() {
		ps := scenario.Run(defaultAssumptions())
		Expect(ps).To(HaveLen(3))
		Expect(ps[0].Kind).To(Equal(scenario.Base))
		Expect(ps[1].Kind).To(Equal(scenario.Optimistic))
		Expect(ps[2].Kind).To(Equal(scenario.Pessimistic))
		Expect(ps[1].GrowthRate).To(Equal(0.15))
	})

	It("agrees with the sequential run", func() {
		a := defaultAssumptions()
		Expect(scenario.Run(a)).To(Equal(scenario.RunSequential(a)))
	})

	It("starts every trajectory at the same count and widens the gap each month", func() {
		a := defaultAssumptions()
		a.Months = 24
		ps := scenario.Run(a)

		opt, pes := ps[1].Customers, ps[2].Customers
		for _, p := range ps {
			Expect(p.Customers[0]).To(Equal(a.InitialCustomers))
			Expect(p.Customers).To(HaveLen(a.Months + 1))
		}
		for i := 2; i < len(opt); i++ {
			Expect(opt[i] - pes[i]).To(BeNumerically(">", opt[i-1]-pes[i-1]))
		}
	})
})
