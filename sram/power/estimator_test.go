package power_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sramgen/sram"
	"github.com/sarchlab/sramgen/sram/power"
)

var _ = Describe("Power Estimator", func() {
	var builder sram.Builder

	build := func(b sram.Builder) sram.Config {
		cfg, err := b.Build()
		Expect(err).ToNot(HaveOccurred())

		return cfg
	}

	BeforeEach(func() {
		builder = sram.MakeBuilder().
			WithDepth(1024).WithWidth(32).WithBanks(2).
			WithVoltage(1.0).WithProcessNode(28)
	})

	It("should report total power as dynamic plus static exactly", func() {
		est, err := power.Estimate(build(builder), 0.2)

		Expect(err).ToNot(HaveOccurred())
		Expect(est.TotalPowerMW).
			To(Equal(est.DynamicPowerMW + est.StaticPowerMW))
	})

	It("should report zero dynamic power at zero activity", func() {
		est, err := power.Estimate(build(builder), 0)

		Expect(err).ToNot(HaveOccurred())
		Expect(est.DynamicPowerMW).To(BeZero())
		Expect(est.StaticPowerMW).To(BeNumerically(">", 0))
	})

	It("should increase dynamic power monotonically with activity", func() {
		cfg := build(builder)

		prev := -1.0
		for _, af := range []float64{0, 0.1, 0.3, 0.7, 1.0} {
			est, err := power.Estimate(cfg, af)

			Expect(err).ToNot(HaveOccurred())
			Expect(est.DynamicPowerMW).To(BeNumerically(">", prev))
			prev = est.DynamicPowerMW
		}
	})

	It("should reject activity factors above one", func() {
		_, err := power.Estimate(build(builder), 1.5)

		var afErr *sram.ActivityFactorError
		Expect(err).To(BeAssignableToTypeOf(afErr))
	})

	It("should reject negative activity factors", func() {
		_, err := power.Estimate(build(builder), -0.1)

		var afErr *sram.ActivityFactorError
		Expect(err).To(BeAssignableToTypeOf(afErr))
	})

	It("should propagate out-of-range voltage errors", func() {
		cfg := build(builder.WithProcessNode(14).WithVoltage(1.0))

		_, err := power.Estimate(cfg, 0.1)

		var rangeErr *sram.ModelRangeError
		Expect(err).To(BeAssignableToTypeOf(rangeErr))
	})

	It("should never increase static power with power gating", func() {
		plain, err := power.Estimate(build(builder), 0.1)
		Expect(err).ToNot(HaveOccurred())

		gated, err := power.Estimate(build(builder.WithPowerGating()), 0.1)
		Expect(err).ToNot(HaveOccurred())

		Expect(gated.StaticPowerMW).
			To(BeNumerically("<=", plain.StaticPowerMW))
		Expect(gated.DynamicPowerMW).To(Equal(plain.DynamicPowerMW))
	})

	It("should never increase dynamic power with clock gating", func() {
		plain, err := power.Estimate(build(builder), 0.1)
		Expect(err).ToNot(HaveOccurred())

		gated, err := power.Estimate(build(builder.WithClockGating()), 0.1)
		Expect(err).ToNot(HaveOccurred())

		Expect(gated.DynamicPowerMW).
			To(BeNumerically("<=", plain.DynamicPowerMW))
		Expect(gated.StaticPowerMW).To(Equal(plain.StaticPowerMW))
	})

	It("should report zero retention power without retention mode", func() {
		est, err := power.Estimate(build(builder), 0.1)

		Expect(err).ToNot(HaveOccurred())
		Expect(est.RetentionPowerUW).To(BeZero())
	})

	It("should bound retention power below static power", func() {
		est, err := power.Estimate(build(builder.WithRetentionMode()), 0.1)

		Expect(err).ToNot(HaveOccurred())
		Expect(est.RetentionPowerUW).To(BeNumerically(">", 0))
		Expect(est.RetentionPowerUW).
			To(BeNumerically("<", est.StaticPowerMW*1000))
	})

	It("should bound retention power below gated static power", func() {
		est, err := power.Estimate(
			build(builder.WithRetentionMode().WithPowerGating()), 0.1)

		Expect(err).ToNot(HaveOccurred())
		Expect(est.RetentionPowerUW).To(BeNumerically(">", 0))
		Expect(est.RetentionPowerUW).
			To(BeNumerically("<", est.StaticPowerMW*1000))
	})

	It("should estimate at a caller-supplied frequency", func() {
		cfg := build(builder)

		slow, err := power.EstimateAtFrequency(cfg, 0.1, 100)
		Expect(err).ToNot(HaveOccurred())

		fast, err := power.EstimateAtFrequency(cfg, 0.1, 1000)
		Expect(err).ToNot(HaveOccurred())

		Expect(fast.DynamicPowerMW).
			To(BeNumerically(">", slow.DynamicPowerMW))
		Expect(fast.StaticPowerMW).To(Equal(slow.StaticPowerMW))
	})
})
