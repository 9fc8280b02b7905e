package dynamo_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/strange/internal/attractor"
	"github.com/san-kum/strange/internal/dynamo"
)

var _ = Describe("Generate", func() {
	var m *attractor.Clifford

	BeforeEach(func() {
		m = &attractor.Clifford{A: -1.3, B: -1.3, C: -1.8, D: -1.9}
	})

	It("produces exactly n samples with the starting point first", func() {
		traj, err := dynamo.Generate(m, 0.1, -0.2, 100)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.X).To(HaveLen(100))
		Expect(traj.Y).To(HaveLen(100))
		Expect(traj.X[0]).To(Equal(0.1))
		Expect(traj.Y[0]).To(Equal(-0.2))
	})

	It("is deterministic: identical arguments yield bit-identical output", func() {
		a, err := dynamo.Generate(m, 0, 0, 10_000)
		Expect(err).NotTo(HaveOccurred())
		b, err := dynamo.Generate(m, 0, 0, 10_000)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.X).To(Equal(b.X))
		Expect(a.Y).To(Equal(b.Y))
	})

	It("satisfies the recurrence law at every step", func() {
		m = &attractor.Clifford{A: 1.7, B: 1.7, C: 0.6, D: 1.2}
		traj, err := dynamo.Generate(m, 0, 0, 1000)
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < traj.Len()-1; i++ {
			wantX := math.Sin(m.A*traj.Y[i]) + m.C*math.Cos(m.A*traj.X[i])
			wantY := math.Sin(m.B*traj.X[i]) + m.D*math.Cos(m.B*traj.Y[i])
			Expect(traj.X[i+1]).To(BeNumerically("~", wantX, 1e-12))
			Expect(traj.Y[i+1]).To(BeNumerically("~", wantY, 1e-12))
		}
	})

	It("keeps the (1.9, 1.9, 1.9, 0.8) orbit inside [-2, 2]", func() {
		m = &attractor.Clifford{A: 1.9, B: 1.9, C: 1.9, D: 0.8}
		traj, err := dynamo.Generate(m, 0, 0, 1000)
		Expect(err).NotTo(HaveOccurred())

		for i := range traj.X {
			Expect(traj.X[i]).To(And(BeNumerically(">=", -2.0), BeNumerically("<=", 2.0)))
			Expect(traj.Y[i]).To(And(BeNumerically(">=", -2.0), BeNumerically("<=", 2.0)))
		}
	})

	It("returns only the initial point for n=1", func() {
		traj, err := dynamo.Generate(m, 0.7, 0.3, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.X).To(Equal([]float64{0.7}))
		Expect(traj.Y).To(Equal([]float64{0.3}))
	})

	It("rejects n below one with ErrInvalidCount", func() {
		for _, n := range []int{0, -1, -100} {
			traj, err := dynamo.Generate(m, 0, 0, n)
			Expect(traj).To(BeNil())
			Expect(err).To(MatchError(dynamo.ErrInvalidCount))
		}
	})

	It("collapses to the fixed point for all-zero coefficients", func() {
		m = &attractor.Clifford{}
		traj, err := dynamo.Generate(m, 0, 0, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.X).To(Equal([]float64{0, 0, 0, 0, 0}))
		Expect(traj.Y).To(Equal([]float64{0, 0, 0, 0, 0}))
	})

	It("propagates NaN without failing", func() {
		traj, err := dynamo.Generate(m, math.NaN(), 0, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Len()).To(Equal(3))
		for i := 1; i < 3; i++ {
			Expect(math.IsNaN(traj.X[i])).To(BeTrue())
			Expect(math.IsNaN(traj.Y[i])).To(BeTrue())
		}
		Expect(traj.IsFinite()).To(BeFalse())
	})
})

var _ = Describe("GenerateInto", func() {
	It("reuses caller buffers and matches Generate", func() {
		m := attractor.NewClifford()
		xs := make([]float64, 0, 500)
		ys := make([]float64, 0, 500)

		got, err := dynamo.GenerateInto(m, 0, 0, 500, xs, ys)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Len()).To(Equal(500))

		want, err := dynamo.Generate(m, 0, 0, 500)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.X).To(Equal(want.X))
		Expect(got.Y).To(Equal(want.Y))
	})

	It("grows undersized buffers", func() {
		m := attractor.NewClifford()
		got, err := dynamo.GenerateInto(m, 0, 0, 100, nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Len()).To(Equal(100))
	})

	It("rejects n below one", func() {
		_, err := dynamo.GenerateInto(attractor.NewClifford(), 0, 0, 0, nil, nil)
		Expect(err).To(MatchError(dynamo.ErrInvalidCount))
	})
})
