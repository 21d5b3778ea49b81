package lensing_test

import (
	"testing"

	"github.com/katalvlaran/lensing/lensing"
)

func BenchmarkJacobian_Gradient200(b *testing.B) {
	g := uniform(b, 200, 200, 0.02)
	op := newOperator(b, sie())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := op.Jacobian(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkJacobian_AutoDiff200(b *testing.B) {
	g := uniform(b, 200, 200, 0.02)
	op := newOperator(b, sie(), lensing.WithBackend(lensing.AutoDiff{}))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := op.Jacobian(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHessian200(b *testing.B) {
	g := uniform(b, 200, 200, 0.02)
	op := newOperator(b, sie())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := op.Hessian(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEinsteinRadius(b *testing.B) {
	g := uniform(b, 100, 100, 0.05)
	op := newOperator(b, sie())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := op.EinsteinRadius(g, 0.05); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewton300(b *testing.B) {
	op := newOperator(b, sie(), lensing.WithBackend(lensing.AutoDiff{}))
	opts := lensing.DefaultNewtonOptions(lensing.Tangential)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := op.TangentialCriticalCurveNewton(opts); err != nil {
			b.Fatal(err)
		}
	}
}
